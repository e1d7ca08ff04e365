package controller

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	timetableModel "facultyfeedback_backend/internals/features/academics/timetable/model"
	timetableService "facultyfeedback_backend/internals/features/academics/timetable/service"
	helper "facultyfeedback_backend/internals/helpers"
)

// maxImageUpload caps timetable photo uploads (8 MiB before conversion).
const maxImageUpload = 8 << 20

type TimetableImageController struct {
	DB *gorm.DB
}

func NewTimetableImageController(db *gorm.DB) *TimetableImageController {
	return &TimetableImageController{DB: db}
}

// Upload accepts a multipart form with an "image" file plus "division"
// and optional "label" fields. The picture is re-encoded to webp before
// it is stored.
func (ctrl *TimetableImageController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing image file")
	}
	if fh.Size > maxImageUpload {
		return helper.Error(c, fiber.StatusBadRequest, "Image is too large (max 8 MB)")
	}

	division := strings.ToUpper(strings.TrimSpace(c.FormValue("division")))
	if division == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing division")
	}
	var label *string
	if v := strings.TrimSpace(c.FormValue("label")); v != "" {
		label = &v
	}

	src, err := fh.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Failed to open uploaded file")
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Failed to read uploaded file")
	}

	stored, meta, err := timetableService.ConvertImageToWebP(data, fh.Filename)
	if err != nil {
		if errors.Is(err, timetableService.ErrUnsupportedFormat) {
			return helper.Error(c, fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg, png or webp)")
		}
		return helper.Error(c, fiber.StatusBadRequest, "Failed to decode image")
	}

	metaJSON, _ := json.Marshal(meta)
	img := timetableModel.TimetableImageModel{
		ImageDivision:    division,
		ImageLabel:       label,
		ImageContent:     stored,
		ImageContentType: "image/webp",
		ImageMeta:        datatypes.JSON(metaJSON),
		ImageCreatedAt:   time.Now(),
	}
	if err := ctrl.DB.Create(&img).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store image")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timetable image uploaded", img)
}

// GetAll lists stored images (metadata only, no bytes); filter with ?division=.
func (ctrl *TimetableImageController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&timetableModel.TimetableImageModel{})
	if v := strings.ToUpper(strings.TrimSpace(c.Query("division"))); v != "" {
		q = q.Where("image_division = ?", v)
	}

	var images []timetableModel.TimetableImageModel
	if err := q.Omit("image_content").
		Order("image_created_at DESC").
		Find(&images).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch images")
	}
	return helper.Success(c, "OK", images)
}

// GetContent serves the stored webp bytes.
func (ctrl *TimetableImageController) GetContent(c *fiber.Ctx) error {
	id := c.Params("id")

	var img timetableModel.TimetableImageModel
	if err := ctrl.DB.First(&img, "image_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Image not found")
	}

	c.Set(fiber.HeaderContentType, img.ImageContentType)
	c.Set(fiber.HeaderCacheControl, "private, max-age=86400")
	return c.Send(img.ImageContent)
}

func (ctrl *TimetableImageController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Where("image_id = ?", id).Delete(&timetableModel.TimetableImageModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete image")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Image not found")
	}
	return helper.Success(c, "Image deleted", nil)
}
