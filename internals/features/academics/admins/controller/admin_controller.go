package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"facultyfeedback_backend/internals/configs"
	adminDTO "facultyfeedback_backend/internals/features/academics/admins/dto"
	adminModel "facultyfeedback_backend/internals/features/academics/admins/model"
	helper "facultyfeedback_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetAll lists admin users.
func (ctrl *AdminController) GetAll(c *fiber.Ctx) error {
	var admins []adminModel.AdminUserModel
	if err := ctrl.DB.Order("admin_name ASC").Find(&admins).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch admins")
	}

	out := make([]adminDTO.AdminResponse, 0, len(admins))
	for _, m := range admins {
		out = append(out, adminDTO.NewAdminResponse(m))
	}
	return helper.Success(c, "OK", out)
}

// Create adds an admin user; duplicate email is a conflict.
func (ctrl *AdminController) Create(c *fiber.Ctx) error {
	var req adminDTO.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	var created adminModel.AdminUserModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&adminModel.AdminUserModel{}).
			Where("lower(admin_email) = ?", req.AdminEmail).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "An admin with this email already exists")
		}

		created = req.ToModel(string(hash))
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create admin")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Admin created", adminDTO.NewAdminResponse(created))
}

// Delete removes an admin user.
func (ctrl *AdminController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	res := ctrl.DB.Delete(&adminModel.AdminUserModel{}, "admin_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete admin")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Admin not found")
	}
	return helper.Success(c, "Admin deleted", nil)
}

// Login checks the password and mints a short-lived access token the
// identity middleware will accept as a bearer credential.
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var req adminDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin adminModel.AdminUserModel
	if err := ctrl.DB.Where("lower(admin_email) = lower(?)", req.Email).First(&admin).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPasswordHash), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if configs.JWTSecret == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "Token signing is not configured")
	}

	now := time.Now()
	expires := now.Add(accessTTL)
	claims := jwt.MapClaims{
		"typ":   "access",
		"sub":   admin.AdminID.String(),
		"email": admin.AdminEmail,
		"iat":   now.Unix(),
		"exp":   expires.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign access token")
	}

	return helper.Success(c, "Login successful", adminDTO.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expires,
		Admin:       adminDTO.NewAdminResponse(admin),
	})
}
