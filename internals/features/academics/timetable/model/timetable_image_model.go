package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimetableImageModel stores the uploaded timetable picture after it has been
// downscaled and re-encoded to webp. image_meta keeps the original
// dimensions and byte sizes for the admin UI.
type TimetableImageModel struct {
	// PK
	ImageID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:image_id" json:"image_id"`

	ImageDivision string  `gorm:"type:varchar(10);not null;column:image_division" json:"image_division"`
	ImageLabel    *string `gorm:"type:varchar(120);column:image_label" json:"image_label,omitempty"`

	ImageContent     []byte         `gorm:"type:bytea;not null;column:image_content" json:"-"`
	ImageContentType string         `gorm:"type:varchar(40);not null;column:image_content_type" json:"image_content_type"`
	ImageMeta        datatypes.JSON `gorm:"type:jsonb;column:image_meta" json:"image_meta,omitempty"`

	ImageCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:image_created_at" json:"image_created_at"`
}

func (TimetableImageModel) TableName() string { return "timetable_images" }
