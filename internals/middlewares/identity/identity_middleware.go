package identity

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"facultyfeedback_backend/internals/configs"
	"facultyfeedback_backend/internals/constants"
	adminModel "facultyfeedback_backend/internals/features/academics/admins/model"
	facultyModel "facultyfeedback_backend/internals/features/academics/faculty/model"
	studentModel "facultyfeedback_backend/internals/features/academics/students/model"
	helper "facultyfeedback_backend/internals/helpers"
)

// Locals keys set by Resolve
const (
	LocEmail     = "identity_email"
	LocRole      = "identity_role"
	LocSubjectID = "identity_subject_id"
)

/* =========================================================
   Identity resolution

   The caller identifies itself by email. The credential can be:
   1) Authorization: Bearer <internal JWT>   (minted by admin login)
   2) Authorization: Bearer <Google ID token> (verified against client ID)
   3) X-User-Email header                     (trusted frontend identity)
   The email is then resolved to a role by table lookup:
   admin_users → faculties → students, with the configured admin
   allow-list as a fallback for bootstrap admins.
========================================================= */

func Resolve(db *gorm.DB, cfg configs.AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := resolveEmail(c, cfg)
		if email == "" {
			return c.Next()
		}

		role, subjectID := lookupRole(db, cfg, email)
		c.Locals(LocEmail, email)
		c.Locals(LocRole, role)
		if subjectID != uuid.Nil {
			c.Locals(LocSubjectID, subjectID)
		}
		return c.Next()
	}
}

func resolveEmail(c *fiber.Ctx, cfg configs.AuthConfig) string {
	if raw := helper.GetRawBearerToken(c); raw != "" {
		if email := emailFromInternalJWT(raw, cfg.JWTSecret); email != "" {
			return email
		}
		if email := emailFromGoogleIDToken(raw, cfg.GoogleClientID); email != "" {
			return email
		}
		// a bearer credential that verifies as nothing stays anonymous
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.Get("X-User-Email")))
}

func emailFromInternalJWT(raw, secret string) string {
	if secret == "" {
		return ""
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return strings.ToLower(strings.TrimSpace(email))
}

func emailFromGoogleIDToken(raw, clientID string) string {
	if clientID == "" {
		return ""
	}
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(raw, []string{clientID}); err != nil {
		return ""
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(claimSet.Email))
}

func lookupRole(db *gorm.DB, cfg configs.AuthConfig, email string) (string, uuid.UUID) {
	var admin adminModel.AdminUserModel
	if err := db.Where("lower(admin_email) = ?", email).First(&admin).Error; err == nil {
		return constants.RoleAdmin, admin.AdminID
	}
	var fac facultyModel.FacultyModel
	if err := db.Where("lower(faculty_email) = ?", email).First(&fac).Error; err == nil {
		return constants.RoleFaculty, fac.FacultyID
	}
	var st studentModel.StudentModel
	if err := db.Where("lower(student_email) = ?", email).First(&st).Error; err == nil {
		return constants.RoleStudent, st.StudentID
	}
	if cfg.IsAllowlistedAdmin(email) {
		return constants.RoleAdmin, uuid.Nil
	}
	return "", uuid.Nil
}

/* =========================================================
   Accessors for controllers
========================================================= */

func Email(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocEmail).(string); ok {
		return v
	}
	return ""
}

func Role(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return v
	}
	return ""
}

// SubjectID returns the row id behind the identity (student/faculty/admin).
func SubjectID(c *fiber.Ctx) (uuid.UUID, error) {
	if v, ok := c.Locals(LocSubjectID).(uuid.UUID); ok && v != uuid.Nil {
		return v, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Identity has no backing record")
}
