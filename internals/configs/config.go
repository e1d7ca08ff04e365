package configs

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret      string
	GoogleClientID string
	AdminEmails    []string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] no .env file found, using system ENV")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	AdminEmails = splitEmails(GetEnv("ADMIN_EMAILS"))

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set; admin login tokens disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func splitEmails(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if e := strings.ToLower(strings.TrimSpace(p)); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// =======================
// AUTH CONFIG (injected)
// =======================

// AuthConfig carries the identity settings that used to live as scattered
// globals: the fallback admin allow-list and the Google OAuth client ID used
// to verify ID tokens. Built once in main and passed down to the middleware.
type AuthConfig struct {
	JWTSecret      string
	GoogleClientID string
	AdminAllowlist []string
}

func NewAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:      JWTSecret,
		GoogleClientID: GoogleClientID,
		AdminAllowlist: AdminEmails,
	}
}

func (a AuthConfig) IsAllowlistedAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range a.AdminAllowlist {
		if e == email {
			return true
		}
	}
	return false
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
