package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"facultyfeedback_backend/internals/configs"
	adminModel "facultyfeedback_backend/internals/features/academics/admins/model"
	facultyModel "facultyfeedback_backend/internals/features/academics/faculty/model"
	studentModel "facultyfeedback_backend/internals/features/academics/students/model"
	timetableModel "facultyfeedback_backend/internals/features/academics/timetable/model"
	formModel "facultyfeedback_backend/internals/features/feedback/forms/model"
	questionModel "facultyfeedback_backend/internals/features/feedback/questions/model"
	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=facultyfeedback&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // works with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[FATAL] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync. The unique index on
// (response_form_id, response_student_id) created here is the race fallback
// behind the submission gate's in-transaction duplicate check.
func Migrate() {
	if err := DB.AutoMigrate(
		&adminModel.AdminUserModel{},
		&facultyModel.FacultyModel{},
		&studentModel.StudentModel{},
		&questionModel.QuestionModel{},
		&formModel.FormModel{},
		&responseModel.ResponseModel{},
		&responseModel.ResponseItemModel{},
		&timetableModel.TimetableEntryModel{},
		&timetableModel.TimetableImageModel{},
	); err != nil {
		log.Fatalf("[FATAL] automigrate failed: %v", err)
	}
}

func WarmUpQueries() {
	// light touch so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
