package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"elimu/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.Category{},
		&db_models.Course{},
		&db_models.Lesson{},
		&db_models.LessonProgress{},
	); err != nil {
		return err
	}

	// Backstop for the one-open-subscription-per-account invariant. The
	// application serializes checkouts per account, this index makes the
	// database reject duplicates that slip past it (e.g. two instances).
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_one_open_per_account
		ON subscriptions (account_id)
		WHERE status IN ('pending', 'active') AND deleted_at IS NULL`).Error
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed")
	}
}
