package db

import (
	"github.com/fitlog-dev/fitlog/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError lets the repositories match unique-constraint
	// violations as gorm.ErrDuplicatedKey regardless of driver.
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func Migrate(database *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Workout{},
		&models.Exercise{},
		&models.Set{},
	}

	for _, table := range tables {
		if err := database.AutoMigrate(table); err != nil {
			return err
		}
	}

	return nil
}
