package database

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"grover-graphql/internal/model"
)

// Migrate creates or updates every table the service reads.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "database: migrate")
	}
	return nil
}
