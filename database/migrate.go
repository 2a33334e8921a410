package database

import (
	"github.com/jangir-ritik/andamanexcursion-sub005/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.FerryBooking{})
}
