package database

import (
	"gorm.io/gorm"

	"github.com/restobar-app/backend/models"
	"github.com/restobar-app/backend/utils"
)

// Migrate runs AutoMigrate for the whole schema and seeds the catalog rows
// the app expects to exist.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuCategory{},
		&models.Ingredient{},
		&models.MenuItem{},
		&models.Recipe{},
		&models.RecipeLine{},
		&models.Order{},
		&models.OrderLine{},
		&models.PaymentMethod{},
	)
	if err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed")

	return seedPaymentMethods(db)
}

// seedPaymentMethods guarantees the base payment catalog. FirstOrCreate keeps
// restarts idempotent.
func seedPaymentMethods(db *gorm.DB) error {
	metodos := []models.PaymentMethod{
		{Code: "MPA0000001", Name: "efectivo", Active: true},
		{Code: "MPA0000002", Name: "tarjeta", Active: true},
		{Code: "MPA0000003", Name: "yape", Active: true},
		{Code: "MPA0000004", Name: "plin", Active: true},
	}
	for _, m := range metodos {
		if err := db.Where("code = ?", m.Code).FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}
	return nil
}
