package repository

import "gorm.io/gorm"

// AutoMigrate keeps the schema in sync with the row models owned by this package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&deviceEntryModel{},
		&bookingModel{},
		&warrantyModel{},
		&warrantyClaimModel{},
		&invoiceModel{},
		&contactModel{},
		&customerModel{},
		&productModel{},
		&serviceRateModel{},
		&settingModel{},
	)
}
