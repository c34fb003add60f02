package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Association{},
		&Campaign{},
		&Donor{},
		&Donation{},
		&Event{},
		&EventParticipant{},
		&AIPrompt{},
	)
}
