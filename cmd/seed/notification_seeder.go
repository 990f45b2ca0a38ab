package main

import (
	"log"

	"github.com/maatalaayoub/L9ani-sub001/internal/model"

	"gorm.io/gorm"
)

// SeedNotificationTypes installs the default event-to-notification
// registry. Existing rows are left untouched so operators can tweak
// templates or deactivate types without the seeder undoing it.
func SeedNotificationTypes(db *gorm.DB) {
	for _, t := range model.DefaultNotificationTypes() {
		err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error
		if err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("Notification types seeded successfully.")
}
