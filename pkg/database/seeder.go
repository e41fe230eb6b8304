package database

import (
	"log"

	"grocery-backoffice/config"
	"grocery-backoffice/internal/models"
)

// SeedDirectory populates an empty employee directory with one employee per
// privileged role so a fresh install can exercise every workflow.
func SeedDirectory() {
	var count int64
	if err := DB.Model(&models.Employee{}).Count(&count).Error; err != nil {
		log.Printf("Failed to inspect employee directory: %v", err)
		return
	}
	if count > 0 {
		return
	}

	defaults := config.AppConfig.Defaults
	seed := []models.Employee{
		{Name: defaults.ManagerName, Email: defaults.ManagerEmail, Role: models.RoleManager},
		{Name: defaults.PaymentHandlerName, Email: defaults.PaymentHandlerEmail, Role: models.RolePaymentHandler},
		{Name: defaults.DeliveryName, Email: defaults.DeliveryEmail, Role: models.RoleDelivery},
	}

	for _, employee := range seed {
		if err := DB.Create(&employee).Error; err != nil {
			log.Printf("Failed to seed %s employee: %v", employee.Role, err)
			continue
		}
		log.Printf("Seeded %s employee (id %d)", employee.Role, employee.ID)
	}
}
