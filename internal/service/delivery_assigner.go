package service

import (
	"log"

	"grocery-backoffice/internal/models"
	"grocery-backoffice/internal/repository"
)

// DeliveryAssigner picks the delivery employee who should take the next
// order.
type DeliveryAssigner interface {
	// Assign returns the least-loaded Delivery employee, or nil when none
	// exist. A nil result is a valid outcome, not an error: the order simply
	// proceeds unassigned.
	Assign() (*models.Employee, error)
}

type deliveryAssigner struct {
	directory repository.DirectoryRepository
	orders    repository.OrderRepository
}

// NewDeliveryAssigner creates a DeliveryAssigner over the directory and
// order stores.
func NewDeliveryAssigner(directory repository.DirectoryRepository, orders repository.OrderRepository) DeliveryAssigner {
	return &deliveryAssigner{directory: directory, orders: orders}
}

// Assign computes each Delivery employee's current assignment count across
// all order statuses and picks the minimum. The directory returns employees
// in ascending id order, so ties fall to the lowest id. The counts are a
// point-in-time read; staleness under concurrent placement is acceptable.
func (a *deliveryAssigner) Assign() (*models.Employee, error) {
	employees, err := a.directory.FindEmployeesByRole(models.RoleDelivery)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		log.Println("Warning: no delivery employees available, order proceeds unassigned")
		return nil, nil
	}

	var best *models.Employee
	var bestCount int64
	for i := range employees {
		count, err := a.orders.CountByDeliveryEmployee(employees[i].ID)
		if err != nil {
			return nil, err
		}
		if best == nil || count < bestCount {
			best = &employees[i]
			bestCount = count
		}
	}

	log.Printf("Assigning delivery to %s (id %d, %d open orders)", best.Name, best.ID, bestCount)
	return best, nil
}
