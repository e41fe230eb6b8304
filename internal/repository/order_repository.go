package repository

import (
	"grocery-backoffice/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order aggregate store.
type OrderRepository interface {
	// Create persists the order with its items and decrements stock for
	// every line in the same transaction. A line whose conditional decrement
	// matches no row aborts the whole order with ErrStockConflict.
	Create(order *models.Order) error
	Save(order *models.Order) error
	FindByID(id uint) (*models.Order, error)
	FindAll() ([]models.Order, error)
	FindByCustomer(customerID uint) ([]models.Order, error)
	FindByDeliveryEmployee(employeeID uint) ([]models.Order, error)
	FindPendingReview() ([]models.Order, error)
	CountByDeliveryEmployee(employeeID uint) (int64, error)
	Delete(id uint) error
}

type orderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a GORM-backed OrderRepository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND category = ? AND is_active = ? AND quantity >= ?",
					item.ProductID, item.Category, true, item.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrStockConflict
			}
		}
		return tx.Create(order).Error
	})
}

func (r *orderRepository) Save(order *models.Order) error {
	return r.DB.Save(order).Error
}

func (r *orderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Customer").Preload("Items").
		Preload("DeliveryEmployee").Preload("PaymentHandler").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindAll() ([]models.Order, error) {
	orders := []models.Order{}
	err := r.DB.Preload("Customer").Preload("Items").Preload("DeliveryEmployee").
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByCustomer(customerID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.DB.Preload("Items").Preload("DeliveryEmployee").Preload("PaymentHandler").
		Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByDeliveryEmployee(employeeID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.DB.Preload("Customer").Preload("Items").
		Where("delivery_employee_id = ?", employeeID).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindPendingReview() ([]models.Order, error) {
	orders := []models.Order{}
	err := r.DB.Preload("Customer").Preload("Items").
		Where("status = ? AND payment_method = ?", models.OrderPaymentReview, models.PaymentMethodBank).
		Order("created_at asc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// CountByDeliveryEmployee counts every order ever assigned to the employee,
// regardless of status. The load balancer depends on this exact behaviour.
func (r *orderRepository) CountByDeliveryEmployee(employeeID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Order{}).
		Where("delivery_employee_id = ?", employeeID).Count(&count).Error
	return count, err
}

func (r *orderRepository) Delete(id uint) error {
	result := r.DB.Select("Items").Delete(&models.Order{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
