package repository

import (
	"errors"

	"grocery-backoffice/internal/models"

	"gorm.io/gorm"
)

// ErrStockConflict is returned when a conditional stock decrement matches no
// row, meaning the product vanished or its quantity dropped below the
// requested amount since validation.
var ErrStockConflict = errors.New("insufficient stock")

// ProductRepository is the per-category inventory store.
type ProductRepository interface {
	FindAvailable(category models.Category, id uint) (*models.Product, error)
	HasStock(category models.Category, id uint, qty int) (bool, error)
	LocateCategory(id uint) (models.Category, error)

	List(category *models.Category) ([]models.Product, error)
	LowStock() ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	AddStock(category models.Category, id uint, qty int) error
	Deactivate(category models.Category, id uint) error
}

type productRepository struct {
	DB *gorm.DB
}

// NewProductRepository creates a GORM-backed ProductRepository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{DB: db}
}

// FindAvailable returns the product only if it is active.
func (r *productRepository) FindAvailable(category models.Category, id uint) (*models.Product, error) {
	var product models.Product
	err := r.DB.Where("id = ? AND category = ? AND is_active = ?", id, category, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// HasStock reports whether an active product can cover qty units.
func (r *productRepository) HasStock(category models.Category, id uint, qty int) (bool, error) {
	product, err := r.FindAvailable(category, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return product.Quantity >= qty, nil
}

// LocateCategory resolves which category an active product belongs to.
func (r *productRepository) LocateCategory(id uint) (models.Category, error) {
	var product models.Product
	err := r.DB.Select("category").
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if err != nil {
		return "", err
	}
	return product.Category, nil
}

func (r *productRepository) List(category *models.Category) ([]models.Product, error) {
	products := []models.Product{}
	query := r.DB.Where("is_active = ?", true).Order("id asc")
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) LowStock() ([]models.Product, error) {
	products := []models.Product{}
	err := r.DB.Where("quantity <= low_stock_threshold AND is_active = ?", true).
		Order("id asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Create(product *models.Product) error {
	return r.DB.Create(product).Error
}

func (r *productRepository) Update(product *models.Product) error {
	return r.DB.Save(product).Error
}

// AddStock increments quantity atomically.
func (r *productRepository) AddStock(category models.Category, id uint, qty int) error {
	result := r.DB.Model(&models.Product{}).
		Where("id = ? AND category = ? AND is_active = ?", id, category, true).
		Update("quantity", gorm.Expr("quantity + ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate soft-deletes a product; historical order items keep pointing at
// the row.
func (r *productRepository) Deactivate(category models.Category, id uint) error {
	result := r.DB.Model(&models.Product{}).
		Where("id = ? AND category = ? AND is_active = ?", id, category, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
