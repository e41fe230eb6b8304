package repository

import (
	"grocery-backoffice/internal/models"

	"gorm.io/gorm"
)

// FavouriteRepository stores per-user product wishlists.
type FavouriteRepository interface {
	FindByUser(userID uint) ([]models.Favourite, error)
	Exists(userID, productID uint) (bool, error)
	Create(favourite *models.Favourite) error
	Delete(userID, productID uint) error
	Clear(userID uint) (int64, error)
}

type favouriteRepository struct {
	DB *gorm.DB
}

// NewFavouriteRepository creates a GORM-backed FavouriteRepository.
func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{DB: db}
}

func (r *favouriteRepository) FindByUser(userID uint) ([]models.Favourite, error) {
	favourites := []models.Favourite{}
	err := r.DB.Where("user_id = ?", userID).Order("id asc").Find(&favourites).Error
	if err != nil {
		return nil, err
	}
	return favourites, nil
}

func (r *favouriteRepository) Exists(userID, productID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Favourite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *favouriteRepository) Create(favourite *models.Favourite) error {
	return r.DB.Create(favourite).Error
}

func (r *favouriteRepository) Delete(userID, productID uint) error {
	result := r.DB.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Favourite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Clear removes every favourite of the user and reports how many there were.
func (r *favouriteRepository) Clear(userID uint) (int64, error) {
	result := r.DB.Where("user_id = ?", userID).Delete(&models.Favourite{})
	return result.RowsAffected, result.Error
}
