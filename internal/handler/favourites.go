package handler

import (
	"errors"
	"net/http"

	"grocery-backoffice/internal/models"
	"grocery-backoffice/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FavouriteHandler is the customer wishlist over the product store.
type FavouriteHandler struct {
	Favourites repository.FavouriteRepository
	Products   repository.ProductRepository
}

// ListFavourites resolves a user's favourites to full product rows. Entries
// whose product has since been deactivated are silently skipped.
func (h *FavouriteHandler) ListFavourites(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	favourites, err := h.Favourites.FindByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favourites"})
		return
	}

	products := []models.Product{}
	for _, favourite := range favourites {
		product, err := h.Products.FindAvailable(favourite.Category, favourite.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favourites"})
			return
		}
		products = append(products, *product)
	}
	c.JSON(http.StatusOK, products)
}

type AddFavouriteRequest struct {
	UserID    uint   `json:"userId" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
	Category  string `json:"category" binding:"required"`
}

func (h *FavouriteHandler) AddFavourite(c *gin.Context) {
	var req AddFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and productId are required"})
		return
	}
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + req.Category})
		return
	}

	if _, err := h.Products.FindAvailable(category, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to favourites"})
		return
	}

	exists, err := h.Favourites.Exists(req.UserID, req.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to favourites"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Product already in favourites"})
		return
	}

	favourite := models.Favourite{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Category:  category,
	}
	if err := h.Favourites.Create(&favourite); err != nil {
		// The unique (user, product) index catches concurrent duplicates.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Product already in favourites"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to favourites"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to favourites successfully", "id": favourite.ID})
}

func (h *FavouriteHandler) RemoveFavourite(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	if err := h.Favourites.Delete(userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favourite not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from favourites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favourites successfully"})
}

func (h *FavouriteHandler) CheckFavourite(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	exists, err := h.Favourites.Exists(userID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favourite status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavourite": exists})
}

func (h *FavouriteHandler) ClearFavourites(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	count, err := h.Favourites.Clear(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear favourites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All favourites cleared successfully", "count": count})
}
