package handler

import (
	"errors"
	"net/http"

	"grocery-backoffice/internal/models"
	"grocery-backoffice/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InventoryHandler struct {
	Products repository.ProductRepository
}

// categoryParam reads and validates the category query parameter.
func categoryParam(c *gin.Context, required bool) (models.Category, bool) {
	raw := c.Query("category")
	if raw == "" {
		if required {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
			return "", false
		}
		return "", true
	}
	category, ok := models.ParseCategory(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + raw})
		return "", false
	}
	return category, true
}

func (h *InventoryHandler) ListProducts(c *gin.Context) {
	category, ok := categoryParam(c, false)
	if !ok {
		return
	}
	var filter *models.Category
	if category != "" {
		filter = &category
	}
	products, err := h.Products.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *InventoryHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	category, ok := categoryParam(c, true)
	if !ok {
		return
	}
	product, err := h.Products.FindAvailable(category, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

type CreateProductRequest struct {
	Category          string  `json:"category" binding:"required"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" binding:"required"`
	Quantity          int     `json:"quantity"`
	Image             string  `json:"image"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}

func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, ok := models.ParseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + req.Category})
		return
	}
	if req.Price < 0 || req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price and quantity must be non-negative"})
		return
	}

	product := models.Product{
		Category:          category,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Quantity:          req.Quantity,
		Image:             req.Image,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          true,
	}
	if err := h.Products.Create(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

type UpdateProductRequest struct {
	Category    string   `json:"category" binding:"required"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
}

func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + req.Category})
		return
	}

	product, err := h.Products.FindAvailable(category, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
			return
		}
		product.Price = *req.Price
	}
	if req.Image != nil {
		product.Image = *req.Image
	}

	if err := h.Products.Update(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

type AddStockRequest struct {
	Category string `json:"category" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

func (h *InventoryHandler) AddStock(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + req.Category})
		return
	}
	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
		return
	}

	if err := h.Products.AddStock(category, id, req.Quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock added successfully"})
}

// DeleteProduct soft-deletes: the row survives for historical orders.
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	category, ok := categoryParam(c, true)
	if !ok {
		return
	}
	if err := h.Products.Deactivate(category, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *InventoryHandler) LocateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	category, err := h.Products.LocateCategory(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to locate product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"productId": id, "category": category})
}

func (h *InventoryHandler) LowStockAlerts(c *gin.Context) {
	products, err := h.Products.LowStock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}
	c.JSON(http.StatusOK, products)
}
