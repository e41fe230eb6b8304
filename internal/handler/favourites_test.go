package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grocery-backoffice/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockFavouriteRepository struct {
	mock.Mock
}

func (m *MockFavouriteRepository) FindByUser(userID uint) ([]models.Favourite, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favourite), args.Error(1)
}

func (m *MockFavouriteRepository) Exists(userID, productID uint) (bool, error) {
	args := m.Called(userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavouriteRepository) Create(favourite *models.Favourite) error {
	args := m.Called(favourite)
	return args.Error(0)
}

func (m *MockFavouriteRepository) Delete(userID, productID uint) error {
	args := m.Called(userID, productID)
	return args.Error(0)
}

func (m *MockFavouriteRepository) Clear(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAvailable(category models.Category, id uint) (*models.Product, error) {
	args := m.Called(category, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) HasStock(category models.Category, id uint, qty int) (bool, error) {
	args := m.Called(category, id, qty)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) LocateCategory(id uint) (models.Category, error) {
	args := m.Called(id)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *MockProductRepository) List(category *models.Category) ([]models.Product, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) LowStock() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) AddStock(category models.Category, id uint, qty int) error {
	args := m.Called(category, id, qty)
	return args.Error(0)
}

func (m *MockProductRepository) Deactivate(category models.Category, id uint) error {
	args := m.Called(category, id)
	return args.Error(0)
}

func setupFavouriteRouter(favourites *MockFavouriteRepository, products *MockProductRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &FavouriteHandler{Favourites: favourites, Products: products}
	r := gin.New()
	r.GET("/api/favourites/:userId", h.ListFavourites)
	r.POST("/api/favourites", h.AddFavourite)
	r.DELETE("/api/favourites/:userId/:productId", h.RemoveFavourite)
	r.GET("/api/favourites/:userId/check/:productId", h.CheckFavourite)
	r.DELETE("/api/favourites/:userId", h.ClearFavourites)
	return r
}

func TestAddFavourite_Success(t *testing.T) {
	mockFavourites := new(MockFavouriteRepository)
	mockProducts := new(MockProductRepository)
	router := setupFavouriteRouter(mockFavourites, mockProducts)

	mockProducts.On("FindAvailable", models.CategoryBakery, uint(10)).
		Return(&models.Product{ID: 10, Name: "Sourdough"}, nil)
	mockFavourites.On("Exists", uint(1), uint(10)).Return(false, nil)
	mockFavourites.On("Create", mock.AnythingOfType("*models.Favourite")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Favourite).ID = 3
		}).Return(nil)

	body := `{"userId": 1, "productId": 10, "category": "bakery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/favourites", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Added to favourites successfully", resp["message"])
	assert.Equal(t, float64(3), resp["id"])

	created := mockFavourites.Calls[1].Arguments.Get(0).(*models.Favourite)
	assert.Equal(t, models.CategoryBakery, created.Category)
}

func TestAddFavourite_AlreadyInFavourites(t *testing.T) {
	mockFavourites := new(MockFavouriteRepository)
	mockProducts := new(MockProductRepository)
	router := setupFavouriteRouter(mockFavourites, mockProducts)

	mockProducts.On("FindAvailable", models.CategoryBakery, uint(10)).
		Return(&models.Product{ID: 10}, nil)
	mockFavourites.On("Exists", uint(1), uint(10)).Return(true, nil)

	body := `{"userId": 1, "productId": 10, "category": "bakery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/favourites", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockFavourites.AssertNotCalled(t, "Create")
}

func TestAddFavourite_ProductNotFound(t *testing.T) {
	mockFavourites := new(MockFavouriteRepository)
	mockProducts := new(MockProductRepository)
	router := setupFavouriteRouter(mockFavourites, mockProducts)

	mockProducts.On("FindAvailable", models.CategoryBakery, uint(99)).
		Return(nil, gorm.ErrRecordNotFound)

	body := `{"userId": 1, "productId": 99, "category": "bakery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/favourites", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockFavourites.AssertNotCalled(t, "Create")
}

func TestListFavourites_SkipsDeactivatedProducts(t *testing.T) {
	mockFavourites := new(MockFavouriteRepository)
	mockProducts := new(MockProductRepository)
	router := setupFavouriteRouter(mockFavourites, mockProducts)

	mockFavourites.On("FindByUser", uint(1)).Return([]models.Favourite{
		{ID: 1, UserID: 1, ProductID: 10, Category: models.CategoryBakery},
		{ID: 2, UserID: 1, ProductID: 20, Category: models.CategoryDairy},
	}, nil)
	mockProducts.On("FindAvailable", models.CategoryBakery, uint(10)).
		Return(&models.Product{ID: 10, Name: "Sourdough"}, nil)
	mockProducts.On("FindAvailable", models.CategoryDairy, uint(20)).
		Return(nil, gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/favourites/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)
	assert.Equal(t, "Sourdough", products[0].Name)
}

func TestRemoveFavourite_NotFound(t *testing.T) {
	mockFavourites := new(MockFavouriteRepository)
	mockProducts := new(MockProductRepository)
	router := setupFavouriteRouter(mockFavourites, mockProducts)

	mockFavourites.On("Delete", uint(1), uint(10)).Return(gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/favourites/1/10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckFavourite(t *testing.T) {
	mockFavourites := new(MockFavouriteRepository)
	mockProducts := new(MockProductRepository)
	router := setupFavouriteRouter(mockFavourites, mockProducts)

	mockFavourites.On("Exists", uint(1), uint(10)).Return(true, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/favourites/1/check/10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["isFavourite"])
}

func TestClearFavourites_ReportsCount(t *testing.T) {
	mockFavourites := new(MockFavouriteRepository)
	mockProducts := new(MockProductRepository)
	router := setupFavouriteRouter(mockFavourites, mockProducts)

	mockFavourites.On("Clear", uint(1)).Return(int64(2), nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/favourites/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "All favourites cleared successfully", resp["message"])
	assert.Equal(t, float64(2), resp["count"])
}
