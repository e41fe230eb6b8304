package repository

import (
	"errors"

	"grocery-backoffice/internal/models"

	"gorm.io/gorm"
)

// DirectoryRepository is the combined user/employee directory.
type DirectoryRepository interface {
	FindUserByID(id uint) (*models.User, error)
	FindEmployeeByID(id uint) (*models.Employee, error)
	FindEmployeesByRole(role models.Role) ([]models.Employee, error)
	FindPrincipal(id uint) (*models.Principal, error)

	ListEmployees() ([]models.Employee, error)
	CreateEmployee(employee *models.Employee) error
	UpdateEmployee(employee *models.Employee) error
	DeleteEmployee(id uint) error
	CountEmployees() (int64, error)
	ListUsers() ([]models.User, error)
}

type directoryRepository struct {
	DB *gorm.DB
}

// NewDirectoryRepository creates a GORM-backed DirectoryRepository.
func NewDirectoryRepository(db *gorm.DB) DirectoryRepository {
	return &directoryRepository{DB: db}
}

func (r *directoryRepository) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *directoryRepository) FindEmployeeByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.DB.First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindEmployeesByRole returns matching employees ordered by ascending id so
// callers get a reproducible ordering.
func (r *directoryRepository) FindEmployeesByRole(role models.Role) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := r.DB.Where("role = ?", role).Order("id asc").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// FindPrincipal resolves a caller id against the employee directory first,
// then the user directory.
func (r *directoryRepository) FindPrincipal(id uint) (*models.Principal, error) {
	employee, err := r.FindEmployeeByID(id)
	if err == nil {
		return &models.Principal{ID: employee.ID, Name: employee.Name, Role: employee.Role}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	user, err := r.FindUserByID(id)
	if err != nil {
		return nil, err
	}
	return &models.Principal{ID: user.ID, Name: user.Username, Role: user.Role}, nil
}

func (r *directoryRepository) ListEmployees() ([]models.Employee, error) {
	employees := []models.Employee{}
	if err := r.DB.Order("id asc").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *directoryRepository) CreateEmployee(employee *models.Employee) error {
	return r.DB.Create(employee).Error
}

func (r *directoryRepository) UpdateEmployee(employee *models.Employee) error {
	return r.DB.Save(employee).Error
}

func (r *directoryRepository) DeleteEmployee(id uint) error {
	result := r.DB.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *directoryRepository) CountEmployees() (int64, error) {
	var count int64
	err := r.DB.Model(&models.Employee{}).Count(&count).Error
	return count, err
}

func (r *directoryRepository) ListUsers() ([]models.User, error) {
	users := []models.User{}
	if err := r.DB.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
