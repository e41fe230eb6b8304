package models

import (
	"time"
)

// User is a storefront account, mostly customers but managers live here too.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:100;not null" json:"username"`
	Email     string    `gorm:"size:150;unique;not null" json:"email"`
	Address   string    `gorm:"type:text" json:"address"`
	Role      Role      `gorm:"size:30;default:'Customer'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Employee is a staff directory entry.
type Employee struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Email       string    `gorm:"size:150;unique;not null" json:"email"`
	Address     string    `gorm:"type:text" json:"address"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	Role        Role      `gorm:"size:30;not null" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// Principal is the already-authenticated caller of a privileged route,
// resolved from either directory.
type Principal struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
