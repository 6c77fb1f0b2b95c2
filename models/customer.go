package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is keyed by phone number: repeat bookings with the same phone
// reuse the existing row. Customers are never deleted by the application.
type Customer struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Phone string    `gorm:"not null;uniqueIndex" json:"phone"`
	Email string    `json:"email"`

	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `json:"createdAt"`

	Repairs []Repair `gorm:"foreignKey:CustomerID" json:"repairs,omitempty"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
