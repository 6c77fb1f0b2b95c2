// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types and send outcomes used by NotificationLog.
const (
	NotificationBookingConfirmed = "booking_confirmed"
	NotificationPickupReminder   = "pickup_reminder"
)

// NotificationLog records every SMS the shop sends to a customer.
type NotificationLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RepairID   uuid.UUID `gorm:"type:uuid;index;not null" json:"repairId"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	Type         string    `gorm:"type:varchar(30)" json:"type"` // booking_confirmed, pickup_reminder
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"errorMessage"`
	SentAt       time.Time `json:"sentAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
