package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repair status labels. A fixed set of selectable labels, not an enforced
// workflow: staff may move a repair from any status to any other.
const (
	StatusReceived       = "Received"
	StatusDiagnosing     = "Diagnosing"
	StatusWaitingParts   = "Waiting for Parts"
	StatusRepairing      = "Repairing"
	StatusTesting        = "Testing"
	StatusCompleted      = "Completed"
	StatusReadyForPickup = "Ready for Pickup"
)

// StatusOptions lists every status label in display order.
var StatusOptions = []string{
	StatusReceived,
	StatusDiagnosing,
	StatusWaitingParts,
	StatusRepairing,
	StatusTesting,
	StatusCompleted,
	StatusReadyForPickup,
}

// IsValidStatus reports whether s is one of the known status labels.
func IsValidStatus(s string) bool {
	for _, opt := range StatusOptions {
		if s == opt {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether s counts as "done" for statistics.
func IsTerminalStatus(s string) bool {
	return s == StatusCompleted || s == StatusReadyForPickup
}

// Repair is the central entity: one device handed in for repair, tracked
// publicly by its TrackingID. Payments hang off it as an append-only ledger.
type Repair struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TrackingID string    `gorm:"uniqueIndex;not null" json:"trackingId"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	DeviceType         string `gorm:"not null" json:"deviceType"`
	Brand              string `gorm:"not null" json:"brand"`
	Model              string `gorm:"not null" json:"model"`
	SerialNumber       string `json:"serialNumber"`
	ProblemDescription string `gorm:"type:text;not null" json:"problemDescription"`

	Status        string  `gorm:"not null;default:'Received'" json:"status"`
	InternalNotes string  `gorm:"type:text" json:"internalNotes"`
	EstimatedCost float64 `gorm:"type:decimal(10,2);default:0.0" json:"estimatedCost"`
	ActualCost    float64 `gorm:"type:decimal(10,2);default:0.0" json:"actualCost"`
	DepositPaid   float64 `gorm:"type:decimal(10,2);default:0.0" json:"depositPaid"`
	IsPaid        bool    `gorm:"default:false" json:"isPaid"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt"`

	UpdatedByID *uuid.UUID `gorm:"type:uuid;index" json:"updatedById"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Payments []Payment `gorm:"foreignKey:RepairID" json:"payments,omitempty"`
}

func (r *Repair) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
