package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is one ledger entry against a repair. Rows are only ever appended,
// never edited or removed; the repair's paid flag is maintained separately by
// staff and is not derived from the payment sum.
type Payment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RepairID uuid.UUID `gorm:"type:uuid;index;not null" json:"repairId"`

	Amount        float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string  `json:"paymentMethod"` // Cash, Ecocash, Bank Transfer, ...
	Reference     string  `json:"reference"`
	Notes         string  `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
