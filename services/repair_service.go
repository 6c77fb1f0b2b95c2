// services/repair_service.go
package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fixtrack-backend/cache"
	"fixtrack-backend/models"
)

// RepairService applies staff-initiated mutations to repair records.
type RepairService struct {
	db     *gorm.DB
	cache  *cache.Cache
	logger *zap.Logger
}

func NewRepairService(db *gorm.DB, c *cache.Cache, logger *zap.Logger) *RepairService {
	return &RepairService{db: db, cache: c, logger: logger}
}

// UpdateRepairInput is a partial update: nil fields are left untouched.
type UpdateRepairInput struct {
	Status        *string
	InternalNotes *string
	EstimatedCost *float64
	ActualCost    *float64
	IsPaid        *bool
}

// coerceCost mirrors the permissive handling of cost input: anything that is
// not a usable non-negative number is stored as zero.
func coerceCost(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// UpdateRepair overwrites only the provided fields and keeps the derived
// timestamps consistent: completed_at is stamped the first time the status
// becomes Completed and never reset, updated_at/updated_by are stamped on
// every call. The whole write is one transaction. Concurrent staff edits to
// the same repair are last-writer-wins.
func (s *RepairService) UpdateRepair(id uuid.UUID, input UpdateRepairInput, adminID uuid.UUID) (*models.Repair, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var repair models.Repair
	if err := tx.Where("id = ?", id).First(&repair).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRepairNotFound
		}
		return nil, err
	}

	if input.Status != nil {
		if !models.IsValidStatus(*input.Status) {
			tx.Rollback()
			return nil, ErrInvalidStatus
		}
		repair.Status = *input.Status
	}
	if input.InternalNotes != nil {
		repair.InternalNotes = *input.InternalNotes
	}
	if input.EstimatedCost != nil {
		repair.EstimatedCost = coerceCost(*input.EstimatedCost)
	}
	if input.ActualCost != nil {
		repair.ActualCost = coerceCost(*input.ActualCost)
	}
	if input.IsPaid != nil {
		repair.IsPaid = *input.IsPaid
	}

	if repair.Status == models.StatusCompleted && repair.CompletedAt == nil {
		now := time.Now()
		repair.CompletedAt = &now
	}

	repair.UpdatedByID = &adminID
	repair.UpdatedAt = time.Now()

	if err := tx.Save(&repair).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.cache.InvalidateRepair(context.Background(), repair.TrackingID)

	s.logger.Info("repair updated",
		zap.String("trackingId", repair.TrackingID),
		zap.String("status", repair.Status),
		zap.String("updatedBy", adminID.String()),
	)
	return &repair, nil
}

// ListRepairs returns repairs newest first, optionally narrowed to one status
// and/or a search over tracking id, brand and model.
func (s *RepairService) ListRepairs(status, search string) ([]models.Repair, error) {
	query := s.db.Preload("Customer").Order("created_at DESC")

	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("tracking_id LIKE ? OR brand LIKE ? OR model LIKE ?", like, like, like)
	}

	var repairs []models.Repair
	if err := query.Find(&repairs).Error; err != nil {
		return nil, err
	}
	return repairs, nil
}

// GetRepair fetches one repair with its customer and payment ledger.
func (s *RepairService) GetRepair(id uuid.UUID) (*models.Repair, error) {
	var repair models.Repair
	err := s.db.
		Preload("Customer").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payments.created_at ASC")
		}).
		Where("id = ?", id).
		First(&repair).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRepairNotFound
	}
	if err != nil {
		return nil, err
	}
	return &repair, nil
}

// RecordPaymentInput describes one staff-entered ledger entry.
type RecordPaymentInput struct {
	Amount    float64
	Method    string
	Reference string
	Notes     string
}

// RecordPayment appends a payment to the repair's ledger. It deliberately
// does not touch the repair's paid flag or cost fields; those stay under
// explicit staff control.
func (s *RepairService) RecordPayment(repairID uuid.UUID, input RecordPaymentInput) (*models.Payment, error) {
	if input.Amount <= 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, ErrInvalidAmount
	}

	var repair models.Repair
	if err := s.db.Where("id = ?", repairID).First(&repair).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRepairNotFound
		}
		return nil, err
	}

	method := input.Method
	if method == "" {
		method = "Cash"
	}

	payment := models.Payment{
		RepairID:      repair.ID,
		Amount:        input.Amount,
		PaymentMethod: method,
		Reference:     input.Reference,
		Notes:         input.Notes,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.String("trackingId", repair.TrackingID),
		zap.Float64("amount", payment.Amount),
		zap.String("method", payment.PaymentMethod),
	)
	return &payment, nil
}
