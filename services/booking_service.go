// services/booking_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fixtrack-backend/cache"
	"fixtrack-backend/models"
	"fixtrack-backend/utils"
)

const maxTrackingAttempts = 5

// BookingService handles the public side of the shop: taking in repairs and
// answering tracking lookups.
type BookingService struct {
	db             *gorm.DB
	cache          *cache.Cache
	logger         *zap.Logger
	trackingPrefix string

	// generateID is swappable so tests can force collisions.
	generateID func(prefix string) string
}

func NewBookingService(db *gorm.DB, c *cache.Cache, logger *zap.Logger, trackingPrefix string) *BookingService {
	return &BookingService{
		db:             db,
		cache:          c,
		logger:         logger,
		trackingPrefix: trackingPrefix,
		generateID:     utils.GenerateTrackingID,
	}
}

// BookRepairInput carries everything the public booking form collects.
type BookRepairInput struct {
	Name    string
	Phone   string
	Email   string
	Address string

	DeviceType         string
	Brand              string
	Model              string
	SerialNumber       string
	ProblemDescription string

	Deposit          float64
	PaymentMethod    string
	PaymentReference string
}

// BookRepair creates the customer (or reuses the one on file for the phone
// number), the repair, and the initial deposit payment when one was taken,
// all in a single transaction so a failure leaves nothing behind.
func (s *BookingService) BookRepair(input BookRepairInput) (*models.Repair, error) {
	if input.Name == "" || input.Phone == "" || input.DeviceType == "" ||
		input.Brand == "" || input.Model == "" || input.ProblemDescription == "" {
		return nil, ErrMissingFields
	}

	deposit := coerceCost(input.Deposit)

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// At most one customer per phone number.
	var customer models.Customer
	err := tx.Where("phone = ?", input.Phone).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer = models.Customer{
			Name:    input.Name,
			Phone:   input.Phone,
			Email:   input.Email,
			Address: input.Address,
		}
		if err := tx.Create(&customer).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	} else if err != nil {
		tx.Rollback()
		return nil, err
	}

	trackingID, err := s.uniqueTrackingID(tx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	repair := models.Repair{
		TrackingID:         trackingID,
		CustomerID:         customer.ID,
		DeviceType:         input.DeviceType,
		Brand:              input.Brand,
		Model:              input.Model,
		SerialNumber:       input.SerialNumber,
		ProblemDescription: input.ProblemDescription,
		Status:             models.StatusReceived,
		DepositPaid:        deposit,
	}
	if err := tx.Create(&repair).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if deposit > 0 {
		method := input.PaymentMethod
		if method == "" {
			method = "Cash"
		}
		payment := models.Payment{
			RepairID:      repair.ID,
			Amount:        deposit,
			PaymentMethod: method,
			Reference:     input.PaymentReference,
			Notes:         "Initial deposit",
		}
		if err := tx.Create(&payment).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		repair.Payments = []models.Payment{payment}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	repair.Customer = &customer
	s.logger.Info("repair booked",
		zap.String("trackingId", repair.TrackingID),
		zap.String("customerId", customer.ID.String()),
		zap.Float64("deposit", deposit),
	)
	return &repair, nil
}

// uniqueTrackingID regenerates until the candidate is unused. The unique
// index on repairs.tracking_id is the actual guarantee against a concurrent
// booking winning the same code; this loop keeps the common case clean.
func (s *BookingService) uniqueTrackingID(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxTrackingAttempts; attempt++ {
		candidate := s.generateID(s.trackingPrefix)

		var count int64
		if err := tx.Model(&models.Repair{}).
			Where("tracking_id = ?", candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}

		s.logger.Warn("tracking id collision, regenerating",
			zap.String("trackingId", candidate),
			zap.Int("attempt", attempt+1),
		)
	}
	return "", ErrTrackingIDExhausted
}

// FindRepairByTrackingID resolves a customer-entered tracking code. Input is
// trimmed and upper-cased the way customers tend to mistype it. Lookups are
// served from the cache when Redis is configured.
func (s *BookingService) FindRepairByTrackingID(ctx context.Context, code string) (*models.Repair, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrRepairNotFound
	}

	var cached models.Repair
	if s.cache.GetRepair(ctx, code, &cached) {
		return &cached, nil
	}

	var repair models.Repair
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Payments").
		Where("tracking_id = ?", code).
		First(&repair).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRepairNotFound
	}
	if err != nil {
		return nil, err
	}

	s.cache.SetRepair(ctx, code, &repair)
	return &repair, nil
}
