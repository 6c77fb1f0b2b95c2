// services/notification_service.go
package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fixtrack-backend/config"
	"fixtrack-backend/models"
	"fixtrack-backend/utils"
)

// Pickup reminders are repeated at most every reminderSpacingDays while a
// repair sits in Ready for Pickup.
const reminderSpacingDays = 3

// NotificationService texts customers about their repairs: a confirmation
// with the tracking code at booking time, and pickup reminders for repairs
// waiting to be collected. Disabled entirely when Twilio is not configured.
type NotificationService struct {
	db       *gorm.DB
	logger   *zap.Logger
	client   *twilio.RestClient
	from     string
	shopName string
	enabled  bool
}

func NewNotificationService(db *gorm.DB, logger *zap.Logger, cfg *config.Config) *NotificationService {
	enabled := cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "" && cfg.Twilio.FromNumber != ""

	var client *twilio.RestClient
	if enabled {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.Twilio.AccountSID,
			Password: cfg.Twilio.AuthToken,
		})
	}

	return &NotificationService{
		db:       db,
		logger:   logger,
		client:   client,
		from:     cfg.Twilio.FromNumber,
		shopName: cfg.Shop.Name,
		enabled:  enabled,
	}
}

// StartScheduler runs the pickup reminder job every day at 9 AM.
func (s *NotificationService) StartScheduler() {
	if !s.enabled {
		s.logger.Info("notifications disabled, scheduler not started")
		return
	}

	c := cron.New()
	c.AddFunc("0 9 * * *", s.SendPickupReminders)
	c.Start()

	s.logger.Info("pickup reminder scheduler started")
}

// NotifyBookingConfirmed texts the tracking code to the customer right after
// booking. Failures are logged, never surfaced to the booking flow.
func (s *NotificationService) NotifyBookingConfirmed(repair *models.Repair) {
	if !s.enabled || repair.Customer == nil {
		return
	}

	message := fmt.Sprintf("%s: your %s %s repair is booked. Track it anytime with code %s.",
		s.shopName, repair.Brand, repair.Model, repair.TrackingID)

	s.send(repair, models.NotificationBookingConfirmed, message)
}

// SendPickupReminders texts every customer whose repair is sitting in Ready
// for Pickup, skipping repairs reminded within the last few days.
func (s *NotificationService) SendPickupReminders() {
	s.logger.Info("starting pickup reminder run")

	var repairs []models.Repair
	if err := s.db.Preload("Customer").
		Where("status = ?", models.StatusReadyForPickup).
		Find(&repairs).Error; err != nil {
		s.logger.Error("failed to fetch pickup repairs", zap.Error(err))
		return
	}

	sent := 0
	for i := range repairs {
		repair := &repairs[i]
		if repair.Customer == nil {
			continue
		}
		if s.recentlyReminded(repair) {
			continue
		}

		message := fmt.Sprintf("%s: your %s %s (code %s) is ready for pickup.",
			s.shopName, repair.Brand, repair.Model, repair.TrackingID)
		s.send(repair, models.NotificationPickupReminder, message)
		sent++
	}

	s.logger.Info("pickup reminder run completed", zap.Int("sent", sent))
}

// recentlyReminded checks the notification log for a pickup reminder inside
// the spacing window.
func (s *NotificationService) recentlyReminded(repair *models.Repair) bool {
	cutoff := utils.BeginningOfDay(time.Now()).AddDate(0, 0, -reminderSpacingDays)

	var count int64
	if err := s.db.Model(&models.NotificationLog{}).
		Where("repair_id = ? AND type = ? AND status = ? AND sent_at >= ?",
			repair.ID, models.NotificationPickupReminder, "sent", cutoff).
		Count(&count).Error; err != nil {
		s.logger.Error("failed to check notification log", zap.Error(err))
		return true
	}
	return count > 0
}

func (s *NotificationService) send(repair *models.Repair, notifType, message string) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(repair.Customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	status := "sent"
	errorMsg := ""

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.logger.Error("failed to send SMS",
			zap.String("trackingId", repair.TrackingID),
			zap.Error(err),
		)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		s.logger.Info("SMS sent",
			zap.String("trackingId", repair.TrackingID),
			zap.String("sid", *resp.Sid),
		)
	}

	entry := models.NotificationLog{
		RepairID:     repair.ID,
		CustomerID:   repair.CustomerID,
		Type:         notifType,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		s.logger.Error("failed to log notification",
			zap.String("trackingId", repair.TrackingID),
			zap.Error(err),
		)
	}
}
