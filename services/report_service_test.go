package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"fixtrack-backend/models"
)

func TestDashboard(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db, nil, newTestLogger(), "MFZ")
	repairs := NewRepairService(db, nil, newTestLogger())
	svc := NewReportService(db)

	first := seedRepair(t, bookings)

	second := validBooking()
	second.Phone = "+27820000000"
	if _, err := bookings.BookRepair(second); err != nil {
		t.Fatalf("second booking: %v", err)
	}

	if _, err := repairs.UpdateRepair(first.ID, UpdateRepairInput{
		Status:     strPtr(models.StatusCompleted),
		ActualCost: floatPtr(300),
	}, uuid.New()); err != nil {
		t.Fatalf("UpdateRepair: %v", err)
	}

	overview, err := svc.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if overview.Stats.Total != 2 || overview.Stats.Completed != 1 || overview.Stats.InProgress != 1 {
		t.Fatalf("unexpected stats %+v", overview.Stats)
	}
	if overview.Stats.Revenue != 300 {
		t.Fatalf("expected revenue 300, got %v", overview.Stats.Revenue)
	}
	if len(overview.RecentRepairs) != 2 {
		t.Fatalf("expected 2 recent repairs, got %d", len(overview.RecentRepairs))
	}
	if overview.StatusCounts[models.StatusCompleted] != 1 {
		t.Fatalf("expected 1 completed in status counts, got %d",
			overview.StatusCounts[models.StatusCompleted])
	}
	if len(overview.StatusCounts) != len(models.StatusOptions) {
		t.Fatalf("status counts must cover every label, got %d entries", len(overview.StatusCounts))
	}
}

func TestMonthlyReportFiltersByMonth(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db, nil, newTestLogger(), "MFZ")
	svc := NewReportService(db)

	repair := seedRepair(t, bookings)

	// Move one repair back two months.
	shifted := time.Now().AddDate(0, -2, 0)
	if err := db.Model(&models.Repair{}).
		Where("id = ?", repair.ID).
		Update("created_at", shifted).Error; err != nil {
		t.Fatalf("backdate repair: %v", err)
	}

	second := validBooking()
	second.Phone = "+27820000000"
	if _, err := bookings.BookRepair(second); err != nil {
		t.Fatalf("second booking: %v", err)
	}

	now := time.Now()
	report, err := svc.MonthlyReport(now.Year(), int(now.Month()))
	if err != nil {
		t.Fatalf("MonthlyReport: %v", err)
	}
	if report.Stats.Total != 1 {
		t.Fatalf("expected 1 repair in the current month, got %d", report.Stats.Total)
	}

	past, err := svc.MonthlyReport(shifted.Year(), int(shifted.Month()))
	if err != nil {
		t.Fatalf("MonthlyReport past: %v", err)
	}
	if past.Stats.Total != 1 {
		t.Fatalf("expected 1 repair in the back-dated month, got %d", past.Stats.Total)
	}
}

func TestStatsSince(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db, nil, newTestLogger(), "MFZ")
	svc := NewReportService(db)

	repair := seedRepair(t, bookings)

	// Push the repair outside the 30-day window.
	old := time.Now().AddDate(0, 0, -45)
	if err := db.Model(&models.Repair{}).
		Where("id = ?", repair.ID).
		Update("created_at", old).Error; err != nil {
		t.Fatalf("backdate repair: %v", err)
	}

	stats, err := svc.StatsSince(time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("StatsSince: %v", err)
	}
	if stats.Total != 0 {
		t.Fatalf("expected no repairs in window, got %d", stats.Total)
	}
}
