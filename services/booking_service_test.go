package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"fixtrack-backend/models"
)

func validBooking() BookRepairInput {
	return BookRepairInput{
		Name:               "Tendai M",
		Phone:              "+27715991599",
		Email:              "tendai@example.com",
		DeviceType:         "Phone",
		Brand:              "Samsung",
		Model:              "Galaxy S21",
		ProblemDescription: "Cracked screen",
	}
}

func TestBookRepairWithDeposit(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db, nil, newTestLogger(), "MFZ")

	input := validBooking()
	input.Deposit = 50.00

	repair, err := svc.BookRepair(input)
	if err != nil {
		t.Fatalf("BookRepair: %v", err)
	}

	if matched := regexp.MustCompile(`^[A-Z]{3}\d{8}\d{4}$`).MatchString(repair.TrackingID); !matched {
		t.Fatalf("tracking id %q does not match expected format", repair.TrackingID)
	}
	if repair.Status != models.StatusReceived {
		t.Fatalf("expected status %q, got %q", models.StatusReceived, repair.Status)
	}
	if repair.DepositPaid != 50.00 {
		t.Fatalf("expected deposit 50.00, got %v", repair.DepositPaid)
	}

	var customerCount, repairCount, paymentCount int64
	db.Model(&models.Customer{}).Count(&customerCount)
	db.Model(&models.Repair{}).Count(&repairCount)
	db.Model(&models.Payment{}).Count(&paymentCount)
	if customerCount != 1 || repairCount != 1 || paymentCount != 1 {
		t.Fatalf("expected 1 customer, 1 repair, 1 payment; got %d/%d/%d",
			customerCount, repairCount, paymentCount)
	}

	var payment models.Payment
	if err := db.First(&payment).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Amount != 50.00 {
		t.Fatalf("expected payment amount 50.00, got %v", payment.Amount)
	}
	if payment.Notes != "Initial deposit" {
		t.Fatalf("expected payment notes %q, got %q", "Initial deposit", payment.Notes)
	}
}

func TestBookRepairWithoutDepositCreatesNoPayment(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db, nil, newTestLogger(), "MFZ")

	if _, err := svc.BookRepair(validBooking()); err != nil {
		t.Fatalf("BookRepair: %v", err)
	}

	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	if paymentCount != 0 {
		t.Fatalf("expected no payments, got %d", paymentCount)
	}
}

func TestBookRepairReusesCustomerByPhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db, nil, newTestLogger(), "MFZ")

	first, err := svc.BookRepair(validBooking())
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	second := validBooking()
	second.Name = "Different Name"
	second.Model = "Galaxy S22"
	repair, err := svc.BookRepair(second)
	if err != nil {
		t.Fatalf("second booking: %v", err)
	}

	if repair.CustomerID != first.CustomerID {
		t.Fatalf("expected same customer for same phone, got %s and %s",
			first.CustomerID, repair.CustomerID)
	}

	var customerCount int64
	db.Model(&models.Customer{}).Count(&customerCount)
	if customerCount != 1 {
		t.Fatalf("expected 1 customer row, got %d", customerCount)
	}
}

func TestBookRepairMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db, nil, newTestLogger(), "MFZ")

	input := validBooking()
	input.ProblemDescription = ""

	if _, err := svc.BookRepair(input); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	var customerCount int64
	db.Model(&models.Customer{}).Count(&customerCount)
	if customerCount != 0 {
		t.Fatalf("rejected booking must not leave a customer behind, got %d", customerCount)
	}
}

func TestBookRepairRetriesOnTrackingCollision(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db, nil, newTestLogger(), "MFZ")

	existing, err := svc.BookRepair(validBooking())
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	// Force the generator to collide once, then produce a fresh code.
	calls := 0
	svc.generateID = func(prefix string) string {
		calls++
		if calls == 1 {
			return existing.TrackingID
		}
		return prefix + "202501010042"
	}

	input := validBooking()
	input.Phone = "+27820000000"
	repair, err := svc.BookRepair(input)
	if err != nil {
		t.Fatalf("BookRepair after collision: %v", err)
	}

	if repair.TrackingID == existing.TrackingID {
		t.Fatalf("collision was not resolved, both repairs share %q", repair.TrackingID)
	}
	if calls < 2 {
		t.Fatalf("expected at least 2 generator calls, got %d", calls)
	}
}

func TestBookRepairGivesUpAfterRepeatedCollisions(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db, nil, newTestLogger(), "MFZ")

	existing, err := svc.BookRepair(validBooking())
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	svc.generateID = func(prefix string) string { return existing.TrackingID }

	input := validBooking()
	input.Phone = "+27820000000"
	if _, err := svc.BookRepair(input); !errors.Is(err, ErrTrackingIDExhausted) {
		t.Fatalf("expected ErrTrackingIDExhausted, got %v", err)
	}

	var repairCount int64
	db.Model(&models.Repair{}).Count(&repairCount)
	if repairCount != 1 {
		t.Fatalf("failed booking must roll back, expected 1 repair, got %d", repairCount)
	}
}

func TestFindRepairByTrackingID(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db, nil, newTestLogger(), "MFZ")

	booked, err := svc.BookRepair(validBooking())
	if err != nil {
		t.Fatalf("BookRepair: %v", err)
	}

	t.Run("normalises input", func(t *testing.T) {
		code := "  " + booked.TrackingID + " "
		repair, err := svc.FindRepairByTrackingID(context.Background(), code)
		if err != nil {
			t.Fatalf("FindRepairByTrackingID: %v", err)
		}
		if repair.TrackingID != booked.TrackingID {
			t.Fatalf("expected %q, got %q", booked.TrackingID, repair.TrackingID)
		}
		if repair.Customer == nil {
			t.Fatal("expected customer to be loaded")
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.FindRepairByTrackingID(context.Background(), "MFZ000000000000")
		if !errors.Is(err, ErrRepairNotFound) {
			t.Fatalf("expected ErrRepairNotFound, got %v", err)
		}
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := svc.FindRepairByTrackingID(context.Background(), "  ")
		if !errors.Is(err, ErrRepairNotFound) {
			t.Fatalf("expected ErrRepairNotFound, got %v", err)
		}
	})
}
