package services

import (
	"testing"

	"fixtrack-backend/models"
)

func TestCalculateStatsEmpty(t *testing.T) {
	stats := CalculateStats(nil)

	if stats.Total != 0 || stats.Completed != 0 || stats.WaitingParts != 0 ||
		stats.InProgress != 0 || stats.Revenue != 0 {
		t.Fatalf("expected all-zero stats for empty input, got %+v", stats)
	}
}

func TestCalculateStatsPartition(t *testing.T) {
	repairs := []models.Repair{
		{Status: models.StatusReceived, ActualCost: 10},
		{Status: models.StatusDiagnosing, ActualCost: 0},
		{Status: models.StatusWaitingParts, ActualCost: 5},
		{Status: models.StatusRepairing, ActualCost: 0},
		{Status: models.StatusTesting, ActualCost: 15},
		{Status: models.StatusCompleted, ActualCost: 120},
		{Status: models.StatusReadyForPickup, ActualCost: 80},
	}

	stats := CalculateStats(repairs)

	if stats.Total != 7 {
		t.Fatalf("expected total 7, got %d", stats.Total)
	}
	if stats.Completed != 2 {
		t.Fatalf("expected 2 completed (Completed + Ready for Pickup), got %d", stats.Completed)
	}
	if stats.WaitingParts != 1 {
		t.Fatalf("expected 1 waiting for parts, got %d", stats.WaitingParts)
	}
	if stats.InProgress != 4 {
		t.Fatalf("expected 4 in progress, got %d", stats.InProgress)
	}
	if got := stats.Completed + stats.WaitingParts + stats.InProgress; got != stats.Total {
		t.Fatalf("buckets must sum to total: %d != %d", got, stats.Total)
	}
	if stats.Revenue != 230 {
		t.Fatalf("expected revenue 230 across all repairs, got %v", stats.Revenue)
	}
}

func TestCalculateStatsWaitingPartsIsNotInProgress(t *testing.T) {
	// A repair waiting for parts is "not completed" too, but it must land in
	// the waiting_parts bucket only.
	repairs := []models.Repair{
		{Status: models.StatusWaitingParts, ActualCost: 0},
	}

	stats := CalculateStats(repairs)

	if stats.WaitingParts != 1 {
		t.Fatalf("expected waiting_parts 1, got %d", stats.WaitingParts)
	}
	if stats.InProgress != 0 {
		t.Fatalf("expected in_progress 0, got %d", stats.InProgress)
	}
}
