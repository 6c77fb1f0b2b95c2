package services

import "fixtrack-backend/models"

// RepairStats is the summary shown on the dashboard and in reports.
type RepairStats struct {
	Total        int     `json:"total"`
	Completed    int     `json:"completed"`
	WaitingParts int     `json:"waiting_parts"`
	InProgress   int     `json:"in_progress"`
	Revenue      float64 `json:"revenue"`
}

// CalculateStats reduces a set of repairs to summary counts and revenue in a
// single pass. Bucket order matters: terminal statuses are claimed first, then
// Waiting for Parts, and the in-progress bucket catches everything else, so
// each repair lands in exactly one bucket and the three always sum to Total.
// Revenue is the sum of actual cost over every input repair.
func CalculateStats(repairs []models.Repair) RepairStats {
	stats := RepairStats{Total: len(repairs)}

	for _, repair := range repairs {
		switch {
		case models.IsTerminalStatus(repair.Status):
			stats.Completed++
		case repair.Status == models.StatusWaitingParts:
			stats.WaitingParts++
		default:
			stats.InProgress++
		}

		stats.Revenue += repair.ActualCost
	}

	return stats
}
