// services/report_service.go
package services

import (
	"time"

	"gorm.io/gorm"

	"fixtrack-backend/models"
	"fixtrack-backend/utils"
)

// ReportService feeds the dashboard and reporting endpoints. All aggregation
// goes through CalculateStats so the bucket rules live in one place.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type DashboardOverview struct {
	Stats         RepairStats      `json:"stats"`
	StatusCounts  map[string]int64 `json:"statusCounts"`
	RecentRepairs []models.Repair  `json:"recentRepairs"`
}

// Dashboard returns the ten newest repairs, stats over the whole book, and a
// per-status breakdown covering every status label.
func (s *ReportService) Dashboard() (*DashboardOverview, error) {
	var recent []models.Repair
	if err := s.db.Preload("Customer").
		Order("created_at DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		return nil, err
	}

	var all []models.Repair
	if err := s.db.Find(&all).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(models.StatusOptions))
	for _, status := range models.StatusOptions {
		var n int64
		if err := s.db.Model(&models.Repair{}).
			Where("status = ?", status).
			Count(&n).Error; err != nil {
			return nil, err
		}
		counts[status] = n
	}

	return &DashboardOverview{
		Stats:         CalculateStats(all),
		StatusCounts:  counts,
		RecentRepairs: recent,
	}, nil
}

// StatsSince aggregates repairs created on or after the given instant.
func (s *ReportService) StatsSince(since time.Time) (RepairStats, error) {
	var repairs []models.Repair
	if err := s.db.Where("created_at >= ?", since).Find(&repairs).Error; err != nil {
		return RepairStats{}, err
	}
	return CalculateStats(repairs), nil
}

type MonthlyReport struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Stats   RepairStats     `json:"stats"`
	Repairs []models.Repair `json:"repairs"`
}

// MonthlyReport aggregates all repairs booked in the given calendar month.
func (s *ReportService) MonthlyReport(year, month int) (*MonthlyReport, error) {
	start, end := utils.MonthRange(year, month, time.Local)

	var repairs []models.Repair
	if err := s.db.Preload("Customer").
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&repairs).Error; err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Year:    year,
		Month:   month,
		Stats:   CalculateStats(repairs),
		Repairs: repairs,
	}, nil
}
