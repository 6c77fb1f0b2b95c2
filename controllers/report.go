// controllers/report.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fixtrack-backend/services"
	"fixtrack-backend/utils"
)

// ReportController handles the reporting endpoints.
type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// GetRecentStats returns aggregate stats over repairs booked in the last
// 30 days.
func (rc *ReportController) GetRecentStats(c *gin.Context) {
	since := time.Now().AddDate(0, 0, -30)

	stats, err := rc.reports.StatsSince(since)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to calculate stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetMonthlyReport returns stats and the repair list for one calendar month.
// ?month= and ?year= default to the current month.
func (rc *ReportController) GetMonthlyReport(c *gin.Context) {
	now := time.Now()

	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month")
		return
	}

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
		return
	}

	report, err := rc.reports.MonthlyReport(year, month)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, report)
}
