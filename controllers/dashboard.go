package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixtrack-backend/services"
	"fixtrack-backend/utils"
)

// DashboardController serves the admin dashboard overview.
type DashboardController struct {
	reports *services.ReportService
}

func NewDashboardController(reports *services.ReportService) *DashboardController {
	return &DashboardController{reports: reports}
}

// GetDashboard returns recent repairs, overall stats and per-status counts.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	overview, err := dc.reports.Dashboard()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, overview)
}
