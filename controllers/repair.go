// controllers/repair.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fixtrack-backend/services"
	"fixtrack-backend/utils"
)

// RepairController exposes the staff-facing repair lifecycle operations.
type RepairController struct {
	repairs *services.RepairService
}

func NewRepairController(repairs *services.RepairService) *RepairController {
	return &RepairController{repairs: repairs}
}

// ListRepairs returns all repairs, optionally filtered by ?status= and
// searched with ?search= over tracking id, brand and model.
func (rc *RepairController) ListRepairs(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	search := c.Query("search")

	repairs, err := rc.repairs.ListRepairs(status, search)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve repairs")
		return
	}

	c.JSON(http.StatusOK, repairs)
}

// GetRepair returns one repair with customer and payment ledger.
func (rc *RepairController) GetRepair(c *gin.Context) {
	repairUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid repair ID format")
		return
	}

	repair, err := rc.repairs.GetRepair(repairUUID)
	if err != nil {
		if errors.Is(err, services.ErrRepairNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Repair not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, repair)
}

// UpdateRepairInput defines the staff update payload; nil fields are ignored.
type UpdateRepairInput struct {
	Status        *string  `json:"status"`
	InternalNotes *string  `json:"internalNotes"`
	EstimatedCost *float64 `json:"estimatedCost"`
	ActualCost    *float64 `json:"actualCost"`
	IsPaid        *bool    `json:"isPaid"`
}

// UpdateRepair applies a partial staff update to one repair.
func (rc *RepairController) UpdateRepair(c *gin.Context) {
	adminID, exists := c.Get("adminId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Admin ID not found in context")
		return
	}
	adminUUID, err := uuid.Parse(adminID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid admin ID format")
		return
	}

	repairUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid repair ID format")
		return
	}

	var input UpdateRepairInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	repair, err := rc.repairs.UpdateRepair(repairUUID, services.UpdateRepairInput{
		Status:        input.Status,
		InternalNotes: input.InternalNotes,
		EstimatedCost: input.EstimatedCost,
		ActualCost:    input.ActualCost,
		IsPaid:        input.IsPaid,
	}, adminUUID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRepairNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Repair not found")
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown status label")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update repair")
		}
		return
	}

	c.JSON(http.StatusOK, repair)
}

// RecordPaymentInput defines a staff-entered payment ledger entry.
type RecordPaymentInput struct {
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
	Notes     string  `json:"notes"`
}

// RecordPayment appends a payment to a repair's ledger.
func (rc *RepairController) RecordPayment(c *gin.Context) {
	repairUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid repair ID format")
		return
	}

	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payment, err := rc.repairs.RecordPayment(repairUUID, services.RecordPaymentInput{
		Amount:    input.Amount,
		Method:    input.Method,
		Reference: input.Reference,
		Notes:     input.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRepairNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Repair not found")
		case errors.Is(err, services.ErrInvalidAmount):
			utils.RespondWithError(c, http.StatusBadRequest, "Payment amount must be positive")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		}
		return
	}

	c.JSON(http.StatusCreated, payment)
}
