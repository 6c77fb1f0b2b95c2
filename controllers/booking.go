// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fixtrack-backend/models"
	"fixtrack-backend/services"
	"fixtrack-backend/utils"
)

// BookingController serves the public side: booking a repair, tracking it,
// and the form options.
type BookingController struct {
	bookings      *services.BookingService
	notifications *services.NotificationService
}

func NewBookingController(bookings *services.BookingService, notifications *services.NotificationService) *BookingController {
	return &BookingController{bookings: bookings, notifications: notifications}
}

// CreateBookingInput defines the public booking form payload
type CreateBookingInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`

	DeviceType   string `json:"deviceType" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serialNumber"`
	Problem      string `json:"problem" binding:"required"`

	Deposit          float64 `json:"deposit" binding:"min=0"`
	PaymentMethod    string  `json:"paymentMethod"`
	PaymentReference string  `json:"paymentReference"`
}

// CreateBooking takes a public repair booking and returns the tracking code.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	repair, err := bc.bookings.BookRepair(services.BookRepairInput{
		Name:               input.Name,
		Phone:              input.Phone,
		Email:              input.Email,
		Address:            input.Address,
		DeviceType:         input.DeviceType,
		Brand:              input.Brand,
		Model:              input.Model,
		SerialNumber:       input.SerialNumber,
		ProblemDescription: input.Problem,
		Deposit:            input.Deposit,
		PaymentMethod:      input.PaymentMethod,
		PaymentReference:   input.PaymentReference,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			utils.RespondWithError(c, http.StatusBadRequest, "Please fill in all required fields")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to book repair")
		}
		return
	}

	go bc.notifications.NotifyBookingConfirmed(repair)

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Repair booked successfully",
		"trackingId": repair.TrackingID,
		"repair":     repair,
	})
}

// trackingResponse is the customer-facing view of a repair. Internal notes
// and staff identifiers stay out of it.
type trackingResponse struct {
	TrackingID    string     `json:"trackingId"`
	Status        string     `json:"status"`
	DeviceType    string     `json:"deviceType"`
	Brand         string     `json:"brand"`
	Model         string     `json:"model"`
	Problem       string     `json:"problem"`
	EstimatedCost float64    `json:"estimatedCost"`
	ActualCost    float64    `json:"actualCost"`
	DepositPaid   float64    `json:"depositPaid"`
	IsPaid        bool       `json:"isPaid"`
	CustomerName  string     `json:"customerName"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	CompletedAt   *time.Time `json:"completedAt"`
}

// TrackRepair answers a public tracking-code lookup.
func (bc *BookingController) TrackRepair(c *gin.Context) {
	repair, err := bc.bookings.FindRepairByTrackingID(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		if errors.Is(err, services.ErrRepairNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invalid tracking ID. Please check and try again.")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	resp := trackingResponse{
		TrackingID:    repair.TrackingID,
		Status:        repair.Status,
		DeviceType:    repair.DeviceType,
		Brand:         repair.Brand,
		Model:         repair.Model,
		Problem:       repair.ProblemDescription,
		EstimatedCost: repair.EstimatedCost,
		ActualCost:    repair.ActualCost,
		DepositPaid:   repair.DepositPaid,
		IsPaid:        repair.IsPaid,
		CreatedAt:     repair.CreatedAt,
		UpdatedAt:     repair.UpdatedAt,
		CompletedAt:   repair.CompletedAt,
	}
	if repair.Customer != nil {
		resp.CustomerName = repair.Customer.Name
	}

	c.JSON(http.StatusOK, resp)
}

// BookingOptions returns the selectable device types, brand lists and status
// labels for the booking form.
func (bc *BookingController) BookingOptions(c *gin.Context) {
	brands := make(map[string][]string, len(models.DeviceTypes))
	for _, deviceType := range models.DeviceTypes {
		brands[deviceType] = models.BrandsForDeviceType(deviceType)
	}

	c.JSON(http.StatusOK, gin.H{
		"deviceTypes":   models.DeviceTypes,
		"brands":        brands,
		"statusOptions": models.StatusOptions,
	})
}
