// controllers/admin_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cruise-backend/config"
	"cruise-backend/models"
	"cruise-backend/services"
	"cruise-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type updateDepositPayload struct {
	DepositPaid *bool `json:"deposit_paid" binding:"required"`
}

type upsertAvailabilityPayload struct {
	Date              string `json:"date" binding:"required"`
	BoatType          string `json:"boat_type" binding:"required"`
	Formula           string `json:"formula" binding:"required"`
	RemainingCapacity int    `json:"remaining_capacity"`
}

func isValidStatus(s string) bool {
	switch s {
	case models.ReservationPending, models.ReservationConfirmed, models.ReservationCancelled:
		return true
	}
	return false
}

// ---------------------------
// Reservation management
// ---------------------------

func GetReservations(c *gin.Context) {
	q := config.DB.Order("date DESC, id DESC")
	if status := c.Query("status"); status != "" {
		if !isValidStatus(status) {
			utils.JSONError(c, http.StatusBadRequest, "unknown status")
			return
		}
		q = q.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := q.Find(&reservations).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

func GetReservationByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	var res models.Reservation
	if err := config.DB.First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// UpdateReservationStatus is the only way a reservation leaves pending.
func UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status required")
		return
	}
	if !isValidStatus(payload.Status) {
		utils.JSONError(c, http.StatusBadRequest, "status must be pending, confirmed or cancelled")
		return
	}

	var res models.Reservation
	if err := config.DB.First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := config.DB.Model(&res).Update("status", payload.Status).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	res.Status = payload.Status
	utils.JSONSuccess(c, http.StatusOK, res)
}

func UpdateReservationDeposit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	var payload updateDepositPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.DepositPaid == nil {
		utils.JSONError(c, http.StatusBadRequest, "deposit_paid required")
		return
	}

	var res models.Reservation
	if err := config.DB.First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := config.DB.Model(&res).Update("deposit_paid", *payload.DepositPaid).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	res.DepositPaid = *payload.DepositPaid
	utils.JSONSuccess(c, http.StatusOK, res)
}

func DeleteReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}
	if err := config.DB.Delete(&models.Reservation{}, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// ---------------------------
// Capacity management
// ---------------------------

func GetAvailabilities(c *gin.Context) {
	q := config.DB.Order("date, boat_type, formula")
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		q = q.Where("date = ?", date)
	}

	var records []models.Availability
	if err := q.Find(&records).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, records)
}

// UpsertAvailability creates or updates the capacity row for one
// departure key and echoes the row as persisted.
func (ctrl *AvailabilityController) UpsertAvailability(c *gin.Context) {
	var payload upsertAvailabilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date, boat_type and formula required")
		return
	}

	if !services.ValidBoatType(payload.BoatType) || !services.ValidFormula(payload.BoatType, payload.Formula) {
		utils.JSONError(c, http.StatusBadRequest, "unknown boat_type/formula combination")
		return
	}
	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	if payload.RemainingCapacity < 0 {
		utils.JSONError(c, http.StatusBadRequest, "remaining_capacity must be >= 0")
		return
	}

	rec, created, err := ctrl.Svc.SetRemaining(date, payload.BoatType, payload.Formula, payload.RemainingCapacity)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if created {
		utils.JSONSuccess(c, http.StatusCreated, rec)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rec)
}

// DeleteAvailability removes the capacity row outright (the model has
// no soft delete), freeing the departure key for later re-creation.
func DeleteAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid availability id")
		return
	}
	if err := config.DB.Delete(&models.Availability{}, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
