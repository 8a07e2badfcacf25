// controllers/reservation_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"cruise-backend/services"
	"cruise-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

// CreateReservation handles the booking form submission.
//
// 400: malformed payload or missing/invalid fields (nothing persisted).
// 409: no remaining capacity for the departure (nothing persisted).
// 201: booked. Past the capacity gate the flow never fails; a degraded
// persist still answers 201 with the priced reservation.
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req services.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	res, err := ctrl.Svc.SubmitReservation(&req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONFieldErrors(c, http.StatusBadRequest, vErr.Fields)
			return
		}
		if errors.Is(err, services.ErrNoCapacity) {
			utils.JSONError(c, http.StatusConflict, "no remaining capacity for this date and formula")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     services.ConfirmationMessage(res),
		"reservation": res,
	})
}

// GetQuote prices a party without booking. The reservation form and the
// summary view both call this instead of carrying their own price
// table.
func (ctrl *ReservationController) GetQuote(c *gin.Context) {
	boatType := c.Query("boat_type")
	formula := c.Query("formula")

	if !services.ValidBoatType(boatType) || !services.ValidFormula(boatType, formula) {
		utils.JSONError(c, http.StatusBadRequest, "unknown boat_type/formula combination")
		return
	}

	adults, err := strconv.Atoi(c.DefaultQuery("adults", "1"))
	if err != nil || adults < 1 {
		utils.JSONError(c, http.StatusBadRequest, "adults must be a positive integer")
		return
	}
	children, err := strconv.Atoi(c.DefaultQuery("children", "0"))
	if err != nil || children < 0 {
		utils.JSONError(c, http.StatusBadRequest, "children must be a non-negative integer")
		return
	}

	total, deposit := services.ComputePrice(boatType, formula, adults, children)
	c.JSON(http.StatusOK, gin.H{
		"boat_type":      boatType,
		"formula":        formula,
		"adults":         adults,
		"children":       children,
		"total_price":    total,
		"deposit_amount": deposit,
	})
}

// GetPricing returns the full tariff for the pricing page.
func (ctrl *ReservationController) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"deposit_rate": services.DepositRate,
		"pricing":      services.PricingTable(),
	})
}
