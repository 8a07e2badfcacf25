// controllers/availability_controller.go
package controllers

import (
	"net/http"
	"time"

	"cruise-backend/services"
	"cruise-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Svc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Svc: svc}
}

// CheckAvailability answers the booking form's date picker. A departure
// with no tracked capacity reads as available.
func (ctrl *AvailabilityController) CheckAvailability(c *gin.Context) {
	boatType := c.Query("boat_type")
	formula := c.Query("formula")
	if !services.ValidBoatType(boatType) || !services.ValidFormula(boatType, formula) {
		utils.JSONError(c, http.StatusBadRequest, "unknown boat_type/formula combination")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      date.Format("2006-01-02"),
		"boat_type": boatType,
		"formula":   formula,
		"available": ctrl.Svc.CheckAvailability(date, boatType, formula),
	})
}
