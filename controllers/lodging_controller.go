// controllers/lodging_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"cruise-backend/services"
	"cruise-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LodgingController struct {
	Svc *services.LodgingService
}

func NewLodgingController(svc *services.LodgingService) *LodgingController {
	return &LodgingController{Svc: svc}
}

func (ctrl *LodgingController) GetLodgings(c *gin.Context) {
	lodgings, err := ctrl.Svc.List(c.Query("commune"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, lodgings)
}

func (ctrl *LodgingController) GetLodgingByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid lodging id")
		return
	}

	lodging, err := ctrl.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "lodging not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, lodging)
}
