package controllers

import (
	"net/http"
	"strconv"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, utils.BadRequest("Invalid id '%s'", c.Param("id")))
		return 0, false
	}
	return uint(id), true
}

// CreateGuest handles POST /api/guests.
func (gc *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, utils.BadRequest("Invalid request payload"))
		return
	}
	guest.ID = 0

	if err := gc.GuestSvc.Create(&guest); err != nil {
		utils.JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, guest)
}

// GetGuests handles GET /api/guests.
func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.GuestSvc.GetAll()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GetGuestByID handles GET /api/guests/:id.
func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	guest, err := gc.GuestSvc.GetByID(id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// UpdateGuest handles PUT /api/guests/:id. Only the profile fields are
// written; the room relationship is never touched from here.
func (gc *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var updated models.Guest
	if err := c.ShouldBindJSON(&updated); err != nil {
		utils.JSONError(c, utils.BadRequest("Invalid request payload"))
		return
	}

	guest, err := gc.GuestSvc.Update(id, updated)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// DeleteGuest handles DELETE /api/guests/:id.
func (gc *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := gc.GuestSvc.Delete(id); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Guest deleted successfully",
	})
}
