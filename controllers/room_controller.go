package controllers

import (
	"net/http"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms handles GET /api/rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.GetAll()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetAvailableRooms handles GET /api/rooms/available.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.GetAvailable()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
