package controllers

import (
	"net/http"
	"strconv"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type AllotmentController struct {
	AllotmentSvc *services.AllotmentService
}

func NewAllotmentController(svc *services.AllotmentService) *AllotmentController {
	return &AllotmentController{AllotmentSvc: svc}
}

// AllotRoomRequest is the POST /api/rooms/allot body. Fields are pointers so
// absent values reach the service as nil instead of zero.
type AllotRoomRequest struct {
	GuestID *uint `json:"guestId"`
	RoomID  *uint `json:"roomId"`
	Days    *int  `json:"days"`
}

// AllotRoom handles POST /api/rooms/allot.
func (ac *AllotmentController) AllotRoom(c *gin.Context) {
	var req AllotRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.BadRequest("Invalid request payload"))
		return
	}
	if req.GuestID == nil || req.RoomID == nil {
		utils.JSONError(c, utils.BadRequest("guestId and roomId are required"))
		return
	}

	room, err := ac.AllotmentSvc.AllotRoom(*req.GuestID, *req.RoomID, req.Days)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// ReleaseRoom handles POST /api/rooms/release/:guestId.
func (ac *AllotmentController) ReleaseRoom(c *gin.Context) {
	guestID, err := strconv.ParseUint(c.Param("guestId"), 10, 32)
	if err != nil {
		utils.JSONError(c, utils.BadRequest("Invalid guest id '%s'", c.Param("guestId")))
		return
	}

	room, err := ac.AllotmentSvc.ReleaseRoom(uint(guestID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}
