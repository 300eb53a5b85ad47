package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"resort-backend/controllers"
	"resort-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the Gin engine.
func SetupRouter(
	gc *controllers.GuestController,
	rc *controllers.RoomController,
	ac *controllers.AllotmentController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		guests := api.Group("/guests")
		{
			guests.POST("", gc.CreateGuest)
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// static segment must be registered before any /:param sibling
			rooms.GET("/available", rc.GetAvailableRooms)

			rooms.POST("/allot", ac.AllotRoom)
			rooms.POST("/release/:guestId", ac.ReleaseRoom)
		}
	}

	return r
}
