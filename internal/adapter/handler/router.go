package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-recap/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
	}
}

// Setup configures all application routes. Paths are part of the client
// contract and are mounted at the root, not behind a version group.
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	e.POST("/meeting/create", rt.meetingHandler.CreateMeeting)
	e.GET("/meetings", rt.meetingHandler.ListMeetings)
	e.GET("/meetings/:id", rt.meetingHandler.GetMeeting)
	e.DELETE("/meetings/:id", rt.meetingHandler.DeleteMeeting)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
