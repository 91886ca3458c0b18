package http

import (
	"github.com/gin-gonic/gin"

	"github.com/teamboard/teamboard/internal/interfaces/http/middleware"
)

// SetupRoutes configures all HTTP routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))

	c.engine.GET("/health", c.hdlrs.healthHandler.Check)

	api := c.engine.Group("/api")
	api.Use(middleware.CronAuth(c.cfg.Reminder.TriggerSecret, c.log))
	{
		api.POST("/cron/reminders", c.hdlrs.reminderHandler.TriggerReminders)

		messenger := api.Group("/messenger")
		messenger.GET("/status", c.hdlrs.messengerHandler.GetStatus)
		messenger.PUT("/config", c.hdlrs.messengerHandler.UpdateConfig)
	}
}

// Engine returns the gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
