package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	OpenDesk(c *ginext.Context)
	GetDesk(c *ginext.Context)
	CloseDesk(c *ginext.Context)
	RefreshDesk(c *ginext.Context)
	Scan(c *ginext.Context)
	Enqueue(c *ginext.Context)
	ProcessQueue(c *ginext.Context)
	Select(c *ginext.Context)
	Deselect(c *ginext.Context)
	SubmitSelection(c *ginext.Context)
	MarkAttendance(c *ginext.Context)
	ExportReport(c *ginext.Context)
	CheckInLog(c *ginext.Context)
	BadgeQRCode(c *ginext.Context)
}

// InitRouter mounts the desk API. auth guards every /api route.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", auth)
	{
		// Badges
		api.GET("/badges/qrcode", h.BadgeQRCode)

		// Reports
		api.GET("/events/:id/checkin-log", h.CheckInLog)
		api.GET("/events/:id/report", h.ExportReport)

		// Desk
		d := api.Group("/events/:id/desk")
		d.POST("", h.OpenDesk)
		d.GET("", h.GetDesk)
		d.DELETE("", h.CloseDesk)
		d.POST("/refresh", h.RefreshDesk)

		// Check-in
		d.POST("/scan", h.Scan)
		d.POST("/registrations/:regId/attendance", h.MarkAttendance)
		d.POST("/queue", h.Enqueue)
		d.POST("/queue/process", h.ProcessQueue)
		d.POST("/selection", h.Select)
		d.DELETE("/selection/:regId", h.Deselect)
		d.POST("/selection/submit", h.SubmitSelection)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
