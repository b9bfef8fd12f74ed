package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-dashboard-api/internal/middleware"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

// Handlers groups every HTTP handler mounted under the API prefix.
type Handlers struct {
	Calendar     *CalendarHandler
	Schedule     *ScheduleHandler
	BlockedDates *BlockedDateHandler
	Bookings     *BookingHandler
	Earnings     *EarningsHandler
	Admin        *AdminHandler
}

// Register mounts the routes on api. auth must attach a session.
func (h Handlers) Register(api gin.IRouter, auth gin.HandlerFunc) {
	tutor := middleware.RequireRoles(session.RoleTutor)
	student := middleware.RequireRoles(session.RoleStudent)
	admin := middleware.RequireRoles(session.RoleAdmin)

	protected := api.Group("", auth)

	calendar := protected.Group("/calendar", tutor)
	calendar.GET("/day/:date", h.Calendar.Day)
	calendar.GET("/:year/:month", h.Calendar.Month)
	calendar.GET("/:year/:month/server", h.Calendar.ServerMonth)
	calendar.GET("/:year/:month/export", h.Calendar.Export)

	availability := protected.Group("/availability", tutor)
	availability.GET("/settings", h.Schedule.Settings)
	availability.PUT("/settings", h.Schedule.UpdateSettings)
	availability.GET("/schedule/draft", h.Schedule.Draft)
	availability.PUT("/schedule/draft", h.Schedule.Replace)
	availability.DELETE("/schedule/draft", h.Schedule.Discard)
	availability.POST("/schedule/draft/slots", h.Schedule.AddSlot)
	availability.PATCH("/schedule/draft/slots/:day/:index", h.Schedule.UpdateSlot)
	availability.DELETE("/schedule/draft/slots/:day/:index", h.Schedule.RemoveSlot)
	availability.POST("/schedule/draft/save", h.Schedule.Save)
	availability.GET("/blocked-dates", h.BlockedDates.List)
	availability.POST("/blocked-dates", h.BlockedDates.Add)
	availability.DELETE("/blocked-dates/:id", h.BlockedDates.Remove)

	bookings := protected.Group("/bookings")
	bookings.GET("/tutor", tutor, h.Bookings.TutorBookings)
	bookings.GET("/student", student, h.Bookings.StudentBookings)
	bookings.POST("/:id/confirm", tutor, h.Bookings.Confirm)
	bookings.POST("/:id/cancel", h.Bookings.Cancel)
	bookings.PUT("/:id/meet-link", tutor, h.Bookings.UpdateMeetLink)

	earnings := protected.Group("/earnings", tutor)
	earnings.GET("", h.Earnings.Overview)
	earnings.POST("/withdrawals", h.Earnings.RequestWithdrawal)

	adminGroup := protected.Group("/admin", admin)
	adminGroup.GET("/stats", h.Admin.Stats)
	adminGroup.GET("/metrics", h.Admin.SystemMetrics)
	adminGroup.GET("/bookings", h.Admin.Bookings)
	adminGroup.GET("/bookings/export", h.Admin.ExportBookings)
	adminGroup.PUT("/bookings/:id/status", h.Admin.UpdateBookingStatus)
}
