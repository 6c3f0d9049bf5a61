package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/locvowork/staff_attendance/internal/domain"
)

// Handlers groups everything RegisterRoutes mounts
type Handlers struct {
	Verifier   TokenVerifier
	Auth       *AuthHandler
	Attendance *AttendanceHandler
	Admin      *AdminHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	requireAuth := RequireAuth(h.Verifier)

	authGroup := e.Group("/auth")
	authGroup.POST("/login", h.Auth.LoginHandler)
	authGroup.POST("/logout", h.Auth.LogoutHandler, requireAuth)
	authGroup.GET("/me", h.Auth.MeHandler, requireAuth)

	attendanceGroup := e.Group("/attendance", requireAuth)
	attendanceGroup.POST("/check-in", h.Attendance.CheckInHandler)
	attendanceGroup.POST("/check-out", h.Attendance.CheckOutHandler)
	attendanceGroup.GET("/today", h.Attendance.TodayHandler)
	attendanceGroup.GET("/history", h.Attendance.HistoryHandler)
	attendanceGroup.GET("/stats", h.Attendance.StatsHandler)

	adminGroup := e.Group("/admin", requireAuth, RequireRole(domain.RoleAdmin))
	adminGroup.GET("/attendance", h.Admin.AttendanceHandler)
	adminGroup.GET("/summary", h.Admin.SummaryHandler)
	adminGroup.GET("/staff", h.Admin.ListStaffHandler)
	adminGroup.POST("/staff", h.Admin.AddStaffHandler)
	adminGroup.GET("/export", h.Admin.ExportHandler)
}
