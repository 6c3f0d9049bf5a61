package handler

import "github.com/locvowork/staff_attendance/internal/domain"

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddStaffRequest is the body of POST /admin/staff
type AddStaffRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	JoinDate   string `json:"joinDate"`
}

// TodayResponse describes the caller's attendance for today
type TodayResponse struct {
	Date       string                   `json:"date"`
	Record     *domain.AttendanceRecord `json:"record"`
	CheckedIn  bool                     `json:"checkedIn"`
	CheckedOut bool                     `json:"checkedOut"`
}

// HistoryResponse holds the most recent records and the full history size
type HistoryResponse struct {
	Records []domain.AttendanceRecord `json:"records"`
	Total   int                       `json:"total"`
}

// AdminAttendanceResponse lists one day's records for the dashboard
type AdminAttendanceResponse struct {
	Date    string                    `json:"date"`
	Query   string                    `json:"query,omitempty"`
	Records []domain.AttendanceRecord `json:"records"`
}
