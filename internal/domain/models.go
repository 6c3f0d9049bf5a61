package domain

import "time"

// Persistence keys, one per collection.
const (
	RecordsKey = "attendance_records"
	StaffKey   = "attendance_staff"
	SessionKey = "attendance_user"
)

// Wall-clock layouts used by records.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ==================== ATTENDANCE ====================

// AttendanceStatus classifies a daily attendance record
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusHalfDay AttendanceStatus = "half-day"
)

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// AttendanceRecord is one staff member's attendance for one local calendar day.
// ID is always RecordID(StaffID, Date).
type AttendanceRecord struct {
	ID        string           `json:"id"`
	StaffID   string           `json:"staffId"`
	StaffName string           `json:"staffName"`
	Date      string           `json:"date"`
	CheckIn   *string          `json:"checkIn"`
	CheckOut  *string          `json:"checkOut"`
	Status    AttendanceStatus `json:"status"`
}

// RecordID derives the composite identifier of a record.
func RecordID(staffID, date string) string {
	return staffID + "-" + date
}

// CheckedIn reports whether a check-in time is set.
func (r AttendanceRecord) CheckedIn() bool {
	return r.CheckIn != nil
}

// CheckedOut reports whether a check-out time is set.
func (r AttendanceRecord) CheckedOut() bool {
	return r.CheckOut != nil
}

// ==================== STAFF ====================

// StaffMember represents a member of the roster
type StaffMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	JoinDate   string `json:"joinDate"`
}

// NewStaffMember holds the caller supplied fields of a new roster entry
type NewStaffMember struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	JoinDate   string `json:"joinDate"`
}

// ==================== AUTH ====================

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// User is the authenticated identity persisted as the session
type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

// LoginResult is returned by a login attempt. Bad credentials are reported here, not as an error.
type LoginResult struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
	User      *User     `json:"user,omitempty"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

// ==================== DERIVED VIEWS ====================

// DailySummary aggregates attendance for one date across the roster
type DailySummary struct {
	Date              string `json:"date"`
	TotalStaff        int    `json:"totalStaff"`
	Present           int    `json:"present"`
	Absent            int    `json:"absent"`
	Late              int    `json:"late"`
	AttendancePercent int    `json:"attendancePercent"`
}

// StaffStats aggregates one staff member's lifetime attendance
type StaffStats struct {
	TotalDays      int `json:"totalDays"`
	PresentDays    int `json:"presentDays"`
	LateDays       int `json:"lateDays"`
	AttendanceRate int `json:"attendanceRate"`
}
