package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/staff_attendance/internal/service"
	"github.com/locvowork/staff_attendance/internal/service/serviceutils"
)

const defaultHistoryLimit = 10

var errInvalidLimit = errors.New("limit must be a positive integer")

// AttendanceHandler serves the logged in user's own attendance
type AttendanceHandler struct {
	svc *service.AttendanceService
}

func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

func (h *AttendanceHandler) CheckInHandler(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Not logged in", err)
	}

	record, err := h.svc.CheckIn(c.Request().Context(), user.ID, user.Name)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to check in", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Checked in successfully", record)
}

func (h *AttendanceHandler) CheckOutHandler(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Not logged in", err)
	}

	record, found, err := h.svc.CheckOut(c.Request().Context(), user.ID)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to check out", err)
	}
	if !found {
		return serviceutils.ResponseSuccess(c, http.StatusOK, "No check-in recorded today", nil)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Checked out successfully", record)
}

func (h *AttendanceHandler) TodayHandler(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Not logged in", err)
	}

	resp := TodayResponse{Date: h.svc.Today()}
	if record, ok := h.svc.TodayRecord(user.ID); ok {
		resp.Record = &record
		resp.CheckedIn = record.CheckedIn()
		resp.CheckedOut = record.CheckedOut()
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Today's attendance retrieved successfully", resp)
}

func (h *AttendanceHandler) HistoryHandler(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Not logged in", err)
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid limit", errInvalidLimit)
		}
	}

	records := h.svc.StaffRecords(user.ID)
	total := len(records)
	if len(records) > limit {
		records = records[:limit]
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Attendance history retrieved successfully", HistoryResponse{
		Records: records,
		Total:   total,
	})
}

func (h *AttendanceHandler) StatsHandler(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Not logged in", err)
	}

	stats := service.StaffStatsFor(h.svc.StaffRecords(user.ID))
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Attendance stats retrieved successfully", stats)
}
