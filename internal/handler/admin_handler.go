package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/service"
	"github.com/locvowork/staff_attendance/internal/service/serviceutils"
)

// AdminHandler serves the admin dashboard
type AdminHandler struct {
	attendance *service.AttendanceService
	staff      *service.StaffService
	reports    *service.ReportService
}

func NewAdminHandler(attendance *service.AttendanceService, staff *service.StaffService, reports *service.ReportService) *AdminHandler {
	return &AdminHandler{
		attendance: attendance,
		staff:      staff,
		reports:    reports,
	}
}

func (h *AdminHandler) AttendanceHandler(c echo.Context) error {
	date, err := h.dateParam(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid date", err)
	}

	query := c.QueryParam("q")
	records := h.attendance.Search(c.Request().Context(), date, query)
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Attendance retrieved successfully", AdminAttendanceResponse{
		Date:    date,
		Query:   query,
		Records: records,
	})
}

func (h *AdminHandler) SummaryHandler(c echo.Context) error {
	date, err := h.dateParam(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid date", err)
	}

	summary := service.SummarizeDay(date, h.attendance.RecordsOn(date), h.staff.Count())
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Daily summary retrieved successfully", summary)
}

func (h *AdminHandler) ListStaffHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Staff listed successfully", h.staff.ListStaff())
}

func (h *AdminHandler) AddStaffHandler(c echo.Context) error {
	var req AddStaffRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if err := validateAddStaff(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid staff member", err)
	}
	if req.JoinDate == "" {
		req.JoinDate = h.attendance.Today()
	}

	member, err := h.staff.AddStaffMember(c.Request().Context(), domain.NewStaffMember{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		JoinDate:   req.JoinDate,
	})
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to add staff member", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Staff member added successfully", member)
}

func (h *AdminHandler) ExportHandler(c echo.Context) error {
	date, err := h.dateParam(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid date", err)
	}

	excelBytes, err := h.reports.ExportDay(c.Request().Context(), date)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate Excel file", err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="attendance_%s.xlsx"`, date))
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(excelBytes)))
	c.Response().WriteHeader(http.StatusOK)

	_, err = c.Response().Write(excelBytes)
	return err
}

// dateParam reads ?date=, defaulting to today.
func (h *AdminHandler) dateParam(c echo.Context) (string, error) {
	date := c.QueryParam("date")
	if date == "" {
		return h.attendance.Today(), nil
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return "", fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return date, nil
}

func validateAddStaff(req *AddStaffRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)
	req.JoinDate = strings.TrimSpace(req.JoinDate)

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Department == "" {
		missing = append(missing, "department")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if req.JoinDate != "" {
		if _, err := time.Parse(domain.DateLayout, req.JoinDate); err != nil {
			return errors.New("joinDate must be YYYY-MM-DD")
		}
	}
	return nil
}
