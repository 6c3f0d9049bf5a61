package service

import (
	"context"
	"fmt"

	"github.com/locvowork/staff_attendance/internal/logger"
	"github.com/locvowork/staff_attendance/pkg/simpleexcel"
)

// Section ids a report template can bind to
const (
	ReportSectionSummary = "summary"
	ReportSectionRecords = "records"
)

// ReportService renders attendance reports as XLSX workbooks.
type ReportService struct {
	attendance   *AttendanceService
	staff        *StaffService
	templatePath string
}

// NewReportService creates a new ReportService. An empty templatePath uses the built-in layout.
func NewReportService(attendance *AttendanceService, staff *StaffService, templatePath string) *ReportService {
	return &ReportService{
		attendance:   attendance,
		staff:        staff,
		templatePath: templatePath,
	}
}

type summaryRow struct {
	Metric string
	Value  interface{}
}

// ExportDay renders the daily summary and the records dated date.
func (s *ReportService) ExportDay(ctx context.Context, date string) ([]byte, error) {
	records := s.attendance.RecordsOn(date)
	summary := SummarizeDay(date, records, s.staff.Count())

	summaryRows := []summaryRow{
		{Metric: "Date", Value: summary.Date},
		{Metric: "Total staff", Value: summary.TotalStaff},
		{Metric: "Present", Value: summary.Present},
		{Metric: "Absent", Value: summary.Absent},
		{Metric: "Late", Value: summary.Late},
		{Metric: "Attendance %", Value: summary.AttendancePercent},
	}

	exporter, err := s.newExporter(date)
	if err != nil {
		return nil, err
	}
	exporter.
		BindSectionData(ReportSectionSummary, summaryRows).
		BindSectionData(ReportSectionRecords, records)

	out, err := exporter.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render report for %s: %w", date, err)
	}
	logger.InfoLog(ctx, "Exported attendance report for %s (%d records)", date, len(records))
	return out, nil
}

func (s *ReportService) newExporter(date string) (*simpleexcel.DataExporter, error) {
	if s.templatePath != "" {
		exporter, err := simpleexcel.NewDataExporterFromYamlFile(s.templatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load report template: %w", err)
		}
		return exporter, nil
	}

	headerStyle := &simpleexcel.StyleTemplate{
		Font: &simpleexcel.FontTemplate{Bold: true, Color: "#FFFFFF"},
		Fill: &simpleexcel.FillTemplate{Color: "#4472C4"},
	}

	exporter := simpleexcel.NewDataExporter()
	exporter.AddSheet("Attendance").
		AddSection(&simpleexcel.SectionConfig{
			ID:         ReportSectionSummary,
			Title:      "Attendance summary " + date,
			TitleStyle: &simpleexcel.StyleTemplate{Font: &simpleexcel.FontTemplate{Bold: true}},
			Columns: []simpleexcel.ColumnConfig{
				{FieldName: "Metric", Width: 18},
				{FieldName: "Value", Width: 16},
			},
		}).
		AddSection(&simpleexcel.SectionConfig{
			ID:          ReportSectionRecords,
			Title:       "Records",
			TitleStyle:  &simpleexcel.StyleTemplate{Font: &simpleexcel.FontTemplate{Bold: true}},
			ShowHeader:  true,
			HeaderStyle: headerStyle,
			Columns: []simpleexcel.ColumnConfig{
				{FieldName: "StaffName", Header: "Staff", Width: 22},
				{FieldName: "StaffID", Header: "Staff ID", Width: 38},
				{FieldName: "CheckIn", Header: "Check in", Width: 10, Default: "-"},
				{FieldName: "CheckOut", Header: "Check out", Width: 10, Default: "-"},
				{FieldName: "Status", Header: "Status", Width: 10},
			},
		})
	return exporter, nil
}
