package simpleexcel

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Constants & Types
// =============================================================================

const (
	SectionDirectionHorizontal = "horizontal"
	SectionDirectionVertical   = "vertical"
)

// DataExporter is the main entry point for exporting data.
type DataExporter struct {
	// data holds data bound to specific section IDs (for YAML flow)
	data   map[string]interface{}
	sheets []*SheetBuilder
}

// ReportTemplate represents the YAML structure.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate represents a sheet in the YAML.
type SheetTemplate struct {
	Name     string          `yaml:"name"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig defines a section of data in a sheet.
type SectionConfig struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Data        interface{}    `yaml:"-"` // bound at runtime
	Locked      bool           `yaml:"locked"`
	ShowHeader  bool           `yaml:"show_header"`
	Direction   string         `yaml:"direction"` // "horizontal" or "vertical"
	Position    string         `yaml:"position"`  // e.g., "A1"
	TitleStyle  *StyleTemplate `yaml:"title_style"`
	HeaderStyle *StyleTemplate `yaml:"header_style"`
	Columns     []ColumnConfig `yaml:"columns"`
}

// ColumnConfig defines a column in a section.
type ColumnConfig struct {
	FieldName string  `yaml:"field_name"` // struct field name or map key
	Header    string  `yaml:"header"`
	Width     float64 `yaml:"width"`
	// Default is written for nil or missing values
	Default string `yaml:"default"`
}

// StyleTemplate defines basic styling.
type StyleTemplate struct {
	Font   *FontTemplate `yaml:"font"`
	Fill   *FillTemplate `yaml:"fill"`
	Locked *bool         `yaml:"locked"`
}

type FontTemplate struct {
	Bold  bool   `yaml:"bold"`
	Color string `yaml:"color"` // Hex color
}

type FillTemplate struct {
	Color string `yaml:"color"` // Hex color
}

// =============================================================================
// Constructors
// =============================================================================

func NewDataExporter() *DataExporter {
	return &DataExporter{
		data: make(map[string]interface{}),
	}
}

// NewDataExporterFromYamlConfig builds an exporter whose sheets and sections come from a YAML document.
func NewDataExporterFromYamlConfig(config string) (*DataExporter, error) {
	var tmpl ReportTemplate
	if err := yaml.Unmarshal([]byte(config), &tmpl); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	e := NewDataExporter()
	for _, sheetTmpl := range tmpl.Sheets {
		sb := e.AddSheet(sheetTmpl.Name)
		for i := range sheetTmpl.Sections {
			sec := sheetTmpl.Sections[i]
			sb.AddSection(&sec)
		}
	}
	return e, nil
}

func NewDataExporterFromYamlFile(path string) (*DataExporter, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open yaml file: %w", err)
	}
	return NewDataExporterFromYamlConfig(string(raw))
}

// =============================================================================
// Fluent API
// =============================================================================

// AddSheet starts a new sheet builder.
func (e *DataExporter) AddSheet(name string) *SheetBuilder {
	sb := &SheetBuilder{
		exporter: e,
		name:     name,
	}
	e.sheets = append(e.sheets, sb)
	return sb
}

// GetSheet returns the sheet builder with the given name, or nil.
func (e *DataExporter) GetSheet(name string) *SheetBuilder {
	for _, sb := range e.sheets {
		if sb.name == name {
			return sb
		}
	}
	return nil
}

// BindSectionData binds data to a section ID. Bound data wins over SectionConfig.Data.
func (e *DataExporter) BindSectionData(id string, data interface{}) *DataExporter {
	e.data[id] = data
	return e
}

// BuildExcel renders every sheet into a new workbook. The caller closes it.
func (e *DataExporter) BuildExcel() (*excelize.File, error) {
	if len(e.sheets) == 0 {
		return nil, fmt.Errorf("no sheets to export")
	}

	f := excelize.NewFile()
	for i, sb := range e.sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sb.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet %q: %w", sb.name, err)
			}
		} else if _, err := f.NewSheet(sb.name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", sb.name, err)
		}

		if err := e.renderSections(f, sb.name, sb.sections); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// ToBytes exports the Excel file to an in-memory byte slice.
func (e *DataExporter) ToBytes() ([]byte, error) {
	f, err := e.BuildExcel()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// =============================================================================
// SheetBuilder
// =============================================================================

type SheetBuilder struct {
	exporter *DataExporter
	name     string
	sections []*SectionConfig
}

func (sb *SheetBuilder) AddSection(config *SectionConfig) *SheetBuilder {
	sb.sections = append(sb.sections, config)
	return sb
}

func (sb *SheetBuilder) Build() *DataExporter {
	return sb.exporter
}

// =============================================================================
// Rendering Logic
// =============================================================================

func (e *DataExporter) renderSections(f *excelize.File, sheet string, sections []*SectionConfig) error {
	maxRow := 1            // next free row for vertical sections (1-based)
	nextColHorizontal := 1 // next free column for horizontal sections (1-based)
	hasLockedSections := false

	for _, sec := range sections {
		if sec.Locked {
			hasLockedSections = true
		}

		startCol, startRow := 1, maxRow
		if sec.Direction == SectionDirectionHorizontal {
			startCol, startRow = nextColHorizontal, 1
		}
		if sec.Position != "" {
			c, r, err := excelize.CellNameToCoordinates(sec.Position)
			if err != nil {
				return fmt.Errorf("section %q: invalid position %q: %w", sec.ID, sec.Position, err)
			}
			startCol, startRow = c, r
		}
		currentRow := startRow

		// Locked=false only matters once the sheet is protected
		effectiveStyle := func(base *StyleTemplate) *StyleTemplate {
			s := &StyleTemplate{}
			if base != nil {
				*s = *base
			}
			locked := sec.Locked
			s.Locked = &locked
			return s
		}

		if sec.Title != "" {
			cell, _ := excelize.CoordinatesToCellName(startCol, currentRow)
			if err := f.SetCellValue(sheet, cell, sec.Title); err != nil {
				return err
			}
			styleID, err := createStyle(f, effectiveStyle(sec.TitleStyle))
			if err != nil {
				return err
			}
			endCell := cell
			if len(sec.Columns) > 1 {
				endCell, _ = excelize.CoordinatesToCellName(startCol+len(sec.Columns)-1, currentRow)
				if err := f.MergeCell(sheet, cell, endCell); err != nil {
					return err
				}
			}
			if err := f.SetCellStyle(sheet, cell, endCell, styleID); err != nil {
				return err
			}
			currentRow++
		}

		if sec.ShowHeader {
			styleID, err := createStyle(f, effectiveStyle(sec.HeaderStyle))
			if err != nil {
				return err
			}
			for i, col := range sec.Columns {
				cell, _ := excelize.CoordinatesToCellName(startCol+i, currentRow)
				if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
					return err
				}
				if col.Width > 0 {
					colName, _ := excelize.ColumnNumberToName(startCol + i)
					if err := f.SetColWidth(sheet, colName, colName, col.Width); err != nil {
						return err
					}
				}
			}
			currentRow++
		}

		data := sec.Data
		if bound, ok := e.data[sec.ID]; ok && sec.ID != "" {
			data = bound
		}

		dataVal := reflect.ValueOf(data)
		if dataVal.Kind() == reflect.Slice && dataVal.Len() > 0 {
			styleID, err := createStyle(f, effectiveStyle(nil))
			if err != nil {
				return err
			}
			for i := 0; i < dataVal.Len(); i++ {
				item := dataVal.Index(i)
				for j, col := range sec.Columns {
					cell, _ := excelize.CoordinatesToCellName(startCol+j, currentRow)
					if err := f.SetCellValue(sheet, cell, extractValue(item, col)); err != nil {
						return err
					}
				}
				first, _ := excelize.CoordinatesToCellName(startCol, currentRow)
				last, _ := excelize.CoordinatesToCellName(startCol+len(sec.Columns)-1, currentRow)
				if len(sec.Columns) > 0 {
					if err := f.SetCellStyle(sheet, first, last, styleID); err != nil {
						return err
					}
				}
				currentRow++
			}
		}

		// one blank row between vertical sections
		if currentRow+1 > maxRow {
			maxRow = currentRow + 1
		}
		nextColHorizontal = startCol + len(sec.Columns) + 1
	}

	// Locked cells are only read-only on a protected sheet
	if hasLockedSections {
		return f.ProtectSheet(sheet, &excelize.SheetProtectionOptions{
			SelectLockedCells:   true,
			SelectUnlockedCells: true,
		})
	}
	return nil
}

// extractValue reads col.FieldName from a struct (or pointer to one) or a map keyed by string.
func extractValue(item reflect.Value, col ColumnConfig) interface{} {
	for item.Kind() == reflect.Ptr || item.Kind() == reflect.Interface {
		if item.IsNil() {
			return col.Default
		}
		item = item.Elem()
	}

	var field reflect.Value
	switch item.Kind() {
	case reflect.Struct:
		field = item.FieldByName(col.FieldName)
	case reflect.Map:
		if item.Type().Key().Kind() == reflect.String {
			field = item.MapIndex(reflect.ValueOf(col.FieldName).Convert(item.Type().Key()))
		}
	}
	if !field.IsValid() {
		return col.Default
	}

	for field.Kind() == reflect.Ptr || field.Kind() == reflect.Interface {
		if field.IsNil() {
			return col.Default
		}
		field = field.Elem()
	}
	if field.Kind() == reflect.String {
		if field.String() == "" {
			return col.Default
		}
		return field.String()
	}
	return field.Interface()
}

func createStyle(f *excelize.File, tmpl *StyleTemplate) (int, error) {
	style := &excelize.Style{}
	if tmpl.Font != nil {
		style.Font = &excelize.Font{
			Bold:  tmpl.Font.Bold,
			Color: strings.TrimPrefix(tmpl.Font.Color, "#"),
		}
	}
	if tmpl.Fill != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{strings.TrimPrefix(tmpl.Fill.Color, "#")},
			Pattern: 1,
		}
	}
	if tmpl.Locked != nil {
		style.Protection = &excelize.Protection{
			Locked: *tmpl.Locked,
		}
	}
	return f.NewStyle(style)
}
