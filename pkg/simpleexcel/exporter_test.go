package simpleexcel

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDataExporter_MixedConfig(t *testing.T) {
	yamlConfig := `
sheets:
  - name: "MixedSheet"
    sections:
      - id: "sec1"
        title: "Section 1"
        show_header: true
        columns:
          - field_name: "Col1"
            header: "Column 1"
`
	exporter, err := NewDataExporterFromYamlConfig(yamlConfig)
	if err != nil {
		t.Fatalf("Failed to create exporter: %v", err)
	}

	sheet := exporter.GetSheet("MixedSheet")
	if sheet == nil {
		t.Fatalf("Failed to get sheet 'MixedSheet'")
	}

	sheet.AddSection(&SectionConfig{
		Title: "Programmatic Section",
		Data:  []struct{ ColA string }{{"Value A"}},
		Columns: []ColumnConfig{
			{FieldName: "ColA", Header: "Column A"},
		},
	})

	exporter.BindSectionData("sec1", []struct{ Col1 string }{{"Value 1"}})

	excelFile, err := exporter.BuildExcel()
	if err != nil {
		t.Fatalf("Failed to build excel: %v", err)
	}
	defer excelFile.Close()

	// Row 1 title, row 2 header, row 3 data, row 4 blank, row 5 next title
	sheetName := "MixedSheet"
	expected := map[string]string{
		"A1": "Section 1",
		"A2": "Column 1",
		"A3": "Value 1",
		"A4": "",
		"A5": "Programmatic Section",
		"A6": "Value A",
	}
	for cell, want := range expected {
		got, _ := excelFile.GetCellValue(sheetName, cell)
		if got != want {
			t.Errorf("Expected %s to be '%s', got '%s'", cell, want, got)
		}
	}
}

func TestDataExporter_MapRowsAndDefaults(t *testing.T) {
	checkIn := "08:45"
	type row struct {
		Name     string
		CheckIn  *string
		CheckOut *string
	}

	exporter := NewDataExporter()
	exporter.AddSheet("Rows").
		AddSection(&SectionConfig{
			ID:         "structs",
			ShowHeader: true,
			Columns: []ColumnConfig{
				{FieldName: "Name", Header: "Name"},
				{FieldName: "CheckIn", Header: "In", Default: "-"},
				{FieldName: "CheckOut", Header: "Out", Default: "-"},
			},
		}).
		AddSection(&SectionConfig{
			ID: "maps",
			Data: []map[string]interface{}{
				{"Label": "Present", "Value": 3},
			},
			Columns: []ColumnConfig{
				{FieldName: "Label"},
				{FieldName: "Value"},
				{FieldName: "Missing", Default: "n/a"},
			},
		})
	exporter.BindSectionData("structs", []row{{Name: "Jane", CheckIn: &checkIn}})

	f, err := exporter.BuildExcel()
	if err != nil {
		t.Fatalf("Failed to build excel: %v", err)
	}
	defer f.Close()

	expected := map[string]string{
		"A2": "Jane",
		"B2": "08:45",
		"C2": "-",
		"A4": "Present",
		"B4": "3",
		"C4": "n/a",
	}
	for cell, want := range expected {
		got, _ := f.GetCellValue("Rows", cell)
		if got != want {
			t.Errorf("Expected %s to be '%s', got '%s'", cell, want, got)
		}
	}
}

func TestDataExporter_HorizontalAndLocked(t *testing.T) {
	exporter := NewDataExporter()
	exporter.AddSheet("Side").
		AddSection(&SectionConfig{
			Title:     "Left",
			Direction: SectionDirectionHorizontal,
			Locked:    true,
			TitleStyle: &StyleTemplate{
				Font: &FontTemplate{Bold: true, Color: "#FFFFFF"},
				Fill: &FillTemplate{Color: "#4472C4"},
			},
			Data:    []struct{ A, B string }{{"a", "b"}},
			Columns: []ColumnConfig{{FieldName: "A"}, {FieldName: "B"}},
		}).
		AddSection(&SectionConfig{
			Title:     "Right",
			Direction: SectionDirectionHorizontal,
			Data:      []struct{ C string }{{"c"}},
			Columns:   []ColumnConfig{{FieldName: "C"}},
		})

	f, err := exporter.BuildExcel()
	if err != nil {
		t.Fatalf("Failed to build excel: %v", err)
	}
	defer f.Close()

	// two columns plus a gap column
	if got, _ := f.GetCellValue("Side", "D1"); got != "Right" {
		t.Errorf("Expected D1 to be 'Right', got '%s'", got)
	}
	if got, _ := f.GetCellValue("Side", "D2"); got != "c" {
		t.Errorf("Expected D2 to be 'c', got '%s'", got)
	}

	merged, err := f.GetMergeCells("Side")
	if err != nil {
		t.Fatalf("Failed to read merged cells: %v", err)
	}
	if len(merged) != 1 || merged[0].GetStartAxis() != "A1" || merged[0].GetEndAxis() != "B1" {
		t.Errorf("Expected title merged across A1:B1, got %v", merged)
	}

	styleID, err := f.GetCellStyle("Side", "A1")
	if err != nil || styleID == 0 {
		t.Errorf("Expected a style on the title cell, got %d (%v)", styleID, err)
	}
}

func TestDataExporter_ToBytesRoundTrip(t *testing.T) {
	exporter := NewDataExporter()
	exporter.AddSheet("Only").AddSection(&SectionConfig{
		Title:   "Hello",
		Columns: []ColumnConfig{{FieldName: "X"}},
	})

	raw, err := exporter.ToBytes()
	if err != nil {
		t.Fatalf("ToBytes failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Failed to reopen workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Only", "A1"); got != "Hello" {
		t.Errorf("Expected A1 to be 'Hello', got '%s'", got)
	}
}

func TestDataExporter_Errors(t *testing.T) {
	if _, err := NewDataExporter().ToBytes(); err == nil {
		t.Error("Expected an error for an exporter without sheets")
	}

	exporter := NewDataExporter()
	exporter.AddSheet("Bad").AddSection(&SectionConfig{ID: "x", Position: "not-a-cell"})
	if _, err := exporter.BuildExcel(); err == nil {
		t.Error("Expected an error for an invalid section position")
	}

	if _, err := NewDataExporterFromYamlConfig("sheets: [unclosed"); err == nil {
		t.Error("Expected an error for malformed yaml")
	}
}
