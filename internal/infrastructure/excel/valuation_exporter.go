// Package excel render de reportes en formato XLSX con excelize.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mdmgroup/inventory-api/internal/application/reports"
)

// ValuationExporter implementa reports.ExcelGenerator.
type ValuationExporter struct{}

var _ reports.ExcelGenerator = (*ValuationExporter)(nil)

// NewValuationExporter constructor.
func NewValuationExporter() *ValuationExporter {
	return &ValuationExporter{}
}

// GenerateValuationXLSX arma la planilla con el resumen global y el detalle por proyecto.
func (e *ValuationExporter) GenerateValuationXLSX(report *reports.ValuationReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Valuation"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Inventory Valuation Report")
	f.SetCellValue(sheet, "A2", "Generated At")
	f.SetCellValue(sheet, "B2", report.GeneratedAt.Format("2006-01-02 15:04:05"))

	f.SetCellValue(sheet, "A4", "Total Value")
	f.SetCellValue(sheet, "B4", "Unique Items")
	f.SetCellValue(sheet, "C4", "Total Movements")
	f.SetCellValue(sheet, "A5", report.Summary.TotalValue.StringFixed(2))
	f.SetCellValue(sheet, "B5", report.Summary.UniqueItems)
	f.SetCellValue(sheet, "C5", report.Summary.TotalMovements)

	f.SetCellValue(sheet, "A7", "Project Code")
	f.SetCellValue(sheet, "B7", "Project Name")
	f.SetCellValue(sheet, "C7", "Value")
	f.SetCellValue(sheet, "D7", "Items")

	for i, p := range report.Projects {
		row := i + 8
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Code)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.ProjectValue.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.ItemCount)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
