package report

import (
	"context"
	"fmt"

	"go-fieldops/pkg/apperrors"

	"github.com/xuri/excelize/v2"
)

const (
	hoursSheet     = "Horas"
	materialsSheet = "Materiales"
)

// ExportHours renders HoursForAllWorkers as an .xlsx workbook.
func (s *ReportServiceImpl) ExportHours(ctx context.Context, fechaInicio, fechaFin string) ([]byte, string, error) {
	rows, err := s.HoursForAllWorkers(ctx, fechaInicio, fechaFin)
	if err != nil {
		return nil, "", err
	}

	data := make([][]any, 0, len(rows))
	for _, r := range rows {
		data = append(data, []any{r.CI, r.Nombre, r.Apellido, r.TotalHoras})
	}
	columns := []string{"CI", "Nombre", "Apellido", "Total horas"}

	buf, err := writeWorkbook(hoursSheet, columns, data)
	if err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.ErrInternal)
	}
	return buf, fmt.Sprintf("horas_trabajadas_%s_%s.xlsx", fechaInicio, fechaFin), nil
}

// ExportMaterials renders MaterialsForAllBrigades as an .xlsx workbook, one
// row per brigade and material.
func (s *ReportServiceImpl) ExportMaterials(ctx context.Context, fechaInicio, fechaFin, categoria string) ([]byte, string, error) {
	groups, err := s.MaterialsForAllBrigades(ctx, fechaInicio, fechaFin, categoria)
	if err != nil {
		return nil, "", err
	}

	var data [][]any
	for _, g := range groups {
		for _, m := range g.Materiales {
			data = append(data, []any{g.LiderCI, g.LiderNombre, m.Codigo, m.Descripcion, m.UM, m.Cantidad})
		}
	}
	columns := []string{"Lider CI", "Lider", "Codigo", "Descripcion", "UM", "Cantidad"}

	buf, err := writeWorkbook(materialsSheet, columns, data)
	if err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.ErrInternal)
	}
	return buf, fmt.Sprintf("materiales_%s_%s.xlsx", fechaInicio, fechaFin), nil
}

// writeWorkbook writes a single sheet with a bold header row.
func writeWorkbook(sheetName string, columns []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return nil, err
			}
		}
	}

	for i := range columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 15)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
