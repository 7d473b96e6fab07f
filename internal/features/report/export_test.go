package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportHours(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "17:00", WorkerRef{CI: "111", Nombre: "Ana", Apellido: "Perez"}, []WorkerRef{worker("222", "Luis")}),
	}}
	svc, _, _ := newTestService(repo)

	data, filename, err := svc.ExportHours(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "horas_trabajadas_2024-01-01_2024-01-31.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(hoursSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"CI", "Nombre", "Apellido", "Total horas"},
		{"111", "Ana", "Perez", "9"},
		{"222", "Luis", "", "9"},
	}, rows)
}

func TestExportMaterials(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "09:00", worker("111", "Ana"), nil,
			Material{Codigo: "A", Descripcion: "Cable", UM: "m", Cantidad: "5"},
			Material{Codigo: "B", Descripcion: "Poste", UM: "u", Cantidad: 1}),
	}}
	svc, _, _ := newTestService(repo)

	data, filename, err := svc.ExportMaterials(context.Background(), "2024-01-01", "2024-01-31", "")
	require.NoError(t, err)
	assert.Equal(t, "materiales_2024-01-01_2024-01-31.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{materialsSheet}, f.GetSheetList())
	rows, err := f.GetRows(materialsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"111", "Ana", "A", "Cable", "m", "5"}, rows[1])
	assert.Equal(t, []string{"111", "Ana", "B", "Poste", "u", "1"}, rows[2])
}
