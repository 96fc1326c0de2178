package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestReadMatrix_FirstSheet(t *testing.T) {
	content := buildWorkbook(t, [][]interface{}{
		{"Nom", "Ville"},
		{"Alice", "Paris"},
		{"Bob", "Lyon"},
	})

	matrix, err := NewWorkbookReader().ReadMatrix(content)
	require.NoError(t, err)

	require.Len(t, matrix, 3)
	assert.Equal(t, []string{"Nom", "Ville"}, matrix[0])
	assert.Equal(t, []string{"Alice", "Paris"}, matrix[1])
	assert.Equal(t, []string{"Bob", "Lyon"}, matrix[2])
}

func TestReadMatrix_RejectsNonWorkbookContent(t *testing.T) {
	_, err := NewWorkbookReader().ReadMatrix(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}

func TestIsWorkbookFile(t *testing.T) {
	assert.True(t, IsWorkbookFile("data.xlsx"))
	assert.True(t, IsWorkbookFile("DATA.XLSX"))
	assert.True(t, IsWorkbookFile("legacy.xls"))
	assert.False(t, IsWorkbookFile("data.csv"))
	assert.False(t, IsWorkbookFile("notes.txt"))
	assert.False(t, IsWorkbookFile("archive.xlsx.zip"))
}
