package excel

import (
	"io"
	"log"
	"path/filepath"
	"strings"

	"tablematch/internal/errors"

	"github.com/xuri/excelize/v2"
)

// WorkbookReader decodes spreadsheet workbooks into a raw cell matrix. It is
// the only place binary spreadsheet content is touched; everything past it
// works on plain strings.
type WorkbookReader struct{}

// NewWorkbookReader creates a new workbook reader
func NewWorkbookReader() *WorkbookReader {
	return &WorkbookReader{}
}

// IsWorkbookFile reports whether a filename looks like a spreadsheet rather
// than delimited text.
func IsWorkbookFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xls":
		return true
	}
	return false
}

// ReadMatrix decodes workbook content from r and returns the cell matrix of
// the first sheet: row 0 is the header row, later rows are body rows.
// Decoding failures propagate to the caller; the parsing core never sees a
// broken workbook.
func (wr *WorkbookReader) ReadMatrix(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.WorkbookError("failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.WorkbookError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheets[0])
	}

	log.Printf("[WorkbookReader] Sheet %q read (%d rows)", sheets[0], len(rows))
	return rows, nil
}
