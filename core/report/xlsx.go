package report

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/hadir/core/attendance"
)

// XLSXSheet is the worksheet holding the exported rows.
const XLSXSheet = "Sheet1"

// WriteXLSX writes the same table as WriteCSV as an Excel workbook.
func WriteXLSX(w io.Writer, doc attendance.Document) error {
	f := excelize.NewFile()

	row := func(r int, values ...interface{}) error {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(XLSXSheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	header := make([]interface{}, len(CSVHeader))
	for i, h := range CSVHeader {
		header[i] = h
	}
	if err := row(1, header...); err != nil {
		return errors.Wrap(err, "writing XLSX header")
	}
	for i, st := range doc.Students {
		note := st.Note
		if note == "" {
			note = emptyNote
		}
		err := row(i+2,
			st.Name,
			attendance.Ordinal(st.Grade),
			attendance.Ordinal(st.ClassNo),
			string(st.Status),
			note,
		)
		if err != nil {
			return errors.Wrapf(err, "writing XLSX row for student %d", st.ID)
		}
	}
	return errors.Wrap(f.Write(w), "writing XLSX")
}

// ExportXLSXFilename names the Excel export of doc.
func ExportXLSXFilename(doc attendance.Document) string {
	return strings.TrimSuffix(ExportFilename(doc), ".csv") + ".xlsx"
}
