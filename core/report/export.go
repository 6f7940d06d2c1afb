package report

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core/attendance"
)

// CSVHeader lists the exported columns, in order.
var CSVHeader = []string{"name", "grade", "class", "status", "note"}

const emptyNote = "-"

// WriteCSV writes one row per student of doc, in document order, after the header.
// Grade and class are rendered as ordinal labels. Fields holding the delimiter,
// quotes or line breaks are quoted.
func WriteCSV(w io.Writer, doc attendance.Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for _, st := range doc.Students {
		note := st.Note
		if note == "" {
			note = emptyNote
		}
		record := []string{
			st.Name,
			attendance.Ordinal(st.Grade),
			attendance.Ordinal(st.ClassNo),
			string(st.Status),
			note,
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "writing CSV row for student %d", st.ID)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing CSV")
}

// ToCSV renders doc as CSV text.
func ToCSV(doc attendance.Document) string {
	var buf bytes.Buffer
	_ = WriteCSV(&buf, doc) // writes to a bytes.Buffer cannot fail
	return buf.String()
}

// ExportFilename names the CSV export of doc. The date is used verbatim.
func ExportFilename(doc attendance.Document) string {
	return "absence_" + doc.Date + ".csv"
}
