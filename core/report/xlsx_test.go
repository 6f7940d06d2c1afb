package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/hadir/core/attendance"
)

func TestWriteXLSX(t *testing.T) {
	doc := attendance.Document{
		Date: "2025/03/01 08:00:00",
		Students: []attendance.Student{
			student(2030, 2, "يوسف الهاشمي", attendance.StatusPresent),
			student(2031, 2, "جميلة العوفي", attendance.StatusExcused, "doctor, clinic"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, doc))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	rows, err := f.GetRows(XLSXSheet)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		CSVHeader,
		{"يوسف الهاشمي", "الثاني", "الأول", "حاضر", "-"},
		{"جميلة العوفي", "الثاني", "الأول", "غائب بعذر", "doctor, clinic"},
	}, rows)
}

func TestExportXLSXFilename(t *testing.T) {
	assert.Equal(t, "absence_2025/03/01 08:00:00.xlsx", ExportXLSXFilename(attendance.Document{Date: "2025/03/01 08:00:00"}))
}
