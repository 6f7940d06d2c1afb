package report

import "github.com/trezcool/hadir/core/attendance"

const (
	SchoolLabel  = "المدرسة"
	PresentLabel = "حضور"
	AbsentLabel  = "غياب"

	PresentColor = "#4ade80"
	AbsentColor  = "#f87171"
)

type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type PieChart struct {
	Label  string  `json:"label"`
	Slices []Slice `json:"slices"`
}

func newPieChart(label string, c Counts) PieChart {
	return PieChart{
		Label: label,
		Slices: []Slice{
			{Name: PresentLabel, Value: c.Present, Color: PresentColor},
			{Name: AbsentLabel, Value: c.Absent, Color: AbsentColor},
		},
	}
}

// Charts builds one pie chart per grade, in grade order, plus the school-wide chart.
func Charts(groups map[int]Counts) ([]PieChart, PieChart) {
	perGrade := make([]PieChart, 0, len(groups))
	for _, g := range Grades(groups) {
		perGrade = append(perGrade, newPieChart(attendance.Ordinal(g), groups[g]))
	}
	return perGrade, newPieChart(SchoolLabel, SchoolTotal(groups))
}
