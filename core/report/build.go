package report

import "github.com/trezcool/hadir/core/attendance"

type GradeSummary struct {
	Grade int    `json:"grade"`
	Label string `json:"label"`
	Counts
}

type GradeAbsentees struct {
	Grade    int                  `json:"grade"`
	Label    string               `json:"label"`
	Students []attendance.Student `json:"students"`
}

// Report bundles every view of the reports screen.
type Report struct {
	Date      string           `json:"date"`
	Empty     bool             `json:"empty"`
	Grades    []GradeSummary   `json:"grades"`
	Total     Counts           `json:"total"`
	Absentees []GradeAbsentees `json:"absentees"`
	Charts    []PieChart       `json:"charts"`
	School    *PieChart        `json:"school"` // nil when there is nothing to chart
}

// Build derives the report of doc. An empty document yields the empty-state report.
func Build(doc attendance.Document) Report {
	groups := GroupByGrade(doc.Students)
	rep := Report{
		Date:      doc.Date,
		Empty:     doc.IsEmpty(),
		Grades:    make([]GradeSummary, 0, len(groups)),
		Total:     SchoolTotal(groups),
		Absentees: make([]GradeAbsentees, 0),
	}

	for _, g := range Grades(groups) {
		rep.Grades = append(rep.Grades, GradeSummary{Grade: g, Label: attendance.Ordinal(g), Counts: groups[g]})
	}

	absentees := AbsenteesByGrade(doc.Students)
	for _, g := range AbsenteeGrades(absentees) {
		rep.Absentees = append(rep.Absentees, GradeAbsentees{Grade: g, Label: attendance.Ordinal(g), Students: absentees[g]})
	}

	charts, school := Charts(groups)
	rep.Charts = charts
	if len(charts) > 0 {
		rep.School = &school
	}
	return rep
}
