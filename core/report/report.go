// Package report derives the attendance reports: per-grade counts, the school total,
// absentee listings, name search, chart data and the CSV export.
// All functions are pure.
package report

import (
	"sort"
	"strings"

	"github.com/trezcool/hadir/core/attendance"
)

// Counts is a two-state present/absent summary. Late and excused count as absent.
type Counts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
}

func (c Counts) Total() int { return c.Present + c.Absent }

func (c Counts) add(o Counts) Counts {
	return Counts{Present: c.Present + o.Present, Absent: c.Absent + o.Absent}
}

// GroupByGrade counts present and absent students per grade.
// Grades without records are missing from the result.
func GroupByGrade(records []attendance.Student) map[int]Counts {
	groups := make(map[int]Counts)
	for _, st := range records {
		c := groups[st.Grade]
		if st.Status.IsPresent() {
			c.Present++
		} else {
			c.Absent++
		}
		groups[st.Grade] = c
	}
	return groups
}

// SchoolTotal sums the per-grade counts.
func SchoolTotal(groups map[int]Counts) Counts {
	var total Counts
	for _, c := range groups {
		total = total.add(c)
	}
	return total
}

// AbsenteesByGrade lists the non-present students of each grade, in record order.
// Grades without absentees are missing from the result.
func AbsenteesByGrade(records []attendance.Student) map[int][]attendance.Student {
	groups := make(map[int][]attendance.Student)
	for _, st := range records {
		if !st.Status.IsPresent() {
			groups[st.Grade] = append(groups[st.Grade], st)
		}
	}
	return groups
}

// SearchByName returns the students whose name contains query (case-sensitive).
// An empty query matches nobody.
func SearchByName(records []attendance.Student, query string) []attendance.Student {
	found := make([]attendance.Student, 0)
	if query == "" {
		return found
	}
	for _, st := range records {
		if strings.Contains(st.Name, query) {
			found = append(found, st)
		}
	}
	return found
}

// Grades returns the grades of a per-grade summary in ascending order.
func Grades(groups map[int]Counts) []int {
	grades := make([]int, 0, len(groups))
	for g := range groups {
		grades = append(grades, g)
	}
	sort.Ints(grades)
	return grades
}

// AbsenteeGrades returns the grades of an absentee listing in ascending order.
func AbsenteeGrades(groups map[int][]attendance.Student) []int {
	grades := make([]int, 0, len(groups))
	for g := range groups {
		grades = append(grades, g)
	}
	sort.Ints(grades)
	return grades
}
