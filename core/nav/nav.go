// Package nav models dashboard navigation as finite state machines:
// the top-level views, the attendance-taking stages and the report sub-views.
package nav

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	State string
	Event string

	// Table maps a state and an event to the next state.
	Table map[State]map[Event]State
)

// Views
const (
	Splash     State = "splash"
	Login      State = "login"
	Home       State = "home"
	Attendance State = "attendance"
	Reports    State = "reports"
	Students   State = "students"
	Settings   State = "settings"
)

// View events
const (
	SplashDone     Event = "splash_done"
	LoginSucceeded Event = "login_succeeded"
	OpenAttendance Event = "open_attendance"
	OpenReports    Event = "open_reports"
	OpenStudents   Event = "open_students"
	OpenSettings   Event = "open_settings"
	Back           Event = "back"
	Logout         Event = "logout"
)

// Attendance stages
const (
	ChooseGrade State = "choose_grade"
	ChooseClass State = "choose_class"
	List        State = "list"
)

// Attendance stage events
const (
	PickGrade   Event = "pick_grade"
	PickClass   Event = "pick_class"
	ShowGrades  Event = "show_grades"
	ShowClasses Event = "show_classes"
)

// Report sub-views
const (
	Menu   State = "menu"
	Absent State = "absent_list"
	Stats  State = "stats"
	Search State = "search"
)

// Report sub-view events
const (
	ShowAbsent Event = "show_absent"
	ShowStats  Event = "show_stats"
	ShowSearch Event = "show_search"
	ShowMenu   Event = "show_menu"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")

	Views = Table{
		Splash: {SplashDone: Login},
		Login:  {LoginSucceeded: Home},
		Home: {
			OpenAttendance: Attendance,
			OpenReports:    Reports,
			OpenStudents:   Students,
			OpenSettings:   Settings,
			Logout:         Login,
		},
		Attendance: {Back: Home},
		Reports:    {Back: Home},
		Students:   {Back: Home},
		Settings:   {Back: Home},
	}

	AttendanceStages = Table{
		ChooseGrade: {PickGrade: ChooseClass},
		ChooseClass: {PickClass: List, ShowGrades: ChooseGrade},
		List:        {ShowGrades: ChooseGrade, ShowClasses: ChooseClass},
	}

	ReportViews = Table{
		Menu:   {ShowAbsent: Absent, ShowStats: Stats, ShowSearch: Search},
		Absent: {ShowMenu: Menu},
		Stats:  {ShowMenu: Menu},
		Search: {ShowMenu: Menu},
	}
)

type Machine struct {
	state State
	table Table
}

func New(initial State, table Table) *Machine {
	return &Machine{state: initial, table: table}
}

// NewViews starts the top-level navigation on the splash screen.
func NewViews() *Machine { return New(Splash, Views) }

// NewAttendanceStages starts attendance taking on the grade choice.
func NewAttendanceStages() *Machine { return New(ChooseGrade, AttendanceStages) }

// NewReportViews starts the reports screen on its menu.
func NewReportViews() *Machine { return New(Menu, ReportViews) }

func (m *Machine) State() State { return m.state }

func (m *Machine) Can(ev Event) bool {
	_, ok := m.table[m.state][ev]
	return ok
}

// Events lists the events accepted in the current state.
func (m *Machine) Events() []Event {
	events := make([]Event, 0, len(m.table[m.state]))
	for ev := range m.table[m.state] {
		events = append(events, ev)
	}
	return events
}

// Fire applies ev and returns the new state. The state is unchanged on error.
func (m *Machine) Fire(ev Event) (State, error) {
	next, ok := m.table[m.state][ev]
	if !ok {
		return m.state, errors.Wrap(ErrInvalidTransition, fmt.Sprintf("%s on %s", ev, m.state))
	}
	m.state = next
	return next, nil
}
