package attendance

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core"
)

// Statuses, persisted as the labels shown on the dashboard.
const (
	StatusPresent Status = "حاضر"
	StatusAbsent  Status = "غائب"
	StatusLate    Status = "متأخر"
	StatusExcused Status = "غائب بعذر"
)

var (
	AllStatuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusExcused}

	statusAliases = map[string]Status{
		"present":        StatusPresent,
		"absent":         StatusAbsent,
		"late":           StatusLate,
		"excused":        StatusExcused,
		"excused_absent": StatusExcused,
	}

	NowFunc = time.Now // mockable

	// errors
	ErrInvalidStatus   = errors.New("invalid status")
	ErrStudentNotFound = errors.New("student not found")
)

type Status string

// ParseStatus accepts a status label or its english alias (case-insensitive).
func ParseStatus(s string) (Status, error) {
	s = core.CleanString(s)
	if st := Status(s); st.Valid() {
		return st, nil
	}
	if st, ok := statusAliases[strings.ToLower(s)]; ok {
		return st, nil
	}
	return "", errors.Wrapf(ErrInvalidStatus, "%q", s)
}

func (s Status) Valid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsPresent reports whether s counts as present in aggregate statistics.
// Late and excused absences count as absent.
func (s Status) IsPresent() bool { return s == StatusPresent }

// Alias returns the english alias of s.
func (s Status) Alias() string {
	switch s {
	case StatusPresent:
		return "present"
	case StatusAbsent:
		return "absent"
	case StatusLate:
		return "late"
	case StatusExcused:
		return "excused"
	default:
		return string(s)
	}
}

// UnmarshalJSON normalizes known labels and aliases and keeps anything else
// verbatim, so stored records with an unexpected status still load (and count
// as absent). Input paths check the result with the status validator.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str *string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == nil {
		*s = ""
		return nil
	}
	if st, err := ParseStatus(*str); err == nil {
		*s = st
	} else {
		*s = Status(*str)
	}
	return nil
}

type Student struct {
	ID            int    `json:"id"`
	Name          string `json:"name" validate:"notblank"`
	Grade         int    `json:"grade" validate:"min=1,max=4"`
	ClassNo       int    `json:"classNo" validate:"min=1,max=4"`
	GuardianPhone string `json:"guardianPhone"`
	Status        Status `json:"status" validate:"status"`
	Note          string `json:"note"` // reason for Late, excuse for Excused
}

// Document is the single persisted attendance record of the current day.
type Document struct {
	Date     string    `json:"date"`
	Students []Student `json:"students"`
}

func (doc Document) IsEmpty() bool { return len(doc.Students) == 0 }

// Timestamp formats the current time with layout.
func Timestamp(layout string) string {
	return NowFunc().Format(layout)
}
