package testutil

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/trezcool/hadir/core"
	"github.com/trezcool/hadir/core/attendance"
)

const DateLayout = "2006/01/02 15:04:05"

// Entry is a message recorded by Logger.
type Entry struct {
	Level string
	Msg   string
	Args  []interface{}
}

// Logger records messages instead of printing them.
type Logger struct {
	mu      sync.Mutex
	Entries []Entry
}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger { return &Logger{} }

func (l *Logger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, Entry{Level: level, Msg: msg, Args: args})
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log("debug", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("info", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("warn", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("error", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.log("fatal", msg, args)
	panic(fmt.Sprintf("fatal: %s", msg))
}

// Count returns how many messages were recorded at level.
func (l *Logger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int
	for _, e := range l.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// FailingStorage is a StorageProvider whose reads and/or writes fail.
type FailingStorage struct {
	GetErr error
	SetErr error
	DelErr error
	Value  string
	Found  bool
}

var _ core.StorageProvider = (*FailingStorage)(nil)

func (s *FailingStorage) Get(string) (string, bool, error) {
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	return s.Value, s.Found, nil
}

func (s *FailingStorage) Set(_, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Value, s.Found = value, true
	return nil
}

func (s *FailingStorage) Delete(string) error {
	if s.DelErr != nil {
		return s.DelErr
	}
	s.Value, s.Found = "", false
	return nil
}

// FreezeTime pins attendance.NowFunc to tm for the duration of the test.
func FreezeTime(t *testing.T, tm time.Time) {
	t.Helper()
	attendance.NowFunc = func() time.Time { return tm }
	t.Cleanup(func() { attendance.NowFunc = time.Now })
}

// Student builds a roster-like student.
func Student(id, grade, classNo int, name string, status attendance.Status, note ...string) attendance.Student {
	st := attendance.Student{
		ID:            id,
		Name:          name,
		Grade:         grade,
		ClassNo:       classNo,
		GuardianPhone: "90000000",
		Status:        status,
	}
	if len(note) > 0 {
		st.Note = note[0]
	}
	return st
}
