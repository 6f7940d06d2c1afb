package attendance_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/hadir/core"
	. "github.com/trezcool/hadir/core/attendance"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "حاضر", want: StatusPresent},
		{in: " غائب ", want: StatusAbsent},
		{in: "متأخر", want: StatusLate},
		{in: "غائب بعذر", want: StatusExcused},
		{in: "present", want: StatusPresent},
		{in: "LATE", want: StatusLate},
		{in: "excused", want: StatusExcused},
		{in: "excused_absent", want: StatusExcused},
		{in: "", wantErr: true},
		{in: "sick", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatus_JSON(t *testing.T) {
	var st Student
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","status":"late","note":"traffic"}`), &st))
	assert.Equal(t, StatusLate, st.Status)

	data, err := json.Marshal(st)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"متأخر"`)

	assert.Error(t, json.Unmarshal([]byte(`{"status":3}`), &st))

	// unknown labels are kept as-is and rejected by the validator
	st = Student{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","grade":1,"classNo":1,"status":"sick"}`), &st))
	assert.Equal(t, Status("sick"), st.Status)
	assert.False(t, st.Status.IsPresent())
	assert.Error(t, core.Validate.Struct(st))

	st.Status = StatusAbsent
	require.NoError(t, json.Unmarshal([]byte(`{"status":null}`), &st))
	assert.Equal(t, Status(""), st.Status)
}

func TestStatus_IsPresent(t *testing.T) {
	assert.True(t, StatusPresent.IsPresent())
	for _, st := range []Status{StatusAbsent, StatusLate, StatusExcused} {
		assert.False(t, st.IsPresent(), st.Alias())
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 1, want: "الأول"},
		{n: 2, want: "الثاني"},
		{n: 4, want: "الرابع"},
		{n: 6, want: "السادس"},
		{n: 7, want: "7"},
		{n: 0, want: "0"},
		{n: -3, want: "-3"},
	}
	for _, tt := range tests {
		if got := Ordinal(tt.n); got != tt.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestGenerateRoster(t *testing.T) {
	roster := GenerateRoster(2, 3)
	require.Len(t, roster, RosterSize)

	for i, st := range roster {
		assert.Equal(t, 2030+i, st.ID)
		assert.Equal(t, 2, st.Grade)
		assert.Equal(t, 3, st.ClassNo)
		assert.Equal(t, StatusPresent, st.Status)
		assert.Empty(t, st.Note)
		assert.Len(t, st.GuardianPhone, 8)
		assert.Equal(t, byte('9'), st.GuardianPhone[0])
	}
	// seed 203: first[203%20], last[(203+7)%14]
	assert.Equal(t, "يوسف الهاشمي", roster[0].Name)
	assert.Equal(t, "90049295", roster[0].GuardianPhone)

	assert.Equal(t, roster, GenerateRoster(2, 3), "roster must be deterministic")
	assert.NotEqual(t, roster[0].ID, GenerateRoster(2, 4)[0].ID)
}

func TestNewSheet(t *testing.T) {
	tests := []struct {
		name           string
		grade, classNo int
		wantErr        bool
	}{
		{name: "valid", grade: 1, classNo: 4},
		{name: "grade too low", grade: 0, classNo: 1, wantErr: true},
		{name: "class too high", grade: 4, classNo: 5, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, err := NewSheet(tt.grade, tt.classNo)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, sh)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, GenerateRoster(tt.grade, tt.classNo), sh.Students)
		})
	}
}

func TestSheet_Mark(t *testing.T) {
	sh, err := NewSheet(2, 3)
	require.NoError(t, err)

	require.NoError(t, sh.Mark(2031, StatusLate, "traffic"))
	assert.Equal(t, StatusLate, sh.Students[1].Status)
	assert.Equal(t, "traffic", sh.Students[1].Note)

	// model does not enforce the note convention
	require.NoError(t, sh.Mark(2032, StatusAbsent, "flu"))
	assert.Equal(t, "flu", sh.Students[2].Note)

	assert.Equal(t, ErrStudentNotFound, sh.Mark(9999, StatusAbsent, ""))
	err = sh.Mark(2030, Status("sick"), "")
	assert.True(t, core.IsValidationError(err), "got %v", err)
	assert.Equal(t, StatusPresent, sh.Students[0].Status)
}
