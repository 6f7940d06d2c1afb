package attendance_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/hadir/core"
	. "github.com/trezcool/hadir/core/attendance"
	"github.com/trezcool/hadir/storage/database/inmem"
	"github.com/trezcool/hadir/tests"
)

func setup(t *testing.T) (*Store, *inmemdb.DB, *testutil.Logger) {
	db := inmemdb.Open()
	logger := testutil.NewLogger()
	return NewStore(db, logger, testutil.DateLayout), db, logger
}

func TestStore_SaveLoad(t *testing.T) {
	store, _, logger := setup(t)

	_, ok := store.Load()
	assert.False(t, ok, "nothing saved yet")
	assert.Equal(t, 0, logger.Count("warn"), "no data is not an anomaly")

	doc := Document{
		Date: "2025/03/01 08:00:00",
		Students: []Student{
			testutil.Student(2030, 2, 3, "يوسف الهاشمي", StatusPresent),
			testutil.Student(2031, 2, 3, "نورة الكندي", StatusLate, "traffic"),
			testutil.Student(2032, 2, 3, "ريم, العوفي", StatusExcused, "doctor, clinic"),
		},
	}
	require.NoError(t, store.Save(doc))

	got, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, doc, got)

	// save replaces wholesale
	next := Document{Date: "2025/03/02 08:00:00", Students: doc.Students[:1]}
	require.NoError(t, store.Save(next))
	got, ok = store.Load()
	require.True(t, ok)
	assert.Equal(t, next, got)
}

func TestStore_SaveNilStudents(t *testing.T) {
	store, db, _ := setup(t)

	require.NoError(t, store.Save(Document{Date: "d"}))
	raw, _, _ := db.Get(StorageKey)
	assert.JSONEq(t, `{"date":"d","students":[]}`, raw)

	got, ok := store.Load()
	require.True(t, ok)
	assert.True(t, got.IsEmpty())
}

func TestStore_LoadLegacy(t *testing.T) {
	store, db, logger := setup(t)
	now := time.Date(2025, 3, 1, 7, 45, 0, 0, time.UTC)
	testutil.FreezeTime(t, now)

	legacy := `[
		{"id":2030,"name":"يوسف الهاشمي","grade":2,"classNo":3,"guardianPhone":"90049295","status":"حاضر","note":""},
		{"id":2031,"name":"نورة الكندي","grade":2,"classNo":3,"guardianPhone":"90061640","status":"متأخر","note":"traffic"}
	]`
	require.NoError(t, db.Set(StorageKey, legacy))

	got, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, now.Format(testutil.DateLayout), got.Date)
	require.Len(t, got.Students, 2)
	assert.Equal(t, Student{ID: 2030, Name: "يوسف الهاشمي", Grade: 2, ClassNo: 3, GuardianPhone: "90049295", Status: StatusPresent}, got.Students[0])
	assert.Equal(t, Student{ID: 2031, Name: "نورة الكندي", Grade: 2, ClassNo: 3, GuardianPhone: "90061640", Status: StatusLate, Note: "traffic"}, got.Students[1])
	assert.Empty(t, logger.Entries)

	// a legacy record without note still loads
	require.NoError(t, db.Set(StorageKey, `[{"id":1,"name":"x","grade":1,"classNo":1,"guardianPhone":"9","status":"غائب"}]`))
	got, ok = store.Load()
	require.True(t, ok)
	assert.Equal(t, StatusAbsent, got.Students[0].Status)
}

func TestStore_LoadCurrentWithoutDate(t *testing.T) {
	store, db, _ := setup(t)
	require.NoError(t, db.Set(StorageKey, `{"students":[]}`))

	got, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "", got.Date)
	assert.NotNil(t, got.Students)
}

func TestStore_LoadUnexpectedStatus(t *testing.T) {
	store, db, logger := setup(t)
	raw := `{"date":"d","students":[
		{"id":1,"name":"a","grade":1,"classNo":1,"status":"حاضر"},
		{"id":2,"name":"b","grade":1,"classNo":1,"status":"مريض"},
		{"id":3,"name":"c","grade":1,"classNo":1,"status":null},
		{"id":4,"name":"d","grade":1,"classNo":1}
	]}`
	require.NoError(t, db.Set(StorageKey, raw))

	got, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "d", got.Date)
	require.Len(t, got.Students, 4)
	assert.Equal(t, StatusPresent, got.Students[0].Status)
	assert.Equal(t, Status("مريض"), got.Students[1].Status)
	assert.Equal(t, Status(""), got.Students[2].Status)
	assert.Equal(t, Status(""), got.Students[3].Status)
	assert.Empty(t, logger.Entries)

	// legacy arrays are just as tolerant
	require.NoError(t, db.Set(StorageKey, `[{"id":1,"status":"sick"}]`))
	got, ok = store.Load()
	require.True(t, ok)
	assert.Equal(t, Status("sick"), got.Students[0].Status)
}

func TestStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "not json", raw: "lol"},
		{name: "truncated array", raw: `[{"id":1`},
		{name: "null", raw: "null"},
		{name: "number", raw: "42"},
		{name: "string", raw: `"students"`},
		{name: "object without students", raw: `{"date":"x"}`},
		{name: "students not an array", raw: `{"date":"x","students":3}`},
		{name: "students null", raw: `{"date":"x","students":null}`},
		{name: "array of numbers", raw: `[1,2]`},
		{name: "date not a string", raw: `{"date":5,"students":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, db, logger := setup(t)
			require.NoError(t, db.Set(StorageKey, tt.raw))

			got, ok := store.Load()
			assert.False(t, ok)
			assert.Equal(t, Document{}, got)
			assert.Equal(t, 1, logger.Count("warn"))
		})
	}
}

func TestStore_ReadFailure(t *testing.T) {
	logger := testutil.NewLogger()
	store := NewStore(&testutil.FailingStorage{GetErr: errors.New("disk on fire")}, logger, testutil.DateLayout)

	_, ok := store.Load()
	assert.False(t, ok)
	assert.Equal(t, 1, logger.Count("error"))
}

func TestStore_WriteFailure(t *testing.T) {
	store := NewStore(inmemdb.Open(64), testutil.NewLogger(), testutil.DateLayout)

	doc := Document{Date: "2025/03/01 08:00:00", Students: GenerateRoster(1, 1)}
	err := store.Save(doc)
	require.Error(t, err)
	assert.Equal(t, core.ErrQuotaExceeded, errors.Cause(err))

	_, ok := store.Load()
	assert.False(t, ok, "failed write must not replace the document")
}

func TestService_SaveReload(t *testing.T) {
	store, _, _ := setup(t)
	now := time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)
	testutil.FreezeTime(t, now)
	svc := NewService(store)

	sh, err := NewSheet(2, 3)
	require.NoError(t, err)
	require.NoError(t, sh.Mark(2031, StatusLate, "traffic"))

	saved, err := svc.Save(sh.Students)
	require.NoError(t, err)
	assert.Equal(t, "2025/03/01 08:30:00", saved.Date)

	got, ok := svc.Load()
	require.True(t, ok)
	assert.Equal(t, saved, got)
	require.Len(t, got.Students, 6)
	assert.Equal(t, 2031, got.Students[1].ID)
	assert.Equal(t, StatusLate, got.Students[1].Status)
	assert.Equal(t, "traffic", got.Students[1].Note)
}
