package display_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/hadir/core"
	. "github.com/trezcool/hadir/core/display"
	"github.com/trezcool/hadir/storage/database/inmem"
	"github.com/trezcool/hadir/tests"
)

func TestPreferences_DarkMode(t *testing.T) {
	db := inmemdb.Open()
	prefs := NewPreferences(db, testutil.NewLogger())

	assert.False(t, prefs.DarkMode(), "light by default")

	require.NoError(t, prefs.SetDarkMode(true))
	val, _, _ := db.Get(StorageKey)
	assert.Equal(t, "true", val)
	assert.True(t, prefs.DarkMode())

	on, err := prefs.ToggleDarkMode()
	require.NoError(t, err)
	assert.False(t, on)
	val, _, _ = db.Get(StorageKey)
	assert.Equal(t, "false", val)

	for _, raw := range []string{"TRUE", "1", "yes", ""} {
		require.NoError(t, db.Set(StorageKey, raw))
		assert.False(t, prefs.DarkMode(), raw)
	}
}

func TestPreferences_Failures(t *testing.T) {
	logger := testutil.NewLogger()
	prefs := NewPreferences(&testutil.FailingStorage{GetErr: errors.New("boom"), SetErr: core.ErrQuotaExceeded}, logger)

	assert.False(t, prefs.DarkMode())
	assert.Equal(t, 1, logger.Count("error"))

	on, err := prefs.ToggleDarkMode()
	assert.Equal(t, core.ErrQuotaExceeded, errors.Cause(err))
	assert.False(t, on, "mode unchanged on failure")
}
