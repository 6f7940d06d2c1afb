package banner_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/hadir/core"
	. "github.com/trezcool/hadir/core/banner"
	"github.com/trezcool/hadir/storage/database/inmem"
	"github.com/trezcool/hadir/tests"
)

func TestList_AddRemove(t *testing.T) {
	db := inmemdb.Open()
	list := NewList(db, testutil.NewLogger())

	banners, err := list.All()
	require.NoError(t, err)
	assert.Equal(t, Defaults, banners)
	assert.Equal(t, 0, db.Len(), "defaults are not persisted until modified")

	banners, err = list.Add("x.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"/ads/arabic-teachers.jpg", "/ads/banner2.jpg", "/ads/banner3.jpg", "x.jpg"}, banners)

	banners, err = list.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"/ads/banner2.jpg", "/ads/banner3.jpg", "x.jpg"}, banners)

	// persisted
	banners, err = NewList(db, testutil.NewLogger()).All()
	require.NoError(t, err)
	assert.Equal(t, []string{"/ads/banner2.jpg", "/ads/banner3.jpg", "x.jpg"}, banners)
	assert.Equal(t, "/ads/arabic-teachers.jpg", Defaults[0], "defaults must not be mutated")
}

func TestList_AddInvalid(t *testing.T) {
	list := NewList(inmemdb.Open(), testutil.NewLogger())

	for _, ref := range []string{"", "   "} {
		_, err := list.Add(ref)
		assert.Error(t, err, "ref %q", ref)
	}

	banners, err := list.Add("  y.png ")
	require.NoError(t, err)
	assert.Equal(t, "y.png", banners[len(banners)-1])
}

func TestList_RemoveOutOfRange(t *testing.T) {
	list := NewList(inmemdb.Open(), testutil.NewLogger())

	for _, idx := range []int{-1, 3, 10} {
		_, err := list.Remove(idx)
		assert.Equal(t, ErrNotFound, errors.Cause(err), "index %d", idx)
	}
}

func TestList_RemoveAll(t *testing.T) {
	list := NewList(inmemdb.Open(), testutil.NewLogger())
	for i := 0; i < 3; i++ {
		_, err := list.Remove(0)
		require.NoError(t, err)
	}
	banners, err := list.All()
	require.NoError(t, err)
	assert.Equal(t, []string{}, banners, "an emptied list stays empty")
}

func TestList_Reset(t *testing.T) {
	db := inmemdb.Open()
	list := NewList(db, testutil.NewLogger())
	_, err := list.Remove(0)
	require.NoError(t, err)
	_, err = list.Add("x.jpg")
	require.NoError(t, err)

	banners, err := list.Reset()
	require.NoError(t, err)
	assert.Equal(t, Defaults, banners)
	assert.Equal(t, 0, db.Len())

	banners, err = list.All()
	require.NoError(t, err)
	assert.Equal(t, Defaults, banners)

	list = NewList(&testutil.FailingStorage{DelErr: errors.New("boom")}, testutil.NewLogger())
	_, err = list.Reset()
	assert.Error(t, err)
}

func TestList_Corrupt(t *testing.T) {
	for _, raw := range []string{"lol", "null", `{"a":1}`, `[1,2]`} {
		db := inmemdb.Open()
		require.NoError(t, db.Set(StorageKey, raw))
		logger := testutil.NewLogger()

		banners, err := NewList(db, logger).All()
		require.NoError(t, err)
		assert.Equal(t, Defaults, banners, raw)
		assert.Equal(t, 1, logger.Count("warn"), raw)
	}
}

func TestList_StorageFailure(t *testing.T) {
	list := NewList(&testutil.FailingStorage{SetErr: core.ErrQuotaExceeded}, testutil.NewLogger())
	_, err := list.Add("x.jpg")
	assert.Equal(t, core.ErrQuotaExceeded, errors.Cause(err))

	list = NewList(&testutil.FailingStorage{GetErr: errors.New("boom")}, testutil.NewLogger())
	_, err = list.All()
	assert.Error(t, err)
}

func TestRotate(t *testing.T) {
	banners := []string{"a", "b", "c"}
	tests := []struct {
		tick int
		want string
	}{
		{0, "a"}, {1, "b"}, {2, "c"}, {3, "a"}, {7, "b"}, {-1, "c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rotate(banners, tt.tick), "tick %d", tt.tick)
	}
	assert.Equal(t, "", Rotate(nil, 3))
}
