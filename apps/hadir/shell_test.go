package main

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/hadir/core"
	"github.com/trezcool/hadir/core/attendance"
	"github.com/trezcool/hadir/tests"
)

func failingWrites() *testutil.FailingStorage {
	return &testutil.FailingStorage{SetErr: core.ErrQuotaExceeded}
}

func mockPassword(t *testing.T, err error) {
	orig := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte("secret"), err }
	t.Cleanup(func() { readPasswordFunc = orig })
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func Test_shell_session(t *testing.T) {
	mockPassword(t, nil)
	cli, out := setup(t)
	cli.in = script(
		"", "staff", // login
		"1", "9", "2", "3", "m 2031 late traffic", "m 2032 absent", "s", "b", // attendance
		"2", "2", "m", "1", "m", "3", "يوسف", "m", "b", // reports
		"d",                                   // dark mode from home
		"4", "a /ads/new.jpg", "r 0", "r 9", "b", // banner settings
		"3", "b", // students
		"0", "staff", // logout, login again
		"q",
	)

	require.NoError(t, cli.shell())
	output := out.String()

	for _, want := range []string{
		"مرحبا staff",
		"[/ads/arabic-teachers.jpg]", // first carousel tick
		"[/ads/banner2.jpg]",         // second
		"saved 6 students at 2025/03/01 08:00:00",
		"الصف الثاني (2)",
		"display mode: dark",
		"no banner at index 9",
		"(قيد التطوير)",
		"مع السلامة",
	} {
		assert.Contains(t, output, want)
	}

	doc, ok := cli.attendanceSvc.Load()
	require.True(t, ok)
	assert.Equal(t, attendance.StatusLate, doc.Students[1].Status)
	assert.Equal(t, "traffic", doc.Students[1].Note)
	assert.Equal(t, attendance.StatusAbsent, doc.Students[2].Status)

	assert.True(t, cli.prefs.DarkMode())

	banners, err := cli.banners.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"/ads/banner2.jpg", "/ads/banner3.jpg", "/ads/new.jpg"}, banners)
}

func Test_shell_endOfInput(t *testing.T) {
	mockPassword(t, nil)
	cli, out := setup(t)

	require.NoError(t, cli.shell())
	assert.Contains(t, out.String(), "مع السلامة")
}

func Test_shell_passwordFailure(t *testing.T) {
	mockPassword(t, errors.New("not a terminal"))
	cli, _ := setup(t)
	cli.in = script("staff")

	err := cli.shell()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading password")
}

func Test_shell_pipedPassword(t *testing.T) {
	mockPassword(t, errors.New("not a terminal"))
	isTerminalFunc = func(int) bool { return false }
	t.Cleanup(func() { isTerminalFunc = func(int) bool { return true } })

	cli, out := setup(t)
	cli.in = script("staff", "secret", "q")

	require.NoError(t, cli.shell())
	assert.Contains(t, out.String(), "password> ")
	assert.Contains(t, out.String(), "مرحبا staff")
	assert.NotContains(t, out.String(), "secret")

	// input ending before the password closes the shell
	cli, out = setup(t)
	cli.in = script("staff")
	require.NoError(t, cli.shell())
	assert.Contains(t, out.String(), "مع السلامة")
}

func Test_shell_saveFailure(t *testing.T) {
	mockPassword(t, nil)
	cli, out := setup(t)
	cli.attendanceSvc = attendance.NewService(attendance.NewStore(failingWrites(), cli.logger, cli.conf.DateLayout))
	cli.in = script("staff", "1", "1", "1", "s", "q")

	require.NoError(t, cli.shell())
	assert.Contains(t, out.String(), "فشل حفظ الحضور")
	_, ok := cli.attendanceSvc.Load()
	assert.False(t, ok)
}
