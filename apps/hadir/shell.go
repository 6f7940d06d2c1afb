package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core/attendance"
	"github.com/trezcool/hadir/core/banner"
	"github.com/trezcool/hadir/core/nav"
)

var errQuit = errors.New("quit")

type shell struct {
	cli   *commandLine
	in    *bufio.Scanner
	views *nav.Machine
	tick  int // banner carousel position
}

func (cli *commandLine) shell() error {
	sh := &shell{
		cli:   cli,
		in:    bufio.NewScanner(cli.in),
		views: nav.NewViews(),
	}
	return sh.loop()
}

func (sh *shell) loop() error {
	handlers := map[nav.State]func() error{
		nav.Splash:     sh.splash,
		nav.Login:      sh.login,
		nav.Home:       sh.home,
		nav.Attendance: sh.attendance,
		nav.Reports:    sh.reports,
		nav.Students:   sh.students,
		nav.Settings:   sh.settings,
	}
	for {
		err := handlers[sh.views.State()]()
		if err == io.EOF || err == errQuit {
			sh.cli.println("مع السلامة")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (sh *shell) fire(ev nav.Event) error {
	_, err := sh.views.Fire(ev)
	return err
}

func (sh *shell) readLine(label string) (string, error) {
	sh.cli.printf("%s> ", label)
	if !sh.in.Scan() {
		if err := sh.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(sh.in.Text()), nil
}

// read prompts for a command, handling the ones available on every screen.
func (sh *shell) read(label string) (string, error) {
	for {
		line, err := sh.readLine(label)
		if err != nil {
			return "", err
		}
		switch line {
		case "q":
			return "", errQuit
		case "d":
			on, err := sh.cli.prefs.ToggleDarkMode()
			if err != nil {
				sh.cli.println(color.Red("تعذر حفظ الوضع"))
			}
			sh.cli.printf("display mode: %s\n", modeName(on))
		case "":
		default:
			return line, nil
		}
	}
}

func (sh *shell) header(title string) {
	mode := "☀"
	if sh.cli.prefs.DarkMode() {
		mode = "☾"
	}
	sh.cli.printf("\n== %s | %s == %s\n", sh.cli.conf.AppName, title, mode)
}

func (sh *shell) splash() error {
	sh.cli.printf("\n%s\nنظام حاضر\n", sh.cli.conf.AppName)
	time.Sleep(sh.cli.conf.SplashDelay)
	return sh.fire(nav.SplashDone)
}

func (sh *shell) login() error {
	sh.cli.println("\nتسجيل الدخول")
	var username string
	for username == "" {
		var err error
		if username, err = sh.readLine("username"); err != nil {
			return err
		}
	}
	// piped input carries the password on the next line
	if fd := int(syscall.Stdin); isTerminalFunc(fd) {
		sh.cli.printf("password: ")
		if _, err := readPasswordFunc(fd); err != nil {
			return errors.Wrap(err, "reading password")
		}
		sh.cli.println()
	} else if _, err := sh.readLine("password"); err != nil {
		return err
	}

	time.Sleep(sh.cli.conf.LoginDelay)
	sh.cli.printf("مرحبا %s\n", username)
	return sh.fire(nav.LoginSucceeded)
}

func (sh *shell) home() error {
	sh.header("الرئيسية")
	banners, err := sh.cli.banners.All()
	if err != nil {
		sh.cli.logger.Error("shell: listing banners", err)
	}
	if b := banner.Rotate(banners, sh.tick); b != "" {
		sh.cli.printf("[%s]\n", b)
	}
	sh.tick++

	sh.cli.println("1 تسجيل الحضور  2 التقارير  3 الطلاب  4 الإعدادات  0 تسجيل الخروج  d الوضع  q خروج")
	for {
		cmd, err := sh.read("home")
		if err != nil {
			return err
		}
		events := map[string]nav.Event{
			"1": nav.OpenAttendance,
			"2": nav.OpenReports,
			"3": nav.OpenStudents,
			"4": nav.OpenSettings,
			"0": nav.Logout,
		}
		if ev, ok := events[cmd]; ok {
			return sh.fire(ev)
		}
		sh.cli.println("?")
	}
}

func parseSection(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil && n >= 1 && n <= 4
}

func (sh *shell) attendance() error {
	sh.header("تسجيل الحضور")
	stages := nav.NewAttendanceStages()
	var grade int
	var sheet *attendance.Sheet

	for {
		var cmd string
		var err error
		switch stages.State() {
		case nav.ChooseGrade:
			cmd, err = sh.read("الصف 1-4 (b رجوع)")
		case nav.ChooseClass:
			cmd, err = sh.read("الصف " + attendance.Ordinal(grade) + " - الشعبة 1-4 (g الصفوف، b رجوع)")
		case nav.List:
			cmd, err = sh.read("m ID STATUS [NOTE] | s حفظ | c الشعب | g الصفوف | b رجوع")
		}
		if err != nil {
			return err
		}

		switch {
		case cmd == "b":
			return sh.fire(nav.Back)
		case cmd == "g" && stages.Can(nav.ShowGrades):
			_, err = stages.Fire(nav.ShowGrades)
		case cmd == "c" && stages.Can(nav.ShowClasses):
			_, err = stages.Fire(nav.ShowClasses)
		case stages.State() == nav.ChooseGrade:
			n, ok := parseSection(cmd)
			if !ok {
				sh.cli.println("?")
				continue
			}
			grade = n
			_, err = stages.Fire(nav.PickGrade)
		case stages.State() == nav.ChooseClass:
			n, ok := parseSection(cmd)
			if !ok {
				sh.cli.println("?")
				continue
			}
			if sheet, err = attendance.NewSheet(grade, n); err != nil {
				return err
			}
			sh.cli.printStudents(sheet.Students)
			_, err = stages.Fire(nav.PickClass)
		case cmd == "s":
			if err := sh.cli.saveSheet(sheet); err != nil {
				sh.cli.println(color.Red("فشل حفظ الحضور: " + err.Error()))
			}
		case strings.HasPrefix(cmd, "m "):
			sh.markStudent(sheet, strings.Fields(cmd)[1:])
		default:
			sh.cli.println("?")
		}
		if err != nil {
			return err
		}
	}
}

func (sh *shell) markStudent(sheet *attendance.Sheet, args []string) {
	if len(args) < 2 {
		sh.cli.println("m ID STATUS [NOTE]")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		sh.cli.println("?")
		return
	}
	status, err := attendance.ParseStatus(args[1])
	if err != nil {
		sh.cli.println(err.Error())
		return
	}
	if err = sheet.Mark(id, status, strings.Join(args[2:], " ")); err != nil {
		sh.cli.println(err.Error())
		return
	}
	sh.cli.printStudents(sheet.Students)
}

func (sh *shell) reports() error {
	sh.header("التقارير")
	views := nav.NewReportViews()

	for {
		var cmd string
		var err error
		switch views.State() {
		case nav.Menu:
			cmd, err = sh.read("1 تقارير الغياب  2 إحصائيات الغياب  3 البحث  b رجوع")
		case nav.Search:
			cmd, err = sh.read("اسم الطالب (m القائمة)")
		default:
			cmd, err = sh.read("m القائمة | b رجوع")
		}
		if err != nil {
			return err
		}

		switch {
		case cmd == "b":
			return sh.fire(nav.Back)
		case cmd == "m" && views.Can(nav.ShowMenu):
			_, err = views.Fire(nav.ShowMenu)
		case views.State() == nav.Menu:
			events := map[string]nav.Event{"1": nav.ShowAbsent, "2": nav.ShowStats, "3": nav.ShowSearch}
			ev, ok := events[cmd]
			if !ok {
				sh.cli.println("?")
				continue
			}
			if _, err = views.Fire(ev); err != nil {
				return err
			}
			switch views.State() {
			case nav.Absent:
				err = sh.cli.reportList()
			case nav.Stats:
				err = sh.cli.reportStats()
			}
		case views.State() == nav.Search:
			err = sh.cli.reportSearch(cmd)
		default:
			sh.cli.println("?")
		}
		if err != nil {
			return err
		}
	}
}

func (sh *shell) students() error {
	sh.header("إدارة الطلاب")
	sh.cli.println("(قيد التطوير)")
	for {
		cmd, err := sh.read("b رجوع")
		if err != nil {
			return err
		}
		if cmd == "b" {
			return sh.fire(nav.Back)
		}
	}
}

func (sh *shell) settings() error {
	sh.header("الإعدادات")
	if err := sh.cli.listBanners(); err != nil {
		sh.cli.println(color.Red(err.Error()))
	}
	for {
		cmd, err := sh.read("a REF إضافة | r INDEX حذف | b رجوع")
		if err != nil {
			return err
		}
		fields := strings.Fields(cmd)
		switch {
		case cmd == "b":
			return sh.fire(nav.Back)
		case fields[0] == "a" && len(fields) > 1:
			err = sh.cli.addBanner(strings.Join(fields[1:], " "))
		case fields[0] == "r" && len(fields) == 2:
			index, cErr := strconv.Atoi(fields[1])
			if cErr != nil {
				sh.cli.println("?")
				continue
			}
			err = sh.cli.removeBanner(index)
		default:
			sh.cli.println("?")
		}
		if err != nil {
			sh.cli.println(color.Red(err.Error()))
		}
	}
}
