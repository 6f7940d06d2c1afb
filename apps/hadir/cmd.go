package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/trezcool/goose"
	"golang.org/x/term"

	"github.com/trezcool/hadir/core"
	"github.com/trezcool/hadir/core/attendance"
	"github.com/trezcool/hadir/core/banner"
	"github.com/trezcool/hadir/core/display"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	terminalSizeFunc = term.GetSize      // mockable
	isTerminalFunc   = term.IsTerminal   // mockable
	gooseRunFunc     = goose.RunFS       // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf          *core.Config
	logger        core.Logger
	db            *sqlx.DB // nil for the memory engine
	attendanceSvc *attendance.Service
	banners       *banner.List
	prefs         *display.Preferences

	in  io.Reader
	out io.Writer
}

func (cli *commandLine) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cli.out, format, args...)
}

func (cli *commandLine) println(args ...interface{}) {
	_, _ = fmt.Fprintln(cli.out, args...)
}

func (cli *commandLine) printUsage() {
	cli.println("Usage:")
	cli.println("  roster -grade G -class C                       - print the roster of a section")
	cli.println("  take -grade G -class C [-mark ID=STATUS[:NOTE]]... - take and save attendance")
	cli.println("  report [list|stats|search -q QUERY]            - absence reports (default: stats)")
	cli.println("  export [-dir DIR] [-format csv|xlsx]           - export the absence report")
	cli.println("  banners [list|add -ref REF|remove -index I|reset] - manage home banners")
	cli.println("  darkmode [status|on|off|toggle]                - display mode")
	cli.println("  migrate COMMAND [ARGS]                         - run database migrations (goose)")
	cli.println("  shell                                          - interactive dashboard")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	rosterCmd := cli.newFlagSet("roster")
	rosterGrade := rosterCmd.Int("grade", 0, "The grade, 1 to 4.")
	rosterClass := rosterCmd.Int("class", 0, "The class number, 1 to 4.")

	takeCmd := cli.newFlagSet("take")
	takeGrade := takeCmd.Int("grade", 0, "The grade, 1 to 4.")
	takeClass := takeCmd.Int("class", 0, "The class number, 1 to 4.")
	var takeMarks marks
	takeCmd.Var(&takeMarks, "mark", "ID=STATUS[:NOTE]; repeatable. STATUS is present, absent, late, excused or the Arabic label.")

	searchCmd := cli.newFlagSet("search")
	searchQuery := searchCmd.String("q", "", "Part of the student's name.")

	exportCmd := cli.newFlagSet("export")
	exportDir := exportCmd.String("dir", ".", "The directory to write the file to.")
	exportFormat := exportCmd.String("format", "csv", "The file format: csv or xlsx.")

	addBannerCmd := cli.newFlagSet("add")
	addBannerRef := addBannerCmd.String("ref", "", "The banner image reference.")

	removeBannerCmd := cli.newFlagSet("remove")
	removeBannerIndex := removeBannerCmd.Int("index", -1, "The position of the banner, from 0.")

	switch args[1] {
	case "roster":
		if err := parseFlags(rosterCmd, args[2:]); err != nil {
			return err
		}
		return cli.roster(*rosterGrade, *rosterClass)

	case "take":
		if err := parseFlags(takeCmd, args[2:]); err != nil {
			return err
		}
		return cli.take(*takeGrade, *takeClass, takeMarks)

	case "report":
		sub := "stats"
		if len(args) > 2 {
			sub = args[2]
		}
		switch sub {
		case "list":
			return cli.reportList()
		case "stats":
			return cli.reportStats()
		case "search":
			if err := parseFlags(searchCmd, args[3:]); err != nil {
				return err
			}
			return cli.reportSearch(*searchQuery)
		}
		cli.printUsage()
		return errHelp

	case "export":
		if err := parseFlags(exportCmd, args[2:]); err != nil {
			return err
		}
		return cli.export(*exportDir, *exportFormat)

	case "banners":
		sub := "list"
		if len(args) > 2 {
			sub = args[2]
		}
		switch sub {
		case "list":
			return cli.listBanners()
		case "add":
			if err := parseFlags(addBannerCmd, args[3:]); err != nil {
				return err
			}
			if *addBannerRef == "" {
				addBannerCmd.Usage()
				return errHelp
			}
			return cli.addBanner(*addBannerRef)
		case "remove":
			if err := parseFlags(removeBannerCmd, args[3:]); err != nil {
				return err
			}
			return cli.removeBanner(*removeBannerIndex)
		case "reset":
			return cli.resetBanners()
		}
		cli.printUsage()
		return errHelp

	case "darkmode":
		sub := "status"
		if len(args) > 2 {
			sub = args[2]
		}
		return cli.darkMode(sub)

	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])

	case "shell":
		return cli.shell()

	default:
		cli.printUsage()
		return errHelp
	}
}
