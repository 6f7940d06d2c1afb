package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core/attendance"
	"github.com/trezcool/hadir/core/report"
)

const (
	maxBarWidth = 40
	noData      = "لا توجد بيانات غياب محفوظة"
)

// fileSafe replaces the characters of the document date that file systems reject.
var fileSafe = strings.NewReplacer("/", "-", "\\", "-", ":", "-")

// barWidth fits the stats bars into the terminal, if any.
func barWidth() int {
	width, _, err := terminalSizeFunc(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return maxBarWidth
	}
	if w := width - 30; w < maxBarWidth {
		if w < 10 {
			return 10
		}
		return w
	}
	return maxBarWidth
}

func bar(c report.Counts, width int) string {
	if c.Total() == 0 {
		return ""
	}
	present := c.Present * width / c.Total()
	return color.Green(strings.Repeat("█", present)) + color.Red(strings.Repeat("█", width-present))
}

func (cli *commandLine) loadReport() (report.Report, bool) {
	doc, ok := cli.attendanceSvc.Load()
	if !ok || doc.IsEmpty() {
		cli.println(noData)
		return report.Report{}, false
	}
	return report.Build(doc), true
}

func (cli *commandLine) reportList() error {
	rep, ok := cli.loadReport()
	if !ok {
		return nil
	}
	cli.printf("التاريخ: %s\n", rep.Date)
	if len(rep.Absentees) == 0 {
		cli.println("لا يوجد غياب")
		return nil
	}
	for _, ga := range rep.Absentees {
		cli.printf("\nالصف %s (%d)\n", ga.Label, len(ga.Students))
		cli.printStudents(ga.Students)
	}
	return nil
}

func (cli *commandLine) reportStats() error {
	rep, ok := cli.loadReport()
	if !ok {
		return nil
	}
	width := barWidth()
	cli.printf("التاريخ: %s\n", rep.Date)
	for _, gs := range rep.Grades {
		cli.printf("الصف %-8s %s %3d  %s %3d  %s\n",
			gs.Label, report.PresentLabel, gs.Present, report.AbsentLabel, gs.Absent, bar(gs.Counts, width))
	}
	cli.printf("%-13s %s %3d  %s %3d  %s\n",
		report.SchoolLabel, report.PresentLabel, rep.Total.Present, report.AbsentLabel, rep.Total.Absent, bar(rep.Total, width))
	return nil
}

func (cli *commandLine) reportSearch(query string) error {
	doc, ok := cli.attendanceSvc.Load()
	if !ok {
		cli.println(noData)
		return nil
	}
	found := report.SearchByName(doc.Students, strings.TrimSpace(query))
	if len(found) == 0 {
		cli.println("لا توجد نتائج")
		return nil
	}
	cli.printStudents(found)
	return nil
}

func (cli *commandLine) export(dir, format string) error {
	doc, ok := cli.attendanceSvc.Load()
	if !ok {
		cli.println(noData)
		return nil
	}

	name, write := report.ExportFilename(doc), report.WriteCSV
	switch format {
	case "csv":
	case "xlsx":
		name, write = report.ExportXLSXFilename(doc), report.WriteXLSX
	default:
		return errors.Errorf("%q: unknown export format (csv, xlsx)", format)
	}

	path := filepath.Join(dir, fileSafe.Replace(name))
	if err := writeFile(path, doc, write); err != nil {
		return err
	}
	cli.printf("exported %d students to %s\n", len(doc.Students), path)
	return nil
}

func writeFile(path string, doc attendance.Document, write func(io.Writer, attendance.Document) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	defer func() {
		if cErr := f.Close(); err == nil {
			err = errors.Wrap(cErr, "closing export file")
		}
	}()
	return write(f, doc)
}
