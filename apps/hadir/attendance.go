package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core/attendance"
)

type mark struct {
	id     int
	status attendance.Status
	note   string
}

// marks collects repeated -mark ID=STATUS[:NOTE] flags.
type marks []mark

func (m *marks) String() string {
	parts := make([]string, 0, len(*m))
	for _, mk := range *m {
		parts = append(parts, fmt.Sprintf("%d=%s:%s", mk.id, mk.status.Alias(), mk.note))
	}
	return strings.Join(parts, ",")
}

func (m *marks) Set(val string) error {
	kv := strings.SplitN(val, "=", 2)
	if len(kv) != 2 {
		return errors.Errorf("%q: expected ID=STATUS[:NOTE]", val)
	}
	id, err := strconv.Atoi(strings.TrimSpace(kv[0]))
	if err != nil {
		return errors.Errorf("%q: student id must be a number", val)
	}
	sn := strings.SplitN(kv[1], ":", 2)
	status, err := attendance.ParseStatus(sn[0])
	if err != nil {
		return errors.Wrapf(err, "%q", val)
	}
	mk := mark{id: id, status: status}
	if len(sn) == 2 {
		mk.note = strings.TrimSpace(sn[1])
	}
	*m = append(*m, mk)
	return nil
}

func statusColor(st attendance.Status) string {
	switch st {
	case attendance.StatusPresent:
		return color.Green(st)
	case attendance.StatusAbsent:
		return color.Red(st)
	}
	return color.Yellow(st)
}

func (cli *commandLine) printStudents(students []attendance.Student) {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tGRADE\tCLASS\tGUARDIAN\tSTATUS\tNOTE")
	for _, st := range students {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			st.ID, st.Name, attendance.Ordinal(st.Grade), attendance.Ordinal(st.ClassNo),
			st.GuardianPhone, statusColor(st.Status), st.Note)
	}
	_ = w.Flush()
}

func (cli *commandLine) roster(grade, classNo int) error {
	sheet, err := attendance.NewSheet(grade, classNo)
	if err != nil {
		return err
	}
	cli.printf("الصف %s - الشعبة %s\n", attendance.Ordinal(grade), attendance.Ordinal(classNo))
	cli.printStudents(sheet.Students)
	return nil
}

func (cli *commandLine) take(grade, classNo int, mks marks) error {
	sheet, err := attendance.NewSheet(grade, classNo)
	if err != nil {
		return err
	}
	for _, mk := range mks {
		if err = sheet.Mark(mk.id, mk.status, mk.note); err != nil {
			return errors.Wrapf(err, "marking student %d", mk.id)
		}
	}
	return cli.saveSheet(sheet)
}

func (cli *commandLine) saveSheet(sheet *attendance.Sheet) error {
	doc, err := cli.attendanceSvc.Save(sheet.Students)
	if err != nil {
		cli.logger.Error("saving attendance", err)
		return errors.Wrap(err, "failed to save attendance")
	}
	cli.printStudents(doc.Students)
	cli.printf("saved %d students at %s\n", len(doc.Students), doc.Date)
	return nil
}
