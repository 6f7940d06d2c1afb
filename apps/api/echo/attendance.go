package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core"
	"github.com/trezcool/hadir/core/attendance"
)

type (
	rosterQuery struct {
		Grade   int `query:"grade"`
		ClassNo int `query:"class"`
	}

	saveAttendanceRequest struct {
		Students []attendance.Student `json:"students" validate:"dive"`
	}
)

type attendanceApi struct {
	svc    *attendance.Service
	logger core.Logger
}

func registerAttendanceAPI(g *echo.Group, svc *attendance.Service, logger core.Logger) {
	api := attendanceApi{svc: svc, logger: logger}

	g.GET("/roster", api.roster)
	g.GET("/attendance", api.retrieve)
	g.PUT("/attendance", api.save)
}

// Handlers

func (api *attendanceApi) roster(ctx echo.Context) error {
	var q rosterQuery
	if err := ctx.Bind(&q); err != nil {
		return errors.Wrap(err, "binding to rosterQuery")
	}
	sheet, err := attendance.NewSheet(q.Grade, q.ClassNo)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sheet)
}

func (api *attendanceApi) retrieve(ctx echo.Context) error {
	doc, ok := api.svc.Load()
	if !ok {
		return errNoAttendance
	}
	return ctx.JSON(http.StatusOK, doc)
}

func (api *attendanceApi) save(ctx echo.Context) error {
	var data saveAttendanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to saveAttendanceRequest")
	}
	if err := core.Validate.Struct(data); err != nil {
		return err
	}

	doc, err := api.svc.Save(data.Students)
	if err != nil {
		attendanceSaves.WithLabelValues("failed").Inc()
		api.logger.Error("saving attendance", err)
		return errSavingAttendance
	}
	attendanceSaves.WithLabelValues("saved").Inc()
	return ctx.JSON(http.StatusCreated, doc)
}
