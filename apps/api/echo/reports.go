package echoapi

import (
	"bytes"
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core"
	"github.com/trezcool/hadir/core/attendance"
	"github.com/trezcool/hadir/core/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var errInvalidFormat = core.NewValidationError(nil, core.FieldError{Field: "format", Error: "format must be one of: csv, xlsx"})

type reportApi struct {
	svc *attendance.Service
}

func registerReportAPI(g *echo.Group, svc *attendance.Service) {
	api := reportApi{svc: svc}

	rg := g.Group("/reports")
	rg.GET("", api.summary)
	rg.GET("/search", api.search)
	rg.GET("/export", api.export)
}

// Handlers

func (api *reportApi) summary(ctx echo.Context) error {
	doc, _ := api.svc.Load()
	return ctx.JSON(http.StatusOK, report.Build(doc))
}

func (api *reportApi) search(ctx echo.Context) error {
	doc, _ := api.svc.Load()
	return ctx.JSON(http.StatusOK, report.SearchByName(doc.Students, strings.TrimSpace(ctx.QueryParam("q"))))
}

func (api *reportApi) export(ctx echo.Context) error {
	doc, ok := api.svc.Load()
	if !ok {
		return errNoAttendance
	}

	var buf bytes.Buffer
	filename, contentType := report.ExportFilename(doc), "text/csv; charset=utf-8"
	switch ctx.QueryParam("format") {
	case "", "csv":
		if err := report.WriteCSV(&buf, doc); err != nil {
			return errors.Wrap(err, "exporting attendance")
		}
	case "xlsx":
		if err := report.WriteXLSX(&buf, doc); err != nil {
			return errors.Wrap(err, "exporting attendance")
		}
		filename, contentType = report.ExportXLSXFilename(doc), xlsxContentType
	default:
		return errInvalidFormat
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	return ctx.Blob(http.StatusOK, contentType, buf.Bytes())
}
