package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hadir",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "code"},
	)
	attendanceSaves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hadir",
			Name:      "attendance_saves_total",
			Help:      "Attendance saves by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, attendanceSaves)
}

func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		err := next(ctx)
		if err != nil && !ctx.Response().Committed {
			// let the app error handler pick the status code
			ctx.Error(err)
			err = nil
		}
		requestsTotal.WithLabelValues(ctx.Request().Method, ctx.Path(), strconv.Itoa(ctx.Response().Status)).Inc()
		return err
	}
}
