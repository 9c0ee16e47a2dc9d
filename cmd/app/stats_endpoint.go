package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DevWithNeha/payroll-system/internal/services"
)

func registerStatsRoutes(g *echo.Group, statsSvc *services.StatsService) {
	g.GET("/stats", func(c echo.Context) error {
		stats, err := statsSvc.Dashboard(c.Request().Context())
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error loading stats"})
		}
		return c.JSON(http.StatusOK, stats)
	})
}
