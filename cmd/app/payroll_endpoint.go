package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DevWithNeha/payroll-system/internal/services"
)

func registerPayrollRoutes(g *echo.Group, paySvc *services.PayrollService) {
	// POST /payroll runs the full compute-and-persist cycle for the current
	// period. Parameterless.
	g.POST("/payroll", func(c echo.Context) error {
		res, err := paySvc.Run(c.Request().Context())
		if err != nil {
			var partial *services.PartialRunError
			switch {
			case errors.As(err, &partial):
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"error":     "partial payroll run",
					"month":     partial.Month,
					"processed": partial.Processed,
				})
			case errors.Is(err, services.ErrAlreadyGenerated):
				return c.JSON(http.StatusConflict, echo.Map{"error": "payroll already generated for this period"})
			default:
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error generating payroll"})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{
			"message":   "payroll generated for " + res.Month,
			"run_ref":   res.RunRef,
			"generated": res.Generated,
			"notified":  res.Notified,
		})
	})

	g.GET("/payroll", func(c echo.Context) error {
		list, err := paySvc.List(c.Request().Context())
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error loading payroll"})
		}
		return c.JSON(http.StatusOK, echo.Map{"payrolls": list})
	})
}
