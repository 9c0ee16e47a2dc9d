package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DevWithNeha/payroll-system/internal/services"
)

type markAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     string `json:"status"`
}

func registerAttendanceRoutes(g *echo.Group, attSvc *services.AttendanceService) {
	g.POST("/attendance", func(c echo.Context) error {
		req := new(markAttendanceRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
		}
		id, err := attSvc.Mark(c.Request().Context(), req.EmployeeID, date, req.Status)
		if err != nil {
			if errors.Is(err, services.ErrDataSource) {
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error marking attendance"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"id": id, "message": "attendance marked"})
	})

	g.GET("/attendance", func(c echo.Context) error {
		records, err := attSvc.ListAttendance(c.Request().Context())
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error loading attendance"})
		}
		return c.JSON(http.StatusOK, echo.Map{"records": records})
	})
}
