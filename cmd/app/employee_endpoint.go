package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DevWithNeha/payroll-system/internal/services"
)

type employeeRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Department  string  `json:"department"`
	BasicSalary float64 `json:"basic_salary"`
}

// registerEmployeeRoutes wires employee CRUD onto the provided group. The
// group is expected to already carry the JWT middleware.
func registerEmployeeRoutes(g *echo.Group, empSvc *services.EmployeeService) {
	g.GET("/employees", func(c echo.Context) error {
		list, err := empSvc.ListEmployees(c.Request().Context())
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error loading employees"})
		}
		return c.JSON(http.StatusOK, echo.Map{"employees": list})
	})

	g.POST("/employees", func(c echo.Context) error {
		req := new(employeeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		id, err := empSvc.CreateEmployee(c.Request().Context(), req.Name, req.Email, req.Department, req.BasicSalary)
		if err != nil {
			if errors.Is(err, services.ErrDataSource) {
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error adding employee"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"id": id, "message": "employee added"})
	})

	g.PUT("/employees/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(employeeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := empSvc.UpdateEmployee(c.Request().Context(), id, req.Name, req.Email, req.Department, req.BasicSalary); err != nil {
			switch {
			case errors.Is(err, services.ErrEmployeeNotFound):
				return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
			case errors.Is(err, services.ErrDataSource):
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error updating employee"})
			default:
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "employee updated"})
	})

	g.DELETE("/employees/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := empSvc.DeleteEmployee(c.Request().Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrEmployeeNotFound):
				return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
			default:
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error deleting employee"})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "employee deleted"})
	})
}
