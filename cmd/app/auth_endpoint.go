package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DevWithNeha/payroll-system/internal/middleware"
	"github.com/DevWithNeha/payroll-system/internal/services"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // defaults to "employee" when absent
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		id, err := authSvc.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateEmail):
				return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
			case errors.Is(err, services.ErrDataSource):
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
			default:
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"id":      id,
			"message": "registered successfully",
		})
	}
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		token, user, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "user not found"})
			case errors.Is(err, services.ErrWrongPassword):
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "wrong password"})
			default:
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
			}
		}

		return c.JSON(http.StatusOK, echo.Map{
			"token": token,
			"user":  user,
		})
	}
}

// meHandler returns the authenticated identity decoded from the token.
func meHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"id":   claims.UserID,
			"name": claims.Name,
			"role": claims.Role,
			"exp":  claims.ExpiresAt,
		})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, codec *middleware.TokenCodec) {
	// public
	g.POST("/register", registerHandler(authSvc))
	g.POST("/login", loginHandler(authSvc))

	// authenticated
	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware(codec))
	protected.GET("/me", meHandler())
}
