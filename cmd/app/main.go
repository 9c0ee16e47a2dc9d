package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/DevWithNeha/payroll-system/external/resend"
	"github.com/DevWithNeha/payroll-system/internal/config"
	"github.com/DevWithNeha/payroll-system/internal/db"
	"github.com/DevWithNeha/payroll-system/internal/middleware"
	"github.com/DevWithNeha/payroll-system/internal/repository"
	"github.com/DevWithNeha/payroll-system/internal/services"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if cfg.MigrateOnBoot {
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
	}

	// ======================
	// EXTERNALS
	// ======================
	var mailer services.PayslipSender
	if cfg.ResendAPIKey != "" {
		m, err := resend.NewResendMailer(cfg.ResendAPIKey, cfg.PayslipFrom)
		if err != nil {
			log.Fatal(err)
		}
		mailer = m
	}

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	empRepo := repository.NewEmployeeRepository(pool)
	attRepo := repository.NewAttendanceRepository(pool)
	payRepo := repository.NewPayrollRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	// ======================
	// SERVICES
	// ======================
	codec := middleware.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := services.NewAuthService(userRepo, codec)
	empSvc := services.NewEmployeeService(empRepo)
	attSvc := services.NewAttendanceService(attRepo)
	paySvc := services.NewPayrollService(empRepo, payRepo, mailer)
	statsSvc := services.NewStatsService(statsRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc, codec)

	protected := api.Group("")
	protected.Use(middleware.JWTMiddleware(codec))
	registerEmployeeRoutes(protected, empSvc)
	registerAttendanceRoutes(protected, attSvc)
	registerPayrollRoutes(protected, paySvc)
	registerStatsRoutes(protected, statsSvc)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
