// main.go
//
// A flat-file quality audit desk service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qadesk.
// qadesk is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qadesk is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qadesk.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/localnerve/qadesk/internal/config"
	"github.com/localnerve/qadesk/internal/handlers"
	"github.com/localnerve/qadesk/internal/middleware"
	"github.com/localnerve/qadesk/internal/services"
	"github.com/localnerve/qadesk/internal/store"
	"github.com/localnerve/qadesk/internal/types"

	_ "github.com/localnerve/qadesk/docs/api" // Swagger docs
)

// @title QADesk API
// @version 1.0.0
// @description Quality audit desk over flat-file stores
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/qadesk
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name qadesk_session

func main() {
	// Load .env when present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flat-file stores
	registry := store.NewComponentRegistry(cfg.StorePath(cfg.ComponentsFile))
	ledger := store.NewAuditLedger(cfg.StorePath(cfg.AuditsFile))
	certStore := store.NewCertificateStore(cfg.StorePath(cfg.CertificatesFile))
	supplierLog := store.NewSupplierLog(cfg.StorePath(cfg.SuppliersFile))
	users := store.NewUserStore(cfg.StorePath(cfg.UsersFile))

	// Services
	sessions := services.NewSessionService(users, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	certificates := services.NewCertificateService(certStore, cfg.CertExpiryWindowDays)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("qadesk")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health probe
	healthHandler := &handlers.HealthHandler{Cfg: cfg}
	app.Get("/health", healthHandler.Health)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Session middleware for mutating routes
	authed := middleware.AuthUser(sessions)

	// Auth
	authHandler := &handlers.AuthHandler{Sessions: sessions}
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)

	// Component registry (public GET, authenticated mutations)
	componentHandler := &handlers.ComponentHandler{Registry: registry}
	api.Get("/components", componentHandler.ListComponents)
	api.Post("/components", authed, componentHandler.AddComponent)
	api.Put("/components", authed, componentHandler.RenameComponent)
	api.Delete("/components/:name", authed, componentHandler.RemoveComponent)

	// Audit ledger
	auditHandler := &handlers.AuditHandler{Ledger: ledger, QuestionsFile: cfg.StorePath(cfg.QuestionsFile)}
	api.Get("/audits", auditHandler.ListAudits)
	api.Get("/audits/questions", auditHandler.ListQuestions)
	api.Get("/audits/export", auditHandler.ExportAudits)
	api.Post("/audits", authed, auditHandler.SubmitAudit)
	api.Post("/audits/report", auditHandler.AuditReport)
	api.Patch("/audits/row/:index", authed, auditHandler.PatchAuditResultByRow)
	api.Patch("/audits/:id", authed, auditHandler.PatchAuditResult)

	// Certificate registry
	certificateHandler := &handlers.CertificateHandler{Certificates: certificates}
	api.Get("/certificates", certificateHandler.ListCertificates)
	api.Post("/certificates", authed, certificateHandler.AddCertificate)
	api.Post("/certificates/:id/pdf", certificateHandler.CertificatePDF)

	// Supplier evaluation log
	supplierHandler := &handlers.SupplierHandler{Log: supplierLog}
	api.Get("/suppliers", supplierHandler.ListSuppliers)
	api.Get("/suppliers/export", supplierHandler.ExportSuppliers)
	api.Post("/suppliers", authed, supplierHandler.AddSupplierEvaluation)

	// Emission calculator
	emissionHandler := &handlers.EmissionHandler{}
	api.Get("/emissions/factors", emissionHandler.ListFactors)
	api.Post("/emissions/calculate", emissionHandler.Calculate)
	api.Post("/emissions/upload", emissionHandler.Upload)
	api.Post("/emissions/report", emissionHandler.Report)

	// CMM inspection uploads
	inspectionHandler := &handlers.InspectionHandler{}
	api.Post("/inspections/parse", inspectionHandler.Parse)
	api.Post("/inspections/report", inspectionHandler.Report)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s (data dir %s)", port, cfg.DataDir)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	// Middleware failures arrive as CustomError
	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
