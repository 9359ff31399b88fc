package main

import (
	"log"
	"tribunal_hearings_go/config"
	"tribunal_hearings_go/db"
	"tribunal_hearings_go/handlers"
	"tribunal_hearings_go/refdata"
	"tribunal_hearings_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the case store
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize case store: %v", err)
	}
	defer db.Close()

	// Wire handler collaborators
	handlers.RefData = refdata.NewInMemory(cfg.ServiceCode, cfg.ExUIBaseURL, cfg.AdjournmentFlagEnabled)
	handlers.Scheduler = services.NewHmcClient(cfg.HmcAPIBaseURL)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	// Case store
	e.POST("/api/cases", handlers.UpsertCaseHandler)
	e.GET("/api/cases/:id", handlers.GetCaseHandler)
	e.DELETE("/api/cases/:id", handlers.DeleteCaseHandler)

	// Hearing lifecycle
	e.POST("/api/cases/:id/hearings", handlers.RequestHearingHandler)
	e.PUT("/api/cases/:id/hearings", handlers.AmendHearingHandler)
	e.DELETE("/api/cases/:id/hearings", handlers.CancelHearingHandler)
	e.GET("/api/cases/:id/service-hearing-values", handlers.ServiceHearingValuesHandler)

	// Reporting
	e.GET("/api/reports/hearings.xlsx", handlers.HearingsReportHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
