package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hemodesk/hemodesk/internal/catalog"
	catalogStore "github.com/hemodesk/hemodesk/internal/catalog/store"
	"github.com/hemodesk/hemodesk/internal/config"
	"github.com/hemodesk/hemodesk/internal/database"
	"github.com/hemodesk/hemodesk/internal/dialysis"
	dialysisStore "github.com/hemodesk/hemodesk/internal/dialysis/store"
	"github.com/hemodesk/hemodesk/internal/finance"
	financeStore "github.com/hemodesk/hemodesk/internal/finance/store"
	"github.com/hemodesk/hemodesk/internal/hr"
	hrStore "github.com/hemodesk/hemodesk/internal/hr/store"
	hemoHttp "github.com/hemodesk/hemodesk/internal/http"
	authHandler "github.com/hemodesk/hemodesk/internal/http/auth"
	catalogHandler "github.com/hemodesk/hemodesk/internal/http/catalog"
	financeHandler "github.com/hemodesk/hemodesk/internal/http/finance"
	hrHandler "github.com/hemodesk/hemodesk/internal/http/hr"
	inventoryHandler "github.com/hemodesk/hemodesk/internal/http/inventory"
	labHandler "github.com/hemodesk/hemodesk/internal/http/lab"
	patientHandler "github.com/hemodesk/hemodesk/internal/http/patient"
	reportHandler "github.com/hemodesk/hemodesk/internal/http/report"
	sessionHandler "github.com/hemodesk/hemodesk/internal/http/session"
	"github.com/hemodesk/hemodesk/internal/importer"
	"github.com/hemodesk/hemodesk/internal/inventory"
	inventoryStore "github.com/hemodesk/hemodesk/internal/inventory/store"
	"github.com/hemodesk/hemodesk/internal/lab"
	labStore "github.com/hemodesk/hemodesk/internal/lab/store"
	"github.com/hemodesk/hemodesk/internal/patient"
	patientStore "github.com/hemodesk/hemodesk/internal/patient/store"
	"github.com/hemodesk/hemodesk/internal/report"
	"github.com/hemodesk/hemodesk/internal/user"
	userStore "github.com/hemodesk/hemodesk/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		patientService   = patient.NewService(patientStore.New(db))
		catalogService   = catalog.NewCatalog(catalogStore.New(db))
		inventoryService = inventory.NewService(inventoryStore.New(db))
		dialysisService  = dialysis.NewService(dialysisStore.New(db), catalogService, inventoryService)
		hrService        = hr.NewService(hrStore.New(db))
		financeService   = finance.NewService(financeStore.New(db))
		labService       = lab.NewService(labStore.New(db))
		userService      = user.NewService(userStore.New(db), cfg.Auth.Secret, cfg.Auth.TokenTTL)
		reportService    = report.NewService(financeService, inventoryService)
	)

	var (
		authH      = authHandler.NewHandler(userService)
		patientH   = patientHandler.NewHandler(patientService)
		catalogH   = catalogHandler.NewHandler(catalogService)
		inventoryH = inventoryHandler.NewHandler(inventoryService)
		sessionH   = sessionHandler.NewHandler(dialysisService)
		hrH        = hrHandler.NewHandler(hrService, importer.NewShiftSheet())
		financeH   = financeHandler.NewHandler(financeService)
		labH       = labHandler.NewHandler(labService)
		reportH    = reportHandler.NewHandler(reportService)
	)

	authEnabled := cfg.Auth.Secret != ""
	if !authEnabled {
		slog.Warn("AUTH_SECRET is empty, token verification is disabled")
	}

	router := hemoHttp.New(
		authH, patientH, catalogH, inventoryH, sessionH, hrH, financeH, labH, reportH,
		hemoHttp.Options{
			CORSOrigin: cfg.Server.CORSOrigin,
			Auth:       authHandler.Middleware(userService, authEnabled),
		},
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
