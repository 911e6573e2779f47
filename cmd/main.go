package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/som1414/sea-battle/api"
	"github.com/som1414/sea-battle/db"
	"github.com/som1414/sea-battle/db/sqlc"
	"github.com/som1414/sea-battle/internal/config"
	mb "github.com/som1414/sea-battle/models/battleship"
	mc "github.com/som1414/sea-battle/models/connection"
)

func main() {
	cfg, err := config.Load(log.InfoLevel)
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	optFuncs := []api.Option{
		api.WithComputerDelay(cfg.ComputerDelay),
		api.WithDefaultGridSize(cfg.GridSize),
	}

	if cfg.PsqlUrl != "" {
		conn := db.MustConnectToDb(cfg.PsqlUrl, db.DefaultMigrationDir)
		defer conn.Close()

		dbManager := sqlc.NewDbManager(conn)
		optFuncs = append(optFuncs, api.WithAnalytics(dbManager.Analytics))
	} else {
		log.Warn("PSQL_URL is not set; analytics disabled")
	}

	bsm := mc.NewBattleshipSessionManager(mc.DefaultCleanupInterval)
	go bsm.CleanupPeriodically(ctx)

	rp := api.NewRequestProcessor(bsm, mb.NewBattleshipGameManager(), optFuncs...)

	mux := http.NewServeMux()
	mux.Handle("GET /battleship", rp)

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "err", err)
		}
	}()

	log.Info("listening", "port", cfg.Port, "stage", cfg.Stage)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server stopped", "err", err)
	}
}
