package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/config"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/events/kafka"
	eventsmemory "github.com/sheikh-saqib/cashconnect-ledger/internal/events/memory"
	interfaces "github.com/sheikh-saqib/cashconnect-ledger/internal/interfaces"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/ledger"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/logger"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/server"
	"github.com/sheikh-saqib/cashconnect-ledger/internal/storage/memory"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("ledger server: %v", err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var (
		publisher interfaces.EventPublisher
		source    server.EventSource
	)
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers)
		defer func() {
			if err := kp.Close(); err != nil {
				logger.Error("close kafka publisher", err, nil)
			}
		}()
		publisher = kp
	} else {
		mp := eventsmemory.NewPublisher(cfg.EventBuffer)
		publisher, source = mp, mp
	}

	ledgerService := ledger.NewLedger(
		memory.NewMemoryAccountStore(),
		memory.NewMemoryTransactionLog(),
		ledger.WithPublisher(publisher, cfg.KafkaTopic),
		ledger.WithCredentialDigits(cfg.CredentialDigits),
		ledger.WithAmountScale(cfg.AmountScale),
		ledger.WithBcryptCost(cfg.BcryptCost),
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.NewServer(ledgerService, source, cfg.RecentLimit).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("ledger server starting", logger.Fields{
			"addr":   cfg.HTTPAddr,
			"kafka":  len(cfg.KafkaBrokers) > 0,
			"topic":  cfg.KafkaTopic,
			"digits": cfg.CredentialDigits,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("ledger server stopped", nil)
	return nil
}
