package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	. "github.com/DrGermanius/paysettle/internal"
	"github.com/DrGermanius/paysettle/internal/clock"
	"github.com/DrGermanius/paysettle/internal/model"
)

const (
	notifyBackoff   = time.Second
	reconcileBatch  = 100
	maxFulfilTries  = 10
	shutdownTimeout = 10 * time.Second
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()
	defer func() { _ = sugaredLogger.Sync() }()

	rootCmd := &cobra.Command{
		Use:          "settlement",
		Short:        "order and payment settlement service",
		SilenceUsage: true,
	}
	cfg := NewConfig(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		serveCommand(cfg, sugaredLogger),
		migrateCommand(cfg, sugaredLogger),
		reconcileCommand(cfg, sugaredLogger),
		tokenCommand(cfg),
	)

	if err = rootCmd.ExecuteContext(context.Background()); err != nil {
		sugaredLogger.Fatal(err)
	}
}

func serveCommand(cfg *Config, sugaredLogger *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the http api and background workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			tolerance, err := cfg.Tolerance()
			if err != nil {
				return err
			}
			if cfg.WebhookSecret == "" && cfg.WebhookAPIKey == "" {
				sugaredLogger.Warn("no webhook secret configured, every payment callback will be rejected")
			}

			repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
			if err != nil {
				return err
			}
			defer repository.Close()

			if err = Migrate(repository.Conn); err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var sender ISender = NewLogSender(sugaredLogger)
			if brokers := cfg.Brokers(); len(brokers) > 0 {
				producer, err := NewKafkaProducer(brokers)
				if err != nil {
					return fmt.Errorf("connect kafka: %w", err)
				}
				kafkaSender := NewKafkaSender(producer, cfg.NotificationTopic)
				defer kafkaSender.Close()
				sender = kafkaSender
			}

			dispatcher := NewDispatcher(sender, cfg.NotifyWorkers, cfg.NotifyMaxAttempts, notifyBackoff, sugaredLogger)
			dispatcher.Start(ctx)

			clk := clock.NewSystem()
			codes := NewOrderCodes(cfg.OrderCodePrefix)
			instructions := PaymentInstructions{BankID: cfg.BankID, AccountNo: cfg.AccountNo, AccountName: cfg.AccountName}

			fulfiller := NewFulfiller(repository, clk, sugaredLogger)
			engine := NewSettlementEngine(repository, fulfiller, dispatcher, tolerance, cfg.FulfillmentTimeout, clk, sugaredLogger)
			webhook := NewWebhook(cfg.WebhookSecret, cfg.WebhookAPIKey, codes, engine, sugaredLogger)
			service := NewService(repository, codes, instructions, clk, sugaredLogger)
			handlers := NewHandlers(service, webhook, cfg.JWTSecret, sugaredLogger)

			reconciler := NewReconciler(repository, fulfiller, reconcileBatch, maxFulfilTries, sugaredLogger)
			go reconciler.Run(ctx, cfg.ReconcileInterval)

			app := fiber.New()
			app.Use(logger.New())
			handlers.Routes(app)

			listenErr := make(chan error, 1)
			go func() {
				listenErr <- app.Listen(cfg.RunAddress)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err = <-listenErr:
			case <-quit:
				sugaredLogger.Info("Shutting down service...")
				err = shutdown(app)
			}

			cancel()
			dispatcher.Stop()
			return err
		},
	}
}

func shutdown(app *fiber.App) error {
	done := make(chan error, 1)
	go func() {
		done <- app.Shutdown()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(shutdownTimeout):
		return errors.New("http shutdown timed out")
	}
}

func migrateCommand(cfg *Config, sugaredLogger *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "migrate the database all the way up",
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
			if err != nil {
				return err
			}
			defer repository.Close()

			if err = Migrate(repository.Conn); err != nil {
				return err
			}
			sugaredLogger.Info("Migrated up")
			return nil
		},
	}
}

func reconcileCommand(cfg *Config, sugaredLogger *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "deliver paid orders whose fulfillment is still pending",
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
			if err != nil {
				return err
			}
			defer repository.Close()

			fulfiller := NewFulfiller(repository, clock.NewSystem(), sugaredLogger)
			reconciler := NewReconciler(repository, fulfiller, reconcileBatch, maxFulfilTries, sugaredLogger)

			delivered, err := reconciler.Reconcile(cmd.Context())
			if err != nil {
				return err
			}
			sugaredLogger.Infow("reconciliation finished", "delivered", delivered)
			return nil
		},
	}
}

func tokenCommand(cfg *Config) *cobra.Command {
	var (
		role string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token [user id]",
		Short: "issue an access token for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.JWTSecret == "" {
				return errors.New("jwt secret is not configured")
			}
			uid, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", args[0], err)
			}

			token, err := NewToken(cfg.JWTSecret, uid, role, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", model.RoleStudent, "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
