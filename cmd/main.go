package main

import (
	"context"
	"fmt"
	"forum-lab/auth"
	"forum-lab/internal"
	"forum-lab/moderation"
	"forum-lab/repositories"
	"forum-lab/runtime"
	"forum-lab/runtime/workers"
	"forum-lab/services"
	"forum-lab/transport"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal stops the node.
// Returning instead of exiting lets the deferred cleanups run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	replacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLogger(repositories.NewBadgerLogger(log)).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	repository := repositories.NewForumRepository(db, log, config.ModlogLimit)

	// 3. Moderation pipeline & rooms
	wordList, err := moderation.DefaultWordList()
	if err != nil {
		return fmt.Errorf("word list loading failed: %w", err)
	}
	censor, err := moderation.NewTextCensor(wordList.Words, replacement, log)
	if err != nil {
		return fmt.Errorf("censor building failed: %w", err)
	}
	key := []byte(config.JWTSigningKey)
	registry := runtime.NewSessionRegistry()
	hub := runtime.NewRoomHub(log, registry, config.SinkTimeout)
	resolver := auth.NewTokenResolver(log, repository, key)
	operationService := services.NewOperationService(log, repository, resolver, registry, hub, censor)

	options := []transport.Option{
		transport.WithBufferSize(config.ConnectionBufferSize),
	}
	if config.SeedDemo {
		tokens := services.NewAuthService(repository, key, config.AuthTokenDuration)
		if err := seedDemo(log, repository, tokens); err != nil {
			return fmt.Errorf("demo seeding failed: %w", err)
		}
		options = append(options, transport.WithTokenIssuer(tokens))
	}
	handler := transport.NewHandler(log, operationService, registry, options...)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervised workers, Run returns once they all stopped
	workers.NewSupervisor(log, config.RestartInterval).
		Add(
			workers.NewHTTPServerWorker(log, config.Address(), handler.Routes()),
			workers.NewHealthWorker(log, config.HealthAddress()),
			workers.NewTelemetryWorker(log, config.MetricInterval, registry),
		).
		Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}

func seedDemo(log *slog.Logger, repository *repositories.ForumRepository, tokens *services.AuthService) error {
	persons, err := repository.SeedDemo()
	if err != nil {
		return err
	}
	for _, person := range persons {
		token, err := tokens.IssueToken(context.Background(), person.ID)
		if err != nil {
			log.Debug("No demo token", "person", person.Name, "error", err)
			continue
		}
		log.Info("Demo token", "person", person.Name, "person_id", person.ID, "jwt", token.String())
	}
	return nil
}
