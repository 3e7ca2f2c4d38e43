// Collector is the ingestion service: it receives encrypted sensor readings
// over HTTP, decrypts and validates them, fingerprints the plaintext, and
// persists attested records.
//
// Configuration comes from config.yaml in the working directory and/or
// environment variables (SERVER_BIND_ADDRESS, CIPHER_KEY, DATABASE_DRIVER,
// DATABASE_HOST, ...). With DATABASE_DRIVER=memory records are kept
// in-process, which is the default for local development.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	collectorDomain "github.com/csilab/sensor-attest/collector/domain"
	collectorInfrastructure "github.com/csilab/sensor-attest/collector/infrastructure"
	"github.com/csilab/sensor-attest/pkg/telemetry"
)

func endWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func main() {
	ctx, finish := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer finish()

	config, err := collectorInfrastructure.LoadConfig(".")
	if err != nil {
		endWithError(err)
	}

	logger := collectorInfrastructure.NewLogrusLogger()
	logger.Info("Creating services...")

	store, cleanup, err := newStore(ctx, config, logger)
	if err != nil {
		endWithError(err)
	}
	defer cleanup()

	codec := telemetry.NewCodec(config.Key)
	ingestor := collectorDomain.NewIngestor(codec, logger)
	apiServer := collectorInfrastructure.NewServer(ingestor, store, logger, config.QueryLimit)

	server := &http.Server{
		Addr:        string(config.BindAddress),
		Handler:     apiServer.Handler(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("Shutting down HTTP server...")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error: %s", err.Error())
		}
	}()

	logger.Info("Listening on %s", config.BindAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("listenAndServe error: %s", err.Error())
		finish()
	}

	wg.Wait()
	logger.Info("All components stopped gracefully")
}

// newStore selects the record store implementation from configuration.
func newStore(
	ctx context.Context,
	config *collectorInfrastructure.AppConfig,
	logger collectorDomain.Logger,
) (collectorDomain.RecordStore, func(), error) {
	switch config.Database.Driver {
	case "memory":
		logger.Info("using in-memory record store")
		return collectorInfrastructure.NewMemoryStore(), func() {}, nil
	case "postgres":
		logger.Info("connecting to postgres at %s:%d", config.Database.Host, config.Database.Port)
		store, err := collectorInfrastructure.NewPostgresStore(ctx, config.ConnString(), config.Database.TableName)
		if err != nil {
			return nil, nil, err
		}
		if err := store.InitializeTable(ctx); err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := store.Close(context.Background()); err != nil {
				logger.Error("error closing store: %s", err.Error())
			}
		}
		return store, cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", config.Database.Driver)
	}
}
