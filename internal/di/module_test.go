package di

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/freightorders/internal/config"
	"github.com/polkiloo/freightorders/internal/domain/repository"
	"github.com/polkiloo/freightorders/internal/server/http/handlers"
	"github.com/polkiloo/freightorders/internal/storage/postgres"
	"github.com/polkiloo/freightorders/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		ClientPolicy:    config.ClientPolicySynthesize,
		DefaultPageSize: 20,
		MaxPageSize:     100,
		ShutdownTimeout: time.Millisecond,
		LogLevel:        "info",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orderRepo := &test.OrderRepositoryStub{}
	clientRepo := &test.ClientRepositoryStub{}
	tx := &test.TransactorStub{}

	var (
		service handlers.OrderService
		server  *http.Server
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(context.Background),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.ClientRepository(clientRepo)),
			fx.Replace(repository.Transactor(tx)),
		),
		fx.Populate(&service, &server),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	if service == nil {
		t.Fatal("expected order service instance")
	}
	if server == nil || server.Addr != ":0" {
		t.Fatalf("expected http server bound to configured address, got %+v", server)
	}
}

func TestModuleRejectsUnknownClientPolicy(t *testing.T) {
	cfg := &config.Config{ClientPolicy: "guess", DefaultPageSize: 20, MaxPageSize: 100}
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(context.Background),
		Module(
			fx.Replace(cfg),
			fx.Replace(slog.New(slog.NewJSONHandler(io.Discard, nil))),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.OrderRepository(&test.OrderRepositoryStub{})),
			fx.Replace(repository.ClientRepository(&test.ClientRepositoryStub{})),
			fx.Replace(repository.Transactor(&test.TransactorStub{})),
		),
		fx.Invoke(func(handlers.OrderService) {}),
	)
	if fxApp.Err() == nil {
		t.Fatal("expected graph construction to fail for unknown client policy")
	}
}
