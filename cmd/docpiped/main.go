package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	docpipev1 "github.com/taxfolio/docpipe/gen/proto/docpipe/v1"
	"github.com/taxfolio/docpipe/internal/bootstrap"
	"github.com/taxfolio/docpipe/internal/common"
	"github.com/taxfolio/docpipe/internal/export"
	"github.com/taxfolio/docpipe/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	dispatcher, err := app.NewDispatcher(app.Processor)
	if err != nil {
		logger.Error("dispatch setup failed", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()

	exporter := export.NewService(app.Documents, logger)
	docService := server.NewDocumentService(app.Documents, dispatcher, exporter, app.Rules, logger)
	docpipev1.RegisterDocumentServiceServer(grpcServer, docService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("docpiped listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	dispatcher.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
