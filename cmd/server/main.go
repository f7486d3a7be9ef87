package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/mark3labs/mcp-go/server"

	"github.com/datamaster/trilium-mcp/internal/config"
	"github.com/datamaster/trilium-mcp/internal/dispatch"
	"github.com/datamaster/trilium-mcp/internal/noteops"
	"github.com/datamaster/trilium-mcp/internal/permission"
	"github.com/datamaster/trilium-mcp/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	client := upstream.NewClient(upstream.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: 30 * time.Second,
	}, logger)

	perms := permission.Parse(cfg.Permissions)
	ops := noteops.New(client, logger)
	d := dispatch.New(ops, perms, logger)

	mcpServer := server.NewMCPServer("trilium-mcp", "1.0.0")
	d.Register(mcpServer)

	logger.Info("trilium-mcp starting", zap.String("baseUrl", cfg.API.BaseURL), zap.String("permissions", cfg.Permissions))

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
