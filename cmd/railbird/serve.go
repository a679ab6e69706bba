package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/railbirdhq/railbird/internal/server"
	"github.com/railbirdhq/railbird/internal/store"
)

// ServeCmd runs the HTTP and WebSocket server
type ServeCmd struct {
	Config   string `kong:"default='railbird.hcl',help='Path to HCL config file'"`
	Addr     string `kong:"help='Listen address, overrides config'"`
	Port     int    `kong:"help='Listen port, overrides config'"`
	Database string `kong:"help='SQLite database path, overrides config'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	config, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		config.Server.Address = c.Addr
	}
	if c.Port != 0 {
		config.Server.Port = c.Port
	}
	if c.Database != "" {
		config.Server.Database = c.Database
	}
	if err := config.Validate(); err != nil {
		return err
	}

	logger := setupLogger(config.Server.LogLevel, c.Debug)

	st, err := store.Open(config.Server.Database, logger, quartz.NewReal())
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info("Starting railbird server",
		"addr", config.GetServerAddress(),
		"database", config.Server.Database)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.NewServer(config, st, logger).Start(ctx)
}
