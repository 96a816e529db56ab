package main

import (
	"context"
	"errors"
	"time"

	"github.com/lox/balatro-advisor/cmd/balatro-advisor/shared"
	"github.com/lox/balatro-advisor/internal/display"
	"github.com/lox/balatro-advisor/internal/scenario"
	"github.com/lox/balatro-advisor/internal/server"
	"github.com/lox/balatro-advisor/internal/watch"
)

const shutdownTimeout = 5 * time.Second

// ServeCmd serves the advisor over websocket
type ServeCmd struct {
	Addr string `help:"Server address (defaults to the config file's server.address)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	addr := c.Addr
	if addr == "" {
		addr = e.cfg.Server.Address
	}

	s := server.NewServer(addr, e.logger, server.WithLevels(e.levels))
	e.logger.Info("Starting balatro advisor server", "address", addr, "upgraded", len(e.levels.Upgraded()))

	ctx := shared.SetupSignalHandler(e.logger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- s.Start()
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	e.logger.Info("Server stopped")
	return nil
}

// WatchCmd re-analyses a scenario file every time it changes
type WatchCmd struct {
	File     string        `arg:"" type:"path" help:"HCL scenario file to watch"`
	Interval time.Duration `help:"Polling interval (defaults to the config file's watch.interval)"`
	Out      string        `type:"path" help:"Rewrite the reports as JSON to this file on every change"`
}

func (c *WatchCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	interval := c.Interval
	if interval <= 0 {
		if interval, err = e.cfg.WatchInterval(); err != nil {
			return err
		}
	}

	sink := func(results []scenario.Result) {
		printf("\n%s\n", display.HeaderStyle.Render("🔄 "+time.Now().Format(time.TimeOnly)))
		printResults(results)
		if c.Out != "" {
			if err := writeResults(c.Out, results); err != nil {
				e.logger.Error("Failed to write reports", "file", c.Out, "error", err)
			}
		}
	}

	ctx := shared.SetupSignalHandler(e.logger)
	return watch.New(c.File, interval, sink, e.logger).Run(ctx)
}
