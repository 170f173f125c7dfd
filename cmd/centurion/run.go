package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeusync/centurion/internal/core/config"
	"github.com/zeusync/centurion/internal/core/observability/log"
	"github.com/zeusync/centurion/internal/core/simulation"
	"github.com/zeusync/centurion/internal/core/trace"
	"github.com/zeusync/centurion/internal/injector"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation described by a YAML config",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	f := cmd.Flags()
	f.StringP("config", "c", "", "simulation config file")
	f.StringP("trace", "o", "", "trace output file, JSON lines (overrides system.trace_file)")
	f.String("log-level", "info", "debug, info, warn, error or none")
	f.String("log-file", "", "also write the log to this rotated file (overrides system.log_file)")
	f.Int("workers", 0, "agents sensed in parallel per tick, 0 senses sequentially")
	f.String("serve", "", "stream the run to websocket viewers on this address, e.g. :8080")
	f.Float64("realtime", 0, "pace the run at this multiple of wall-clock time, 0 runs unpaced")
	f.Uint64("seed", 0, "override system.rand_seed")
	return cmd
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	v, err := bindFlags(cmd)
	if err != nil {
		return err
	}
	path := v.GetString("config")
	if path == "" {
		return errors.New("run: --config is required")
	}
	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if v.IsSet("seed") {
		cfg.System.RandSeed = v.GetUint64("seed")
	}

	logFile := v.GetString("log-file")
	if logFile == "" {
		logFile = cfg.System.LogFile
	}
	rt := injector.InitializeRuntime(log.Config{Level: level, File: logFile, MaxSizeMB: 100, MaxBackups: 3})
	logger := rt.Logger.With(log.Component("run"), log.String("config", path))
	defer func() { _ = rt.Logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var recorders []trace.Recorder
	if addr := v.GetString("serve"); addr != "" {
		hub := trace.NewHub(logger)
		shutdown, err := serve(ctx, addr, hub, logger)
		if err != nil {
			return err
		}
		defer shutdown()
		recorders = append(recorders, hub)
	}

	tracePath := v.GetString("trace")
	if tracePath == "" {
		tracePath = cfg.System.TraceFile
	}
	if tracePath != "" {
		fr, err := trace.CreateFile(tracePath)
		if err != nil {
			_ = trace.Multi(recorders...).Close()
			return err
		}
		recorders = append(recorders, fr)
	}
	rec := trace.Multi(recorders...)

	engine, err := simulation.FromConfig(cfg, rt.Registry,
		simulation.WithWorkers(v.GetInt("workers")),
		simulation.WithLogger(rt.Logger.With(log.Component("engine"))),
		simulation.WithRecorder(rec),
		simulation.WithRealtime(v.GetFloat64("realtime")),
	)
	if err != nil {
		_ = rec.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	summary, runErr := engine.Run(ctx)
	if err := rec.Close(); err != nil && runErr == nil {
		runErr = err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ticks=%d sim_time=%.3f collisions=%d fingerprint=%016x canceled=%t\n",
		summary.Ticks, summary.SimTime, summary.Collisions, summary.Fingerprint, summary.Canceled)
	if summary.Canceled {
		logger.Info("run interrupted")
		return nil
	}
	return runErr
}

// serve listens on addr and returns a function that stops the server.
func serve(ctx context.Context, addr string, hub *trace.Hub, logger log.Log) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("serve: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("trace server stopped", log.Error(err))
		}
	}()
	logger.Info("streaming trace", log.String("addr", ln.Addr().String()), log.String("path", "/ws"))

	return func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}, nil
}
