package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"aitrends-dashboard/internal/aggregate"
	"aitrends-dashboard/internal/chart"
	"aitrends-dashboard/internal/config"
	"aitrends-dashboard/internal/dashboard"
	"aitrends-dashboard/internal/dataset"
	"aitrends-dashboard/internal/domain"
	"aitrends-dashboard/internal/httpapi"
	"aitrends-dashboard/internal/store"
)

func main() {
	cfgPath, err := config.ConfigPath()
	if err != nil {
		fatal(slog.Default(), "config path", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal(slog.Default(), "config load failed", err, "path", cfgPath)
	}

	log := newLogger(cfg.App.Debug)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, closeIndex, err := buildState(ctx, cfg, log)
	if err != nil {
		fatal(log, "startup failed", err, "dataset", cfg.Dataset.Path)
	}
	defer closeIndex()

	if err := serve(ctx, cfg, state, log); err != nil {
		fatal(log, "server stopped", err)
	}
	log.Info("shutdown complete")
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func fatal(log *slog.Logger, msg string, err error, args ...any) {
	log.Error(msg, append(args, "err", err)...)
	os.Exit(1)
}

// buildState loads the dataset, then builds the chart and the title index
// side by side. The returned func releases the index.
func buildState(ctx context.Context, cfg config.Config, log *slog.Logger) (*dashboard.State, func(), error) {
	tbl, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, nil, err
	}
	summaries := aggregate.Summarize(tbl.Records)
	log.Info("dataset loaded", "path", cfg.Dataset.Path, "records", tbl.Len(), "industries", len(summaries))

	state := &dashboard.State{Table: tbl, Summaries: summaries}
	closeIndex := func() {}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		state.Figure = chart.Build(summaries, chart.Options{
			Title:   cfg.Chart.Title,
			SizeMax: cfg.Chart.SizeMax,
			SizeMin: cfg.Chart.SizeMin,
			Colors: map[domain.Trend]string{
				domain.TrendCreation: cfg.Chart.CreationColor,
				domain.TrendLoss:     cfg.Chart.LossColor,
			},
		})
		return nil
	})
	g.Go(func() error {
		if cfg.Dataset.Index == config.IndexMemory {
			state.Titles = tbl
			return nil
		}
		db, err := store.OpenIndex(gctx, tbl.Records)
		if err != nil {
			return err
		}
		closeIndex = func() { _ = db.Close() }
		n, err := db.CountJobs(gctx)
		if err != nil {
			return fmt.Errorf("count indexed jobs: %w", err)
		}
		if n != tbl.Len() {
			return fmt.Errorf("title index holds %d rows, dataset has %d", n, tbl.Len())
		}
		state.Titles = db
		return nil
	})
	if err := g.Wait(); err != nil {
		closeIndex()
		return nil, nil, err
	}

	for _, industry := range state.Figure.Skipped {
		log.Warn("industry left off chart", "industry", industry, "reason", skipReason(summaries, industry))
	}
	log.Info("title index ready", "backend", cfg.Dataset.Index, "rows", tbl.Len())
	return state, closeIndex, nil
}

func skipReason(summaries []domain.IndustrySummary, industry string) string {
	for _, s := range summaries {
		if s.Industry != industry {
			continue
		}
		switch {
		case !s.PctDefined:
			return "zero 2024 openings"
		case !s.ImpactKnown:
			return fmt.Sprintf("unknown AI impact level %q", s.ImpactLevel)
		}
	}
	return "unknown"
}

func serve(ctx context.Context, cfg config.Config, state *dashboard.State, log *slog.Logger) error {
	mux := httpapi.NewMux(httpapi.Deps{
		State:   state,
		Limiter: httpapi.NewClientLimiter(cfg.Limits.CallbacksPerSec, cfg.Limits.Burst),
		Logger:  log,
		Debug:   cfg.App.Debug,
	})

	srv := &http.Server{
		Handler:           httpapi.Chain(mux, httpapi.RequestID, httpapi.AccessLog(log), httpapi.Recover(log)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return err
	}
	log.Info("dashboard listening", "url", "http://"+ln.Addr().String(), "debug", cfg.App.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
