package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vigcrack/analysis"
	"github.com/katalvlaran/vigcrack/dictionary"
	"github.com/katalvlaran/vigcrack/internal/cache"
	"github.com/katalvlaran/vigcrack/internal/httpapi"
	"github.com/katalvlaran/vigcrack/internal/metrics"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis engine over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			m := metrics.New(reg)

			e, err := analysis.New(a.model,
				analysis.WithLogger(a.log),
				analysis.WithMetrics(m),
				analysis.WithConcurrency(a.cfg.Concurrency),
				analysis.WithSubstringRange(a.cfg.SubstringMin, a.cfg.SubstringMax),
			)
			if err != nil {
				return err
			}

			var vocab *dictionary.Vocabulary
			if a.cfg.Vocabulary != "" {
				if vocab, err = loadVocabulary(a.cfg.Vocabulary); err != nil {
					return err
				}
				a.log.Info("vocabulary loaded", "words", vocab.Len())
			}

			var store cache.Store = cache.NewMemory()
			if a.cfg.RedisURL != "" {
				rs, err := cache.DialRedis(ctx, a.cfg.RedisURL)
				if err != nil {
					return err
				}
				defer rs.Close()
				store = rs
			}

			h := httpapi.New(e,
				httpapi.WithLogger(a.log),
				httpapi.WithMetrics(m, reg),
				httpapi.WithCache(store, a.cfg.CacheTTL),
				httpapi.WithKeyRange(a.cfg.MinKey, a.cfg.MaxKey),
				httpapi.WithVocabulary(vocab),
			)
			srv := httpapi.NewServer(a.cfg.Addr, h.Router())

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("listening", "addr", a.cfg.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			a.log.Info("shutting down")

			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().Int("min_key", 25, "Default minimum key length")
	cmd.Flags().Int("max_key", 250, "Default maximum key length")
	cmd.Flags().String("vocabulary", "", "Vocabulary file enabling /v1/dictionary")

	return cmd
}
