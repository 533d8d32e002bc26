package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/journal-companion/internal/guidance"
	"github.com/alnah/journal-companion/internal/metrics"
	"github.com/alnah/journal-companion/internal/web"
)

// shutdownTimeout bounds graceful shutdown after an interrupt.
const shutdownTimeout = 10 * time.Second

// serveOptions holds options for the serve command.
type serveOptions struct {
	addr  string
	flags serviceFlags
}

// ServeCmd creates the serve command (run the journaling web page).
// The env parameter provides injectable dependencies for testing.
func ServeCmd(env *Env) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the journaling web page",
		Long: `Run the journaling web page.

The page offers the mode selector, the text area and the guidance area.
It also serves a JSON API (POST /api/guidance, GET /api/modes), a health
check (GET /healthz) and Prometheus metrics (GET /metrics).

Press Ctrl+C to stop; in-flight requests are allowed to finish.`,
		Example: `  journal serve
  journal serve --addr :8080 -p openai`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), env, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default: 127.0.0.1:8501)")
	opts.flags.register(cmd)

	return cmd
}

// runServe serves until ctx is canceled, then shuts down gracefully.
// A clean shutdown returns nil.
func runServe(ctx context.Context, env *Env, opts serveOptions) error {
	// Request logs are informational; show them unless the user asked for more.
	if env.LogLevel != nil && env.LogLevel.Level() > slog.LevelInfo {
		env.LogLevel.Set(slog.LevelInfo)
	}
	logger := env.Logger()

	m := metrics.New()
	svc, cfg, err := newService(ctx, env, opts.flags, guidance.WithObserver(m))
	if err != nil {
		return err
	}

	addr := cfg.AddrOrDefault()
	if opts.addr != "" {
		addr = opts.addr
	}

	ln, err := env.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w: %w", addr, ErrServeFailed, err)
	}

	srv := web.NewServer(addr, svc, web.WithLogger(logger), web.WithMetrics(m))
	fmt.Fprintf(env.Stderr, "Journal companion running at http://%s (Ctrl+C to stop)\n", ln.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil {
			return fmt.Errorf("%w: %w", ErrServeFailed, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
