package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reactwise/condrec/internal/domain/evidence"
	httpserver "github.com/reactwise/condrec/internal/interfaces/http"
	"github.com/reactwise/condrec/internal/interfaces/http/handlers"
)

// NewServeCmd creates the serve command: the recommendation API over the
// local dataset and summary store.  Unlike cmd/apiserver it wires no external
// backends, which makes it the quickest way to stand the API up on a laptop.
func NewServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the recommendation API over the local dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg := cliCtx.Config
			if port > 0 {
				cfg.Server.Port = port
			}

			eng, err := buildEngine(cliCtx)
			if err != nil {
				return err
			}

			records, summaries := buildStores(cliCtx)
			aggregator := evidence.NewAggregator(cliCtx.Logger, cfg.Evidence.WinsorizePct)

			router := httpserver.NewRouter(httpserver.RouterConfig{
				RecommendHandler: handlers.NewRecommendHandler(eng, cliCtx.Logger),
				EvidenceHandler:  handlers.NewEvidenceHandler(summaries, aggregator, records, cliCtx.Logger),
				HealthHandler:    handlers.NewHealthHandler(Version),
				Logger:           cliCtx.Logger,
				Mode:             httpserver.ModeFromConfig(cfg.Server),
			})
			srv := httpserver.NewServer(cfg.Server, router, cliCtx.Logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			PrintSuccess(cmd, fmt.Sprintf("serving on :%d (ctrl-c to stop)", cfg.Server.Port))
			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (0 = configured default)")
	return cmd
}
