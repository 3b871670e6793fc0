package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stairforge/internal/api"
	"github.com/matzehuels/stairforge/pkg/preset"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string
	var mongoURI string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the staircase generation HTTP server",
		Long:  `Starts an HTTP server exposing the generation pipeline and preset store as a JSON API. The cache backend comes from the config file; presets live on disk unless a MongoDB URI is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = c.Config.Server.Listen
			}
			if mongoURI == "" {
				mongoURI = c.Config.Server.MongoURI
			}
			return c.runServe(cmd.Context(), listen, mongoURI)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config, \":8080\")")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI for the preset store (default: on-disk presets)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, listen, mongoURI string) error {
	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return err
	}
	defer runner.Close()

	presets, err := c.newPresetStore(ctx, mongoURI)
	if err != nil {
		return err
	}
	defer presets.Close()

	server := api.NewServer(runner, presets, c.Logger)
	httpServer := &http.Server{
		Addr:              listen,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", listen)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// newPresetStore selects the preset backend: MongoDB when a URI is given,
// the on-disk store otherwise.
func (c *CLI) newPresetStore(ctx context.Context, mongoURI string) (preset.Store, error) {
	if mongoURI != "" {
		c.Logger.Debug("using mongodb preset store")
		return preset.NewMongoStore(ctx, preset.MongoConfig{URI: mongoURI})
	}
	return preset.NewFileStore("")
}
