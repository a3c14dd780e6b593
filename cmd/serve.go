package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/farooque06/portfolio/internal/config"
	"github.com/farooque06/portfolio/internal/content"
	"github.com/farooque06/portfolio/internal/relay"
	"github.com/farooque06/portfolio/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		site, err := content.Load(cfg.ContentFile)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		if cfg.Relay.AccessKey == "" {
			log.Println("WARNING: relay access key not set; contact submissions will fail. Set PORTFOLIO_RELAY__ACCESS_KEY.")
		}

		srv, err := server.New(server.Options{
			Config:  cfg,
			Content: site,
			Relay:   relay.New(cfg.RelayClient()),
		})
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case sig := <-sigCh:
			log.Printf("Received %s, shutting down...", sig)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
