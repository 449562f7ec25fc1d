package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/Narturebelle/Narturebelle/internal/config"
	"github.com/Narturebelle/Narturebelle/pkg/logger"
)

var (
	openBrowser bool
	servePort   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the landing page server",
	Long: `Start the HTTP server and block until interrupted.

With --open the landing page is opened in the default browser once the
server is listening.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := loadEnv(envFiles); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}

	var (
		cfg *config.Config
		log *slog.Logger
	)
	app := fx.New(appOptions(
		fx.Decorate(func(c *config.Config) *config.Config {
			if servePort > 0 {
				c.ServerPort = servePort
			}
			return c
		}),
		fx.Populate(&cfg, &log),
	))
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(cmd.Context(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	if openBrowser {
		if err := OpenBrowser(cfg.BaseURL()); err != nil {
			log.Warn("could not open browser", logger.Error(err))
		}
	}

	sig := <-app.Wait()
	log.Info("shutting down", slog.Any("signal", sig.Signal))

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return app.Stop(stopCtx)
}

// OpenBrowser opens url in the user's default browser.
func OpenBrowser(url string) error {
	if url == "" {
		return fmt.Errorf("cannot open browser: empty URL provided")
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser automatically, please open this URL manually:\n%s\nError: %w", url, err)
	}
	return nil
}

func init() {
	serveCmd.Flags().BoolVar(&openBrowser, "open", false, "open the landing page in the default browser")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override SERVER_PORT")
	rootCmd.AddCommand(serveCmd)
}
