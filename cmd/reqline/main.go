package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/studiowebux/reqline/internal/app"
	"github.com/studiowebux/reqline/internal/cli"
	"github.com/studiowebux/reqline/internal/config"
	"github.com/studiowebux/reqline/internal/executor"
	"github.com/studiowebux/reqline/internal/keybinds"
	"github.com/studiowebux/reqline/internal/logging"
	"github.com/studiowebux/reqline/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reqline",
	Short: "reqline - compose and fire HTTP requests from the terminal",
	Long: `reqline sends a single HTTP request and reports its status code.

With --ui it starts an interactive screen: edit the URL, pick a method and
watch each exchange resolve in a scrolling log.

Settings are read from ~/.reqline/config.yaml (or --config) and can be
overridden with REQLINE_* environment variables. Keybindings are read from
~/.reqline/keybinds.json.

Examples:
  reqline --url https://example.com                 # Print the status code
  reqline --url https://api.test/items -m post -b '{"a":1}'
  reqline --url https://api.test -H "Accept: application/json"
  reqline --ui                                      # Start the interactive UI
  reqline --ui --url https://example.com -m delete  # UI with a prefilled request`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize configuration
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		settings, err := config.Load(config.ResolveSettingsFile(flagConfig))
		if err != nil {
			return err
		}

		logger, closer, err := logging.Open(config.LogFile, settings.Level())
		if err != nil {
			return err
		}
		defer closer.Close()

		var body *string
		if cmd.Flags().Changed("body") {
			body = &flagBody
		}

		if flagUI {
			return runTUI(cmd.Context(), settings, body, logger)
		}
		return runCLI(cmd.Context(), settings, body, logger)
	},
}

// Flags for the root command
var (
	flagURL     string
	flagMethod  string
	flagUI      bool
	flagConfig  string
	flagHeaders []string
	flagBody    string
)

func init() {
	rootCmd.Flags().StringVarP(&flagURL, "url", "u", "", "Request URL")
	rootCmd.Flags().StringVarP(&flagMethod, "method", "m", "", "HTTP method (GET/POST/PUT/DELETE, case-insensitive)")
	rootCmd.Flags().BoolVar(&flagUI, "ui", false, "Start the interactive UI")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Settings file (default ~/.reqline/config.yaml)")
	rootCmd.Flags().StringArrayVarP(&flagHeaders, "header", "H", []string{}, "Request header \"Name: value\", can be repeated")
	rootCmd.Flags().StringVarP(&flagBody, "body", "b", "", "Request body")
}

// runCLI sends one request and prints its status
func runCLI(ctx context.Context, settings config.Settings, body *string, logger *slog.Logger) error {
	opts := cli.RunOptions{
		URL:            flagURL,
		Method:         flagMethod,
		Headers:        flagHeaders,
		Body:           body,
		Fallback:       settings.DefaultMethod,
		DefaultHeaders: settings.Headers,
		Timeout:        settings.Timeout,
		Logger:         logger,
	}
	return cli.Run(ctx, opts)
}

// runTUI starts the interactive UI, prefilled from the flags
func runTUI(ctx context.Context, settings config.Settings, body *string, logger *slog.Logger) error {
	state := app.Options{
		URL:            flagURL,
		FallbackMethod: settings.DefaultMethod,
		Body:           body,
	}

	if flagMethod != "" {
		m, err := cli.ParseMethod(flagMethod)
		if err != nil {
			return err
		}
		state.Method = &m
	}

	extra, err := cli.ParseHeaders(flagHeaders)
	if err != nil {
		return err
	}
	state.Headers = append(append(state.Headers, settings.Headers...), extra...)

	keys, err := loadKeybinds(logger)
	if err != nil {
		return err
	}
	state.Keys = keys

	err = tui.Run(ctx, tui.Options{
		State:     state,
		Sender:    executor.NewClient(settings.Timeout),
		TickRate:  settings.TickRate,
		FrameRate: settings.FrameRate,
		Logger:    logger,
	})
	if errors.Is(err, tui.ErrNotTerminal) {
		return fmt.Errorf("%w (drop --ui to send a single request)", err)
	}
	return err
}

// loadKeybinds reads keybinds.json, writing the defaults on first run
func loadKeybinds(logger *slog.Logger) (*keybinds.Registry, error) {
	if _, err := os.Stat(config.KeybindsFile); os.IsNotExist(err) {
		if err := keybinds.WriteDefaultConfig(config.KeybindsFile); err != nil {
			logger.Warn("failed to write default keybindings", "path", config.KeybindsFile, "error", err)
		}
	}

	registry, result, err := keybinds.Load(config.KeybindsFile)
	if err != nil {
		return nil, err
	}
	for _, w := range result.Warnings {
		logger.Warn("keybinding", "issue", w.Error())
	}
	return registry, nil
}
