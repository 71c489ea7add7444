package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"racewiki/internal/config"
	"racewiki/internal/extractor"
	"racewiki/internal/formatter"
	"racewiki/internal/log"
	"racewiki/internal/scraper"
	_ "racewiki/internal/sites/f1"
)

var version = "dev"

const envPrefix = "RACEWIKI"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "racewiki [URL]",
		Short:   "Convert motorsport results pages into wiki result rows",
		Version: version,
		Long: `racewiki fetches a race or practice classification page, joins it with the
starting grid and pit stop summary of the same session, and prints one
RaceResults/Row or PracticeResults/Row template block per driver.`,
		Example: `  # Race classification joined with the starting grid
  racewiki https://www.formula1.com/en/results/2024/races/1229/bahrain/race-result

  # Include pit stop counts and copy the rows to the clipboard
  racewiki --site f1.race-pits --copy https://www.formula1.com/en/results/2024/races/1229/bahrain/race-result

  # Practice session rows
  racewiki --site f1.practice https://www.formula1.com/en/results/2024/races/1229/bahrain/practice/1

  # Export the enriched table as CSV
  racewiki -o bahrain.csv https://www.formula1.com/en/results/2024/races/1229/bahrain/race-result`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&config.ConfigFile, "config", "", "config file (default is $HOME/.racewiki.yml)")
	rootCmd.Flags().StringVar(&config.Site, "site", "f1.race", "Session variant ("+strings.Join(scraper.Names(), ", ")+")")
	rootCmd.Flags().StringVarP(&config.Format, "format", "f", formatter.Formats[0], "Output format ("+strings.Join(formatter.Formats, ", ")+")")
	rootCmd.Flags().StringVarP(&config.Output, "output", "o", "", "Output file path (format inferred from extension if -f not specified)")
	rootCmd.Flags().DurationVarP(&config.Timeout, "timeout", "t", 30*time.Second, "Per-page fetch timeout")
	rootCmd.Flags().StringVarP(&config.ProxyURL, "proxy", "p", "", "Proxy URL (e.g. http://127.0.0.1:7890), defaults to RACEWIKI_PROXY env var")
	rootCmd.Flags().BoolVar(&config.Render, "render", false, "Fetch pages through headless Chromium")
	rootCmd.Flags().BoolVar(&config.ShowUI, "showui", false, "Show browser UI (disable headless mode) with --render")
	rootCmd.Flags().StringVarP(&config.Selector, "selector", "s", extractor.DefaultSelector, "CSS selector of the results table")
	rootCmd.Flags().StringVar(&config.Reference, "reference", "", "YAML file overriding team codes and driver flags")
	rootCmd.Flags().BoolVar(&config.Copy, "copy", false, "Copy the output to the clipboard")
	rootCmd.Flags().StringVar(&config.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&config.LogFormat, "log-format", "console", "Log format (console, json)")

	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command) error {
	v := viper.New()
	if config.ConfigFile != "" {
		v.SetConfigFile(config.ConfigFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".racewiki")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if config.ConfigFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindFlags(cmd, v)
	return nil
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// --log-level is read from RACEWIKI_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v\n", f.Name, err)
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v\n", f.Name, err)
			}
		}
	})
}

func run(cmd *cobra.Command, args []string) error {
	if err := log.Init(config.LogLevel, config.LogFormat); err != nil {
		return err
	}
	defer log.Sync()

	var target string
	if len(args) > 0 {
		target = args[0]
	}

	// If output file is specified but format is not, infer format from file extension
	if config.Output != "" && !cmd.Flags().Changed("format") {
		if inferred := inferFormatFromExtension(config.Output); inferred != "" {
			config.Format = inferred
		}
	}

	if err := validateFlags(); err != nil {
		return err
	}

	s, _ := scraper.Get(config.Site)
	opts := scraper.Options{
		Timeout:   config.Timeout,
		ProxyURL:  config.ProxyURL,
		Render:    config.Render,
		ShowUI:    config.ShowUI,
		Selector:  config.Selector,
		Reference: config.Reference,
	}

	content, err := s.Scrape(cmd.Context(), target, opts)
	if err != nil {
		return fmt.Errorf("failed to scrape: %w", err)
	}

	out, err := formatter.Format(content, config.Format)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if config.Output != "" {
		if err := os.WriteFile(config.Output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write to file: %w", err)
		}
		log.Logger.Info("output written", zap.String("file", config.Output), zap.String("format", config.Format))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	if config.Copy {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("failed to copy output to clipboard: %w", err)
		}
		log.Logger.Info("output copied to clipboard")
	}

	return nil
}

func validateFlags() error {
	if _, ok := scraper.Get(config.Site); !ok {
		return fmt.Errorf("unknown site: %s (available: %s)", config.Site, strings.Join(scraper.Names(), ", "))
	}

	if !slices.Contains(formatter.Formats, config.Format) {
		return fmt.Errorf("invalid output format: %s", config.Format)
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("invalid timeout: %s", config.Timeout)
	}

	if config.ShowUI && !config.Render {
		return fmt.Errorf("--showui requires --render")
	}

	return nil
}

// inferFormatFromExtension infers output format from file extension
func inferFormatFromExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".wiki", ".mediawiki":
		return "wiki"
	case ".md", ".markdown":
		return "markdown"
	case ".json":
		return "json"
	case ".html", ".htm":
		return "html"
	case ".txt":
		return "text"
	case ".csv":
		return "csv"
	default:
		return ""
	}
}
