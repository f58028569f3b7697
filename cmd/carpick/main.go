package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/carpick/internal/config"
	"github.com/h0rv/carpick/internal/logging"
	"github.com/h0rv/carpick/internal/store"
	"github.com/h0rv/carpick/internal/tui"
	"github.com/h0rv/carpick/internal/vpic"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// rootOptions holds the persistent flags and the configuration they resolve to.
type rootOptions struct {
	configPath     string
	logLevel       string
	logFile        string
	baseURL        string
	vehicleType    string
	timeout        time.Duration
	latestYear     int
	yearCount      int
	staleResponses string

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "carpick",
		Short: "Pick a vehicle by year, make and model",
		Long: `carpick is a terminal picker for vehicles listed in the NHTSA vPIC database.

Choose a model year, then a make, then a model. Makes and models are fetched
live from https://vpic.nhtsa.dot.gov.

Settings are read from the config file (see --config) and can be overridden
with flags. Logs are written to a file while the picker is running.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
		PersistentPostRun: func(*cobra.Command, []string) { logging.Sync() },
		RunE:              opts.runPicker,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default is the user config dir)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file path")
	flags.StringVar(&opts.baseURL, "base-url", "", "vPIC API root")
	flags.StringVar(&opts.vehicleType, "vehicle-type", "", "Vehicle type whose makes are listed")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Timeout of a single request")
	flags.IntVar(&opts.latestYear, "latest-year", 0, "Most recent year offered")
	flags.IntVar(&opts.yearCount, "year-count", 0, "Number of years offered")
	flags.StringVar(&opts.staleResponses, "stale-responses", "", "Handling of out-of-date responses: discard or last-wins")

	rootCmd.AddCommand(
		newYearsCmd(opts),
		newMakesCmd(opts),
		newModelsCmd(opts),
	)

	return rootCmd
}

// load resolves the configuration and starts logging before any command runs.
func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o.apply(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The picker owns the terminal, so its log goes to a file by default
	logPath := cfg.Log.File
	if logPath == "" && cmd == cmd.Root() {
		logPath = config.DefaultLogPath()
	}
	if err := logging.Initialize(cfg.Log.Level, logPath); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	logging.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("vehicle_type", cfg.API.VehicleType),
		zap.Int("latest_year", cfg.Years.Latest),
		zap.Int("year_count", cfg.Years.Count),
		zap.String("stale_responses", cfg.Loader.StaleResponses),
	)

	o.cfg = cfg
	return nil
}

// apply copies flags the user actually set over the loaded configuration.
func (o *rootOptions) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if flags.Changed("base-url") {
		cfg.API.BaseURL = o.baseURL
	}
	if flags.Changed("vehicle-type") {
		cfg.API.VehicleType = o.vehicleType
	}
	if flags.Changed("timeout") {
		cfg.API.Timeout = o.timeout
	}
	if flags.Changed("latest-year") {
		cfg.Years.Latest = o.latestYear
	}
	if flags.Changed("year-count") {
		cfg.Years.Count = o.yearCount
	}
	if flags.Changed("stale-responses") {
		cfg.Loader.StaleResponses = o.staleResponses
	}
}

func (o *rootOptions) client() *vpic.Client {
	return vpic.New(o.cfg.ClientOptions()...)
}

func (o *rootOptions) runPicker(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("carpick needs an interactive terminal; use the years, makes or models commands for plain output")
	}

	// Browser launchers print to stdout, which the picker owns
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	app := tui.NewAppModel(o.client(), store.New(), cmd.Context(), tui.Options{
		Years:       o.cfg.YearRange(),
		StalePolicy: o.cfg.StalePolicy(),
	})

	logging.Info("picker started")

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	if m, ok := final.(tui.AppModel); ok {
		logging.Info("picker closed", zap.String("selection", m.Flow().Selection().String()))
	}
	return nil
}
