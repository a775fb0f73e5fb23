// Package cli holds the faqdesk commands. The root command opens the
// interactive browser; query and categories run the search engine headless.
package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"faqdesk/internal/catalog"
	"faqdesk/internal/config"
	"faqdesk/internal/domain"
	"faqdesk/internal/eventbus"
)

// ErrUnknownCategory is returned when --category names no category in the catalog
var ErrUnknownCategory = errors.New("unknown category")

// logFileName is where the commands log while the TUI owns the terminal
const logFileName = "faqdesk.log"

type rootOptions struct {
	configPath  string
	catalogPath string
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "faqdesk",
		Short: "faqdesk: help-center FAQ browser",
		Long: "Browse, search and rank help-center FAQs in the terminal.\n" +
			"Typing in the search box filters questions, answers and tags after a short pause;\n" +
			"results are ranked by relevance and popularity.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/faqdesk/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&opts.catalogPath, "catalog", "f", "", "FAQ catalog file (.json, .toml, .yaml); overrides catalog_path")

	rootCmd.AddCommand(newQueryCmd(opts))
	rootCmd.AddCommand(newCategoriesCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

// setupLogging redirects the standard logger to the log file so log lines
// never mix with terminal output. The returned func restores the previous
// output and closes the file.
func setupLogging() func() {
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	prev := log.Writer()
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(prev)
		_ = logFile.Close()
	}
}

func (o *rootOptions) configService(bus eventbus.EventBus) config.ConfigService {
	var svc config.ConfigService
	if o.configPath != "" {
		svc = config.NewConfigServiceAt(o.configPath)
	} else {
		svc = config.NewConfigService()
	}
	if bus != nil {
		svc = config.WithBus(svc, bus)
	}
	return svc
}

func (o *rootOptions) loadConfig(bus eventbus.EventBus) (*config.Config, error) {
	cfg, err := o.configService(bus).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolveCatalogPath resolves the --catalog flag against the config
func (o *rootOptions) resolveCatalogPath(cfg *config.Config) string {
	if o.catalogPath != "" {
		return o.catalogPath
	}
	return cfg.CatalogPath
}

// loadCatalog reads the configured catalog, or the built-in sample when none is set
func loadCatalog(path string) (domain.Catalog, error) {
	if path == "" {
		log.Printf("No catalog configured, using the built-in sample")
		return catalog.Sample(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return domain.Catalog{}, err
	}
	log.Printf("Loaded catalog from %s: %d entries", cat.Source, len(cat.Entries))
	return cat, nil
}
