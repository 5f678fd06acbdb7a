package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucasferri/artmood/internal/config"
	"github.com/lucasferri/artmood/internal/likes"
	"github.com/lucasferri/artmood/internal/provider"
	"github.com/lucasferri/artmood/internal/search"
	"github.com/lucasferri/artmood/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "artmood [mood text...]",
	Short: "TUI mood-to-art gallery",
	Long: `artmood turns a free-text mood description into a browsable gallery of
artworks from the Met Museum and the Art Institute of Chicago.

Run without arguments for the interactive gallery, or pass the mood text
directly to search immediately.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(termsCmd)
	rootCmd.AddCommand(likesCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("artmood %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := likes.Open(config.LikesPath())
	if err != nil {
		return fmt.Errorf("opening likes store: %w", err)
	}
	defer store.Close()

	return tui.Run(tui.RunOpts{
		Searcher: newSearcher(cfg),
		Store:    store,
		Version:  version,
		MoodText: strings.TrimSpace(strings.Join(args, " ")),
	})
}

// newSearcher wires the enabled providers into an orchestrator.
func newSearcher(cfg *config.Config) *search.Orchestrator {
	timeout := cfg.Timeout()

	var providers []provider.Provider
	if cfg.Providers.Met.Enabled {
		providers = append(providers, newMet(cfg.Providers.Met, timeout))
	}
	if cfg.Providers.AIC.Enabled {
		providers = append(providers, newAIC(cfg.Providers.AIC, timeout))
	}

	return search.New(providers, search.Options{
		MinResults: cfg.MinResults(),
		MaxResults: cfg.MaxResults(),
	})
}

func newMet(p config.MetProvider, timeout time.Duration) *provider.Met {
	return provider.NewMet(provider.MetConfig{
		SearchURL: p.SearchURL,
		ObjectURL: p.ObjectURL,
		PageURL:   p.PageURL,
	}, timeout)
}

func newAIC(p config.AICProvider, timeout time.Duration) *provider.AIC {
	return provider.NewAIC(provider.AICConfig{
		SearchURL: p.SearchURL,
		IIIFURL:   p.IIIFURL,
		PageURL:   p.PageURL,
	}, timeout)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
