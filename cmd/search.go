package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucasferri/artmood/internal/config"
	"github.com/lucasferri/artmood/internal/intensity"
	"github.com/lucasferri/artmood/internal/terms"
)

var (
	flagSearchLimit int
	flagSearchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <mood text...>",
	Short: "Search artworks for a mood without the TUI",
	Long: `Run one mood search and print the results to stdout.

Prints the derived search terms, the query actually used (including any
fallback annotation) and the matched artworks.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		text := strings.Join(args, " ")
		result := newSearcher(cfg).Run(context.Background(), text)
		if result.Err != nil {
			return result.Err
		}

		items := result.Items
		if flagSearchLimit > 0 && len(items) > flagSearchLimit {
			items = items[:flagSearchLimit]
		}

		if flagSearchJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Query string   `json:"query"`
				Terms []string `json:"terms"`
				Items any      `json:"items"`
			}{Query: result.Query, Terms: result.Terms, Items: items})
		}

		fmt.Printf("Terms: %s\n", strings.Join(result.Terms, ", "))
		fmt.Printf("Query: %s\n", result.Query)
		fmt.Printf("Found %d artwork(s)\n\n", len(result.Items))
		for _, it := range items {
			fmt.Printf("  %s — %s", it.Title, it.Artist)
			if it.Date != "" {
				fmt.Printf(" (%s)", it.Date)
			}
			fmt.Printf("\n    %s\n", it.DetailURL)
		}
		return nil
	},
}

var termsCmd = &cobra.Command{
	Use:   "terms <mood text...>",
	Short: "Show the search terms derived from a mood description",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		b := intensity.ClassifyWithBreakdown(text)

		fmt.Printf("Terms: %s\n", strings.Join(terms.Derive(text), ", "))
		fmt.Printf("Emphatic: %v (exclamation=%v intensifier=%v crisis=%v)\n",
			b.Strong, b.Exclamation, b.Intensifier, b.Crisis)
	},
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", 0, "print at most this many results (0 = all)")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "print results as JSON")
}
