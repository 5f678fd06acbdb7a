package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasferri/artmood/internal/config"
	"github.com/lucasferri/artmood/internal/likes"
)

var likesCmd = &cobra.Command{
	Use:   "likes",
	Short: "List liked artworks",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := likes.Open(config.LikesPath())
		if err != nil {
			return fmt.Errorf("opening likes store: %w", err)
		}
		defer store.Close()

		items, err := store.List()
		if err != nil {
			return fmt.Errorf("listing likes: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No liked artworks yet. Press 'l' on an artwork in the gallery.")
			return nil
		}

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

var likesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every liked artwork",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := likes.Open(config.LikesPath())
		if err != nil {
			return fmt.Errorf("opening likes store: %w", err)
		}
		defer store.Close()

		deleted, err := store.Clear()
		if err != nil {
			return fmt.Errorf("clearing likes: %w", err)
		}

		if deleted == 0 {
			fmt.Println("Nothing to clear.")
		} else {
			fmt.Printf("Removed %d liked artwork(s).\n", deleted)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show likes store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.LikesPath()
		store, err := likes.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening likes store: %w", err)
		}
		defer store.Close()

		count, size, err := store.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("Store: %s\n", dbPath)
		fmt.Printf("Liked artworks: %d\n", count)
		fmt.Printf("Size: %s\n", formatBytes(size))
		return nil
	},
}

func init() {
	likesCmd.AddCommand(likesClearCmd)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
