package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"faqdesk/internal/search"
)

func newCategoriesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories with their FAQ counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer setupLogging()()

			cfg, err := root.loadConfig(nil)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(root.resolveCatalogPath(cfg))
			if err != nil {
				return err
			}

			engine := search.New(cat.Entries, search.WithCacheSize(0))
			defer engine.Close()

			out := cmd.OutOrStdout()
			for _, name := range engine.View().Categories {
				engine.SetSelectedCategory(name)
				fmt.Fprintf(out, "%-16s %d\n", name, engine.View().ResultCount)
			}
			return nil
		},
	}
}
