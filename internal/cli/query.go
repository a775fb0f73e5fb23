package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"faqdesk/internal/search"
)

type queryOptions struct {
	category string
	limit    int
	answers  bool
}

func newQueryCmd(root *rootOptions) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Print the ranked FAQs for a search",
		Long: "Run a search without the browser. The query is committed immediately\n" +
			"instead of waiting for the typing pause.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, root, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", search.AllCategories, "only search one category")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "print at most n results (0 for all)")
	cmd.Flags().BoolVarP(&opts.answers, "answers", "a", false, "print answers under each question")
	return cmd
}

func runQuery(cmd *cobra.Command, root *rootOptions, opts *queryOptions, text string) error {
	defer setupLogging()()

	cfg, err := root.loadConfig(nil)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(root.resolveCatalogPath(cfg))
	if err != nil {
		return err
	}

	engine := search.New(cat.Entries,
		search.WithMinSearchLength(cfg.Search.MinSearchLength),
		search.WithCacheSize(0),
	)
	defer engine.Close()

	if opts.category != search.AllCategories {
		if !containsString(engine.View().Categories, opts.category) {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, opts.category)
		}
		engine.SetSelectedCategory(opts.category)
	}

	engine.SetQuery(text)
	engine.Commit()

	view := engine.View()
	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatView(view, opts.limit, opts.answers))

	if !view.HasResults {
		if suggestions := engine.Suggestions(3); len(suggestions) > 0 {
			fmt.Fprintf(out, "Did you mean: %s\n", strings.Join(suggestions, ", "))
		}
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
