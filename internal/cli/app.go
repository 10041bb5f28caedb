// Package cli implements the menufilter command using Cobra.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/logger"
	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/menu"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	allergens       []string
	mode            string
	category        string
	search          string
	format          string
	inferCategories bool
	verbose         bool
}

// NewRootCommand builds the menufilter command. Streams are injected so the
// command can run against buffers in tests.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "menufilter [menu.json|-]",
		Short: "Filter a menu by allergens, category and text",
		Long: `menufilter reads a menu document (a JSON array of dishes, or an object with
"items") and prints the dishes left after filtering.

SAFE mode hides dishes containing any selected allergen.
CONTAINS mode shows only dishes containing at least one selected allergen.

With no file, or "-", the menu is read from stdin.`,
		Example: `  menufilter menu.json --allergens MI,GL
  menufilter menu.json -a MI --mode contains --format json
  cat menu.json | menufilter --category Mains --search duck`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd.Context(), opts, path, stdin, stdout, stderr)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringSliceVarP(&opts.allergens, "allergens", "a", nil, "allergen codes to filter on (comma separated or repeated)")
	f.StringVarP(&opts.mode, "mode", "m", "safe", "filter mode: safe or contains")
	f.StringVarP(&opts.category, "category", "c", "", "only show dishes in this category (exact match)")
	f.StringVarP(&opts.search, "search", "s", "", "case-insensitive text to find in name or description")
	f.StringVarP(&opts.format, "format", "f", "text", "output format: text, json or toon")
	f.BoolVar(&opts.inferCategories, "infer-categories", false, "guess categories from dish names when missing")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log loading details to stderr")

	return cmd
}

func run(ctx context.Context, opts *options, path string, stdin io.Reader, stdout, stderr io.Writer) error {
	formatter, err := NewFormatter(opts.format)
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if opts.verbose {
		log = logger.New(logger.Config{Level: "debug", Format: logger.CONSOLE, Output: zapcore.AddSync(stderr)})
	}

	var rules []menu.CategoryRule
	if opts.inferCategories {
		rules = menu.DefaultCategoryRules
	}

	if ctx == nil {
		ctx = context.Background()
	}

	service := menu.NewService(sourceFor(path, stdin), rules, log)
	if err := service.Load(ctx); err != nil {
		// a broken menu is shown as an empty one
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}

	sel := menu.NewSelection(opts.allergens...).
		WithMode(menu.ParseMode(opts.mode)).
		WithCategory(opts.category).
		WithSearch(opts.search)

	return formatter.FormatResult(stdout, service.Filter(sel), sel)
}

func sourceFor(path string, stdin io.Reader) menu.Source {
	if path == "-" {
		return &readerSource{r: stdin}
	}
	return menu.NewFileSource(path)
}

// readerSource reads a menu document from a stream once.
type readerSource struct {
	r io.Reader
}

func (s *readerSource) Load(ctx context.Context) ([]menu.RawDish, error) {
	if s.r == nil {
		s.r = os.Stdin
	}
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("read menu from stdin: %w", err)
	}
	return menu.ParseRawMenu(data)
}
