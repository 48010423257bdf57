// Package cmd wires the combox CLI: flag parsing, configuration and item
// loading, store selection, and the Bubble Tea program hosting the widget.
package cmd

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/combox/internal/config"
	"github.com/oakwood-commons/combox/internal/expr"
	"github.com/oakwood-commons/combox/internal/itemdb"
	"github.com/oakwood-commons/combox/internal/items"
	"github.com/oakwood-commons/combox/internal/tui"
	"github.com/oakwood-commons/combox/pkg/logger"
	"github.com/oakwood-commons/combox/pkg/settings"
	"github.com/oakwood-commons/combox/pkg/store"
)

// loadPageSize bounds how many database records are pulled into the
// widget's resident collection.
const loadPageSize = 10000

var (
	flagConfig     string
	flagDB         string
	flagFilter     string
	flagMulti      bool
	flagNoColor    bool
	flagPageSize   int
	flagMaxVisible int
	flagLogLevel   int8
	flagVersion    bool
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [item-file]",
	Short: "Interactive combobox over a YAML item collection",
	Long: `combox runs a terminal combobox/autocomplete widget over a YAML item
collection. Items are filtered as you type; arrows navigate, enter
selects, escape closes the list. The committed selection is printed on
exit, one display value per line.

Item files are YAML lists of records with an id, a display text, and any
further fields you want available to --filter expressions:

  - id: ams
    display: Amsterdam
    population: 821752`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagConfig, "config", "c", "", "config file path (default ~/.config/combox/config.yaml)")
	flags.StringVar(&flagDB, "db", "", "SQLite item database; loads the item file into it when both are given")
	flags.StringVar(&flagFilter, "filter", "", "CEL predicate applied to records before they reach the widget, e.g. 'item.population > 100000'")
	flags.BoolVarP(&flagMulti, "multi", "m", false, "multi-select mode with chips")
	flags.BoolVar(&flagNoColor, "no-color", false, "disable styled output")
	flags.IntVar(&flagPageSize, "page-size", 0, "store search page size (0 uses the config value)")
	flags.IntVar(&flagMaxVisible, "max-visible", 0, "dropdown height in rows (0 uses the config value)")
	flags.Int8Var(&flagLogLevel, "log-level", 0, "minimum zap log level; negative enables trace verbosity")
	flags.BoolVarP(&flagVersion, "version", "v", false, "print version information and exit")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if flagVersion {
		v := settings.VersionInformation
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
			settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
		return nil
	}

	lgr := logger.Get(flagLogLevel)
	ctx := logger.WithLogger(cmd.Context(), lgr)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlagOverrides(&cfg)

	records, err := loadRecords(ctx, args)
	if err != nil {
		return err
	}
	if flagFilter != "" {
		filter, err := expr.NewFilter(flagFilter)
		if err != nil {
			return err
		}
		warnUnknownFilterFields(lgr, flagFilter, records)
		before := len(records)
		records = filter.FilterRecords(records)
		lgr.V(1).Info("applied record filter", "expression", flagFilter, "before", before, "after", len(records))
	}
	if len(records) == 0 {
		return fmt.Errorf("no items to select from")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%s needs an interactive terminal; pipe item files through --db to preload instead", settings.CliBinaryName)
	}

	model := tui.New(records, cfg, *lgr)
	prog := tea.NewProgram(model)
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("run widget: %w", err)
	}

	if m, ok := final.(*tui.Model); ok && m.Done {
		printSelection(cmd, m)
	}
	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if flagMulti {
		cfg.Multi = true
	}
	if flagNoColor {
		cfg.NoColor = true
	}
	if flagPageSize > 0 {
		cfg.PageSize = flagPageSize
	}
	if flagMaxVisible > 0 {
		cfg.MaxVisible = flagMaxVisible
	}
}

// loadRecords resolves the item collection from the positional file, the
// SQLite database, or both (file contents are loaded into the database
// first so later runs can drop the file argument).
func loadRecords(ctx context.Context, args []string) ([]items.Record, error) {
	var fileRecords []items.Record
	if len(args) == 1 {
		recs, err := items.Load(args[0])
		if err != nil {
			return nil, err
		}
		fileRecords = recs
	}

	if flagDB == "" {
		if fileRecords == nil {
			return nil, fmt.Errorf("an item file or --db is required")
		}
		return fileRecords, nil
	}

	db, err := itemdb.Open(ctx, flagDB)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if fileRecords != nil {
		if err := db.Load(ctx, fileRecords); err != nil {
			return nil, err
		}
	}
	res, err := db.Search(ctx, "", store.Page{Size: loadPageSize})
	if err != nil {
		return nil, err
	}
	if res.HasMore {
		logger.FromContext(ctx).Info("item database is larger than one page; only the first page is loaded",
			"loaded", len(res.Items), "total", res.Total)
	}
	return res.Items, nil
}

// warnUnknownFilterFields logs the filter fields that no loaded record
// carries; a typoed field silently filters everything out otherwise.
func warnUnknownFilterFields(lgr *logr.Logger, expression string, records []items.Record) {
	fields, err := expr.ReferencedFields(expression)
	if err != nil {
		return
	}
	known := map[string]bool{"id": true, "display": true}
	for _, rec := range records {
		for f := range rec.Fields {
			known[f] = true
		}
	}
	for _, f := range fields {
		if !known[f] {
			lgr.Info("filter references a field no item carries", "field", f, "expression", expression)
		}
	}
}

func printSelection(cmd *cobra.Command, m *tui.Model) {
	for _, rec := range m.Selection() {
		fmt.Fprintln(cmd.OutOrStdout(), rec.Display)
	}
}
