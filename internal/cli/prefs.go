package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"whereabouts/internal/prefs/sqlite"
)

type prefEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewPrefsCommand creates the prefs command, a read-only view of the
// preference database.
func NewPrefsCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect the preference database",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "preference database (default: prefs.path from config)")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored preference keys and their raw values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefsList(rootOpts, dbPath, cmd)
		},
	})

	return cmd
}

func runPrefsList(opts *RootOptions, dbPath string, cmd *cobra.Command) error {
	if dbPath == "" {
		cfg, err := opts.loadConfig()
		if err != nil {
			return err
		}
		dbPath = cfg.Prefs.Path
	}

	db, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ctx := cmd.Context()
	keys, err := db.Keys(ctx)
	if err != nil {
		return err
	}

	entries := make([]prefEntry, 0, len(keys))
	for _, key := range keys {
		value, ok, err := db.Get(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		entries = append(entries, prefEntry{Key: key, Value: string(value)})
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(w, entries)
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "(0 keys)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "Value"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Key, e.Value})
	}
	t.Render()
	return nil
}
