package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"whereabouts/internal/favorites"
	"whereabouts/internal/prefs/sqlite"
)

type favoritesOptions struct {
	root   *RootOptions
	dbPath string
}

type favoriteStatus struct {
	Name     string `json:"name"`
	Favorite bool   `json:"favorite"`
}

// NewFavoritesCommand creates the favorites command and its subcommands.
func NewFavoritesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &favoritesOptions{root: rootOpts}

	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage the favorites stored in the preference database",
	}
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "preference database (default: prefs.path from config)")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorites in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd, func(ctx context.Context, store *favorites.Store) error {
				names, err := store.List(ctx)
				if err != nil {
					return err
				}
				if opts.root.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), names)
				}
				for _, name := range names {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(opts.mutation("add", "Mark a place name as favorite",
		func(ctx context.Context, store *favorites.Store, name string) (bool, error) {
			return true, store.Add(ctx, name)
		}))
	cmd.AddCommand(opts.mutation("remove", "Unmark a place name",
		func(ctx context.Context, store *favorites.Store, name string) (bool, error) {
			return false, store.Remove(ctx, name)
		}))
	cmd.AddCommand(opts.mutation("toggle", "Flip a place name's favorite state",
		func(ctx context.Context, store *favorites.Store, name string) (bool, error) {
			return store.Toggle(ctx, name)
		}))

	return cmd
}

func (o *favoritesOptions) mutation(use, short string, fn func(context.Context, *favorites.Store, string) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withStore(cmd, func(ctx context.Context, store *favorites.Store) error {
				favorite, err := fn(ctx, store, args[0])
				if err != nil {
					return err
				}
				status := favoriteStatus{Name: args[0], Favorite: favorite}
				if o.root.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), status)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: favorite=%t\n", status.Name, status.Favorite)
				return nil
			})
		},
	}
}

func (o *favoritesOptions) withStore(cmd *cobra.Command, fn func(context.Context, *favorites.Store) error) error {
	cfg, err := o.root.loadConfig()
	if err != nil {
		return err
	}
	path := o.dbPath
	if path == "" {
		path = cfg.Prefs.Path
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return fn(cmd.Context(), favorites.NewStore(db, cfg.NewStderrLogger()))
}
