// Package cli implements placesctl, the operator tool for place datasets and
// the favorites database.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"whereabouts/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Format     string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for placesctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "placesctl",
		Short: "Inspect place datasets and manage favorites",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // main prints the error
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: ./config.yaml, ./config/config.yaml, $HOME/.whereabouts/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewPlacesCommand(opts))
	cmd.AddCommand(NewFavoritesCommand(opts))
	cmd.AddCommand(NewPrefsCommand(opts))

	return cmd
}

func (o *RootOptions) loadConfig() (*config.Config, error) {
	return config.LoadFrom(o.ConfigFile)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
