package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"whereabouts/internal/dataset"
	"whereabouts/internal/types"
)

// ValidationResult summarizes a dataset that loaded successfully.
type ValidationResult struct {
	Source     string       `json:"source"`
	Places     int          `json:"places"`
	Region     types.Region `json:"region"`
	Duplicates []string     `json:"duplicates"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [dataset]",
		Short: "Check that a dataset loads",
		Long: `Load a place dataset (.plist, .yaml, .yml or .json) and report its
place count, initial region, and any duplicate place names.

Without an argument the configured dataset is used, or the bundled one when
none is configured. Exits non-zero when the dataset cannot be loaded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, args []string, cmd *cobra.Command) error {
	ds, source, err := loadDataset(opts, args)
	if err != nil {
		return err
	}

	result := ValidationResult{
		Source:     source,
		Places:     len(ds.Places),
		Region:     ds.Region.Region(),
		Duplicates: dataset.Duplicates(ds),
	}
	if result.Duplicates == nil {
		result.Duplicates = []string{}
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(w, result)
	}

	_, _ = fmt.Fprintf(w, "✓ %s\n", source)
	_, _ = fmt.Fprintf(w, "  places: %d\n", result.Places)
	_, _ = fmt.Fprintf(w, "  region: center (%.4f, %.4f) span %.4f x %.4f\n",
		ds.Region.CenterLatitude, ds.Region.CenterLongitude,
		ds.Region.LatitudeSpan, ds.Region.LongitudeSpan,
	)
	if len(result.Duplicates) > 0 {
		_, _ = fmt.Fprintf(w, "  warning: duplicate names share favorite state: %s\n",
			strings.Join(result.Duplicates, ", "))
	}
	return nil
}
