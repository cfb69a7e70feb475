package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"whereabouts/internal/place"
)

type placeRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Category    int     `json:"category"`
}

// NewPlacesCommand creates the places command.
func NewPlacesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "places [dataset]",
		Short: "List the places in a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaces(rootOpts, args, cmd)
		},
	}
}

func runPlaces(opts *RootOptions, args []string, cmd *cobra.Command) error {
	ds, _, err := loadDataset(opts, args)
	if err != nil {
		return err
	}

	places := place.FromDataset(ds)
	rows := make([]placeRow, 0, len(places))
	for _, p := range places {
		rows = append(rows, placeRow{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Latitude:    p.Coords.Latitude,
			Longitude:   p.Coords.Longitude,
			Category:    p.Category,
		})
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(w, rows)
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 places)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Latitude", "Longitude", "Type", "Description"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Name, fmt.Sprintf("%.4f", r.Latitude), fmt.Sprintf("%.4f", r.Longitude), r.Category, r.Description})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d places)\n", len(rows))
	return nil
}
