package cli

import (
	"fmt"

	"whereabouts/internal/dataset"
)

// loadDataset loads the dataset at path, falling back to the configured
// dataset and then to the bundled one. Errors are returned, not defaulted.
func loadDataset(opts *RootOptions, args []string) (dataset.Dataset, string, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		cfg, err := opts.loadConfig()
		if err != nil {
			return dataset.Dataset{}, "", err
		}
		path = cfg.Dataset.Path
	}

	if path == "" {
		ds, err := dataset.Bundled()
		if err != nil {
			return dataset.Dataset{}, "", fmt.Errorf("failed to load bundled dataset: %w", err)
		}
		return ds, "bundled:" + dataset.BundledName, nil
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return dataset.Dataset{}, "", err
	}
	return ds, path, nil
}
