package dataset

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

// BundledName is the file name of the dataset embedded in the binary
const BundledName = "bundle/Data.plist"

//go:embed bundle/Data.plist
var bundle embed.FS

// wireDataset mirrors the resource layout: places plus a four-number region
// array of center latitude, center longitude, latitude span, longitude span.
// Pointer fields tell a missing key apart from a zero value.
type wireDataset struct {
	Places *[]wirePlace `plist:"places" yaml:"places" json:"places"`
	Region []number     `plist:"region" yaml:"region" json:"region"`
}

type wirePlace struct {
	Name        *string `plist:"name" yaml:"name" json:"name"`
	Description *string `plist:"description" yaml:"description" json:"description"`
	Lat         *number `plist:"lat" yaml:"lat" json:"lat"`
	Long        *number `plist:"long" yaml:"long" json:"long"`
	Type        *int    `plist:"type" yaml:"type" json:"type"`
}

// number is a float that also accepts property list integers
type number float64

func (n *number) UnmarshalPlist(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		*n = number(x)
	case float32:
		*n = number(x)
	case int64:
		*n = number(x)
	case uint64:
		*n = number(x)
	default:
		return fmt.Errorf("expected a number, got %T", v)
	}
	return nil
}

// Bundled loads the dataset embedded in the binary
func Bundled() (Dataset, error) {
	return Load(bundle, BundledName)
}

// Load reads and decodes the named dataset resource from fsys
func Load(fsys fs.FS, name string) (Dataset, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Dataset{}, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return Dataset{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return Decode(path.Ext(name), data)
}

// LoadFile reads and decodes a dataset from the local filesystem
func LoadFile(filePath string) (Dataset, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Dataset{}, fmt.Errorf("%w: %s", ErrResourceNotFound, filePath)
		}
		return Dataset{}, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return Decode(path.Ext(filePath), data)
}

// LoadOrDefault loads the dataset at filePath, or the bundled dataset when
// filePath is empty. Any failure is logged and degrades to Empty.
func LoadOrDefault(filePath string, logger *slog.Logger) Dataset {
	var (
		ds  Dataset
		err error
	)
	if filePath == "" {
		ds, err = Bundled()
	} else {
		ds, err = LoadFile(filePath)
	}
	if err != nil {
		logger.Error("failed to load dataset, using default region and no places",
			"path", filePath,
			"error", err,
		)
		return Empty()
	}

	if dups := Duplicates(ds); len(dups) > 0 {
		logger.Warn("dataset contains duplicate place names", "names", dups)
	}
	logger.Info("dataset loaded", "path", filePath, "places", len(ds.Places))
	return ds
}

// Decode parses data in the format named by ext (".plist", ".yaml", ".yml" or ".json")
func Decode(ext string, data []byte) (Dataset, error) {
	var wire wireDataset
	switch strings.ToLower(ext) {
	case ".plist":
		if _, err := plist.Unmarshal(data, &wire); err != nil {
			return Dataset{}, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &wire); err != nil {
			return Dataset{}, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &wire); err != nil {
			return Dataset{}, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		return Dataset{}, fmt.Errorf("%w: unsupported format %q", ErrDecode, ext)
	}
	return wire.toDataset()
}

func (w wireDataset) toDataset() (Dataset, error) {
	if w.Places == nil {
		return Dataset{}, fmt.Errorf("%w: missing places", ErrDecode)
	}
	if len(w.Region) != 4 {
		return Dataset{}, fmt.Errorf("%w: region must have 4 numbers, got %d", ErrDecode, len(w.Region))
	}

	region := RegionSpec{
		CenterLatitude:  float64(w.Region[0]),
		CenterLongitude: float64(w.Region[1]),
		LatitudeSpan:    float64(w.Region[2]),
		LongitudeSpan:   float64(w.Region[3]),
	}
	if !region.Region().Center.Valid() {
		return Dataset{}, fmt.Errorf("%w: region center (%f, %f) out of range",
			ErrDecode, region.CenterLatitude, region.CenterLongitude)
	}
	if region.LatitudeSpan <= 0 || region.LongitudeSpan <= 0 {
		return Dataset{}, fmt.Errorf("%w: region span must be positive, got %f x %f",
			ErrDecode, region.LatitudeSpan, region.LongitudeSpan)
	}

	places := make([]PlaceRecord, 0, len(*w.Places))
	for i, p := range *w.Places {
		if missing := p.missing(); len(missing) > 0 {
			return Dataset{}, fmt.Errorf("%w: place %d missing %s", ErrDecode, i, strings.Join(missing, ", "))
		}
		places = append(places, PlaceRecord{
			Name:        *p.Name,
			Description: *p.Description,
			Latitude:    float64(*p.Lat),
			Longitude:   float64(*p.Long),
			Category:    *p.Type,
		})
	}

	return Dataset{Places: places, Region: region}, nil
}

func (p wirePlace) missing() []string {
	var keys []string
	if p.Name == nil {
		keys = append(keys, "name")
	}
	if p.Description == nil {
		keys = append(keys, "description")
	}
	if p.Lat == nil {
		keys = append(keys, "lat")
	}
	if p.Long == nil {
		keys = append(keys, "long")
	}
	if p.Type == nil {
		keys = append(keys, "type")
	}
	return keys
}
