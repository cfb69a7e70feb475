package place

import "whereabouts/internal/dataset"

// Catalog is the ordered, read-only place list for one loaded dataset
type Catalog struct {
	places []Place
	byID   map[string]int
	region dataset.RegionSpec
}

// NewCatalog builds the catalog for ds
func NewCatalog(ds dataset.Dataset) *Catalog {
	places := FromDataset(ds)
	byID := make(map[string]int, len(places))
	for i, p := range places {
		byID[p.ID] = i
	}
	return &Catalog{
		places: places,
		byID:   byID,
		region: ds.Region,
	}
}

// Places returns a copy of the place list in dataset order
func (c *Catalog) Places() []Place {
	out := make([]Place, len(c.places))
	copy(out, c.places)
	return out
}

// Region returns the dataset's initial viewport
func (c *Catalog) Region() dataset.RegionSpec {
	return c.region
}

func (c *Catalog) Len() int {
	return len(c.places)
}

// ByID looks up a place by its ID
func (c *Catalog) ByID(id string) (Place, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Place{}, false
	}
	return c.places[i], true
}

// ByName returns the first place with the given name
func (c *Catalog) ByName(name string) (Place, bool) {
	for _, p := range c.places {
		if p.Name == name {
			return p, true
		}
	}
	return Place{}, false
}
