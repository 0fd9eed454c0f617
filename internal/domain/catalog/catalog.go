package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"slot-booking/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type TimeSlot struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type Package struct {
	Name     string   `yaml:"name"`
	Price    int64    `yaml:"price"`
	Popular  bool     `yaml:"popular"`
	Features []string `yaml:"features"`
}

type Location struct {
	Name     string    `yaml:"name"`
	Contact  string    `yaml:"contact"`
	Address  string    `yaml:"address"`
	Packages []Package `yaml:"packages"`
}

func (l Location) Package(tier string) (Package, bool) {
	for _, p := range l.Packages {
		if p.Name == tier {
			return p, true
		}
	}
	return Package{}, false
}

// Catalog is immutable reference data. Accessors return copies.
type Catalog struct {
	locations []Location
	timeSlots []TimeSlot
}

type document struct {
	TimeSlots []TimeSlot `yaml:"time_slots"`
	Locations []Location `yaml:"locations"`
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read catalog %s", path)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errs.Wrap(err, "parse catalog")
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	return &Catalog{locations: doc.Locations, timeSlots: doc.TimeSlots}, nil
}

func validate(doc document) error {
	if len(doc.Locations) == 0 {
		return errs.New("catalog has no locations")
	}
	if len(doc.TimeSlots) == 0 {
		return errs.New("catalog has no time slots")
	}

	seenSlots := make(map[string]struct{}, len(doc.TimeSlots))
	for _, s := range doc.TimeSlots {
		if s.ID == "" || s.Label == "" {
			return errs.New("time slot requires id and label")
		}
		if _, dup := seenSlots[s.ID]; dup {
			return fmt.Errorf("duplicate time slot %q", s.ID)
		}
		seenSlots[s.ID] = struct{}{}
	}

	seenLocations := make(map[string]struct{}, len(doc.Locations))
	for _, l := range doc.Locations {
		if l.Name == "" {
			return errs.New("location requires a name")
		}
		if _, dup := seenLocations[l.Name]; dup {
			return fmt.Errorf("duplicate location %q", l.Name)
		}
		seenLocations[l.Name] = struct{}{}

		if len(l.Packages) == 0 {
			return fmt.Errorf("location %q has no packages", l.Name)
		}
		for _, p := range l.Packages {
			if p.Name == "" || p.Price <= 0 {
				return fmt.Errorf("location %q has an invalid package", l.Name)
			}
		}
	}
	return nil
}

func (c *Catalog) Locations() []Location {
	out := make([]Location, len(c.locations))
	for i, l := range c.locations {
		out[i] = cloneLocation(l)
	}
	return out
}

func (c *Catalog) Location(name string) (Location, error) {
	for _, l := range c.locations {
		if l.Name == name {
			return cloneLocation(l), nil
		}
	}
	return Location{}, errs.Mark(fmt.Errorf("location %q", name), errs.ErrLocationNotFound)
}

func (c *Catalog) Package(location, tier string) (Package, error) {
	loc, err := c.Location(location)
	if err != nil {
		return Package{}, err
	}
	p, ok := loc.Package(tier)
	if !ok {
		return Package{}, errs.Mark(fmt.Errorf("package %q at %q", tier, location), errs.ErrPackageNotFound)
	}
	return p, nil
}

func (c *Catalog) Slot(id string) (TimeSlot, error) {
	for _, s := range c.timeSlots {
		if s.ID == id {
			return s, nil
		}
	}
	return TimeSlot{}, errs.Mark(fmt.Errorf("slot %q", id), errs.ErrSlotNotFound)
}

func (c *Catalog) Slots() []TimeSlot {
	return slices.Clone(c.timeSlots)
}

func cloneLocation(l Location) Location {
	pkgs := make([]Package, len(l.Packages))
	for i, p := range l.Packages {
		p.Features = slices.Clone(p.Features)
		pkgs[i] = p
	}
	l.Packages = pkgs
	return l
}
