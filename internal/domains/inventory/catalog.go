package inventory

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/elizhang33/room-reservations-api/config"
)

//go:embed inventory.json
var defaultInventory []byte

// Room is a bookable unit with a fixed seating capacity.
type Room struct {
	Code     string `json:"code" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

// Building groups rooms under a single name. The declared room order is
// the allocation priority, ascending capacity in the default inventory.
type Building struct {
	Name  string `json:"name" validate:"required"`
	Rooms []Room `json:"rooms" validate:"required,min=1"`
}

type catalogFile struct {
	Buildings []Building `json:"buildings"`
}

// Catalog is the read-only universe of allocatable space. It is built
// once at startup and never mutated afterwards.
type Catalog struct {
	buildings []Building
	byName    map[string]int
}

// New validates the raw building list and indexes it for lookups.
// Building names and room codes must be unique, capacities positive.
func New(buildings []Building) (*Catalog, error) {
	if len(buildings) == 0 {
		return nil, errors.New("inventory: no buildings declared")
	}

	byName := make(map[string]int, len(buildings))
	for i, building := range buildings {
		key := normalizeKey(building.Name)
		if key == "" {
			return nil, errors.Errorf("inventory: building %d has an empty name", i)
		}

		if _, exists := byName[key]; exists {
			return nil, errors.Errorf("inventory: duplicate building name %q", building.Name)
		}

		if len(building.Rooms) == 0 {
			return nil, errors.Errorf("inventory: building %q has no rooms", building.Name)
		}

		codes := make(map[string]struct{}, len(building.Rooms))
		for _, room := range building.Rooms {
			if room.Code == "" {
				return nil, errors.Errorf("inventory: building %q has a room with an empty code", building.Name)
			}

			if room.Capacity <= 0 {
				return nil, errors.Errorf("inventory: room %q in %q has non-positive capacity %d", room.Code, building.Name, room.Capacity)
			}

			if _, exists := codes[room.Code]; exists {
				return nil, errors.Errorf("inventory: duplicate room code %q in building %q", room.Code, building.Name)
			}

			codes[room.Code] = struct{}{}
		}

		byName[key] = i
	}

	return &Catalog{buildings: buildings, byName: byName}, nil
}

// Load builds the catalog from the JSON file at path, or from the
// embedded default inventory when path is empty.
func Load(path string) (*Catalog, error) {
	raw := defaultInventory
	if path != "" {
		fileRaw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "inventory: reading catalog file %q", path)
		}

		raw = fileRaw
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrap(err, "inventory: decoding catalog JSON")
	}

	return New(file.Buildings)
}

// FromConfig loads the catalog named in config, falling back to the
// embedded default. Catalog errors are fatal, the search policy is
// meaningless without a valid inventory.
func FromConfig(cfg *config.Config) *Catalog {
	catalog, err := Load(cfg.Inventory.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Inventory.Path).Msg("Failed to load room inventory")
	}

	log.Info().
		Int("buildings", len(catalog.buildings)).
		Msg("Room inventory loaded")

	return catalog
}

// Buildings returns the buildings in declaration order.
func (c *Catalog) Buildings() []Building {
	return c.buildings
}

// BuildingNames returns the building names in declaration order.
func (c *Catalog) BuildingNames() []string {
	names := make([]string, len(c.buildings))
	for i, building := range c.buildings {
		names[i] = building.Name
	}

	return names
}

// Rooms returns the declared room order for a building, or false when
// the building is unknown.
func (c *Catalog) Rooms(building string) ([]Room, bool) {
	index, ok := c.byName[normalizeKey(building)]
	if !ok {
		return nil, false
	}

	return c.buildings[index].Rooms, true
}

// Normalize resolves a raw building name to its canonical catalog name.
// Matching ignores case and surrounding/internal extra whitespace.
func (c *Catalog) Normalize(raw string) (string, bool) {
	index, ok := c.byName[normalizeKey(raw)]
	if !ok {
		return "", false
	}

	return c.buildings[index].Name, true
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
