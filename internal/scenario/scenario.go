// Package scenario loads dungeon scenarios from YAML. A scenario is a level
// layout, the things lying in it, its sensors, the starting party and the
// mirrors that hold candidate champions.
package scenario

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed scenario.schema.json
var schemaJSON []byte

const schemaURL = "scenario.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("scenario: schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("scenario: schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Scenario is a decoded scenario file.
type Scenario struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	MapIndex    int          `yaml:"map_index"`
	Layout      []string     `yaml:"layout"`
	Party       PartySpec    `yaml:"party"`
	Things      []ThingSpec  `yaml:"things"`
	Sensors     []SensorSpec `yaml:"sensors"`
	Mirrors     []MirrorSpec `yaml:"mirrors"`
}

// PartySpec is the starting party.
type PartySpec struct {
	X         int            `yaml:"x"`
	Y         int            `yaml:"y"`
	Dir       string         `yaml:"dir"`
	Leader    *int           `yaml:"leader"` // Defaults to the first champion
	Champions []ChampionSpec `yaml:"champions"`
}

// ChampionSpec describes a champion in the party or behind a mirror.
type ChampionSpec struct {
	Name   string         `yaml:"name"`
	Title  string         `yaml:"title"`
	Health int            `yaml:"health"`
	Stats  map[string]int `yaml:"stats"`
	Skills []int          `yaml:"skills"`
	Items  []ThingSpec    `yaml:"items"`
}

// ThingSpec is an object on the floor (X, Y, Cell) or in a champion slot
// (Slot). Fields that do not apply to Kind are ignored.
type ThingSpec struct {
	X          int    `yaml:"x"`
	Y          int    `yaml:"y"`
	Cell       int    `yaml:"cell"`
	Slot       int    `yaml:"slot"`
	Kind       string `yaml:"kind"`
	Type       int    `yaml:"type"`
	Charges    int    `yaml:"charges"`
	Power      int    `yaml:"power"`
	Closed     bool   `yaml:"closed"`
	Cells      []int  `yaml:"cells"`
	Levitating bool   `yaml:"levitating"`
}

// SensorSpec is a sensor and the door square it targets. Face is the wall
// side a click sensor sits on.
type SensorSpec struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Face   string `yaml:"face"`
	Type   string `yaml:"type"`
	Icon   int    `yaml:"icon"`
	Effect string `yaml:"effect"`
	Target [2]int `yaml:"target"`
}

// MirrorSpec is a wall square holding a candidate champion. Face is the
// side the party clicks; the champion's items lie on that side.
type MirrorSpec struct {
	X        int          `yaml:"x"`
	Y        int          `yaml:"y"`
	Face     string       `yaml:"face"`
	Champion ChampionSpec `yaml:"champion"`
}

// Parse validates data against the scenario schema, decodes it and checks
// it against its own layout.
func Parse(data []byte) (*Scenario, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if _, err := s.Build(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks a YAML document against the scenario schema only.
func Validate(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("scenario: decode: %w", err)
	}
	// The validator wants JSON values: string-keyed maps and float64 numbers.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("scenario: decode: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("scenario: decode: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	return nil
}
