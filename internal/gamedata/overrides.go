package gamedata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/settlement-solver/internal/models"
)

// Overrides replaces parts of the default tables, e.g. for a server running
// a modified ruleset. Absent fields keep their default value.
type Overrides struct {
	Buildings       map[models.BuildingType]BuildingOverride `yaml:"buildings"`
	SettlerCosts    map[models.Tribe]models.Resources        `yaml:"settler_costs"`
	StorageCapacity []int                                    `yaml:"storage_capacity"`
	FieldProduction []int                                    `yaml:"field_production"`
	CPThresholds    []int                                    `yaml:"cp_thresholds"`
	CelebrationCost *models.Resources                        `yaml:"celebration_cost"`

	SettlerTrainingHours *float64 `yaml:"settler_training_hours"`
}

type BuildingOverride struct {
	BaseCost      *models.Resources           `yaml:"base_cost"`
	GrowthFactor  *float64                    `yaml:"growth_factor"`
	CulturePoints *int                        `yaml:"culture_points"`
	Population    *int                        `yaml:"population"`
	MaxLevel      *int                        `yaml:"max_level"`
	Prerequisites map[models.BuildingType]int `yaml:"prerequisites"`
}

// LoadOverrides reads a YAML override file
func LoadOverrides(path string) (*Overrides, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var o Overrides
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &o, nil
}

// LoadTables returns the default tables with the overrides at path applied.
// An empty path returns the defaults.
func LoadTables(path string) (*Tables, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	o, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	if err := t.Apply(o); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Apply merges overrides into t. Unknown building types and tribes are
// rejected so typos don't silently fall back to defaults.
func (t *Tables) Apply(o *Overrides) error {
	if o == nil {
		return nil
	}

	for bt, bo := range o.Buildings {
		b := t.Buildings[bt]
		if b == nil {
			return fmt.Errorf("unknown building type %q", bt)
		}
		if bo.BaseCost != nil {
			b.BaseCost = *bo.BaseCost
		}
		if bo.GrowthFactor != nil {
			if *bo.GrowthFactor < 1 {
				return fmt.Errorf("%s: growth factor %.2f below 1", bt, *bo.GrowthFactor)
			}
			b.GrowthFactor = *bo.GrowthFactor
		}
		if bo.CulturePoints != nil {
			b.CulturePoints = *bo.CulturePoints
		}
		if bo.Population != nil {
			b.Population = *bo.Population
		}
		if bo.MaxLevel != nil {
			if *bo.MaxLevel < 1 {
				return fmt.Errorf("%s: max level must be positive", bt)
			}
			b.MaxLevel = *bo.MaxLevel
		}
		if bo.Prerequisites != nil {
			for req := range bo.Prerequisites {
				if t.Buildings[req] == nil {
					return fmt.Errorf("%s: unknown prerequisite %q", bt, req)
				}
			}
			b.Prerequisites = bo.Prerequisites
		}
	}

	for tribe, cost := range o.SettlerCosts {
		if _, ok := t.SettlerCosts[tribe]; !ok {
			return fmt.Errorf("unknown tribe %q", tribe)
		}
		t.SettlerCosts[tribe] = cost
	}

	if len(o.StorageCapacity) > 0 {
		if err := checkCurve("storage_capacity", o.StorageCapacity); err != nil {
			return err
		}
		t.StorageCapacity = o.StorageCapacity
	}
	if len(o.FieldProduction) > 0 {
		if err := checkCurve("field_production", o.FieldProduction); err != nil {
			return err
		}
		t.FieldProduction = o.FieldProduction
	}
	if len(o.CPThresholds) > 0 {
		if err := checkCurve("cp_thresholds", o.CPThresholds); err != nil {
			return err
		}
		t.CPThresholds = o.CPThresholds
	}
	if o.CelebrationCost != nil {
		t.CelebrationCost = *o.CelebrationCost
	}
	if o.SettlerTrainingHours != nil {
		t.SettlerTrainingHours = *o.SettlerTrainingHours
	}
	return nil
}

// checkCurve rejects curves that decrease with level
func checkCurve(name string, curve []int) error {
	for i := 1; i < len(curve); i++ {
		if curve[i] < curve[i-1] {
			return fmt.Errorf("%s: value at level %d (%d) is below level %d (%d)", name, i, curve[i], i-1, curve[i-1])
		}
	}
	return nil
}
