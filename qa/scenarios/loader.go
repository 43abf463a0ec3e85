package scenarios

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/productionplan/core/model"
)

// Expected describes the outcome of a scenario. Error is empty for a
// successful plan or "missing_data" for a rejected request.
type Expected struct {
	Plan        []model.PlanEntry `yaml:"plan"`
	Excess      float64           `yaml:"excess"`
	Unserved    float64           `yaml:"unserved"`
	Corrections int               `yaml:"corrections"`
	Error       string            `yaml:"error,omitempty"`
}

type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Correction  string        `yaml:"correction,omitempty"`
	Payload     model.Payload `yaml:"payload"`
	Expected    Expected      `yaml:"expected"`
}

// Load reads one scenario file. A scenario without a name is named after its
// file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &sc, nil
}

// LoadAll reads every file matching pattern, sorted by path.
func LoadAll(pattern string) ([]*Scenario, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	out := make([]*Scenario, 0, len(files))
	for _, f := range files {
		sc, err := Load(f)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}
