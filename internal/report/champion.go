package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"evokit/internal/ga"
)

// Champion is the saved form of a run's best individual
type Champion struct {
	Run         int             `json:"run"`
	Generations int             `json:"generations"`
	Objective   float64         `json:"objective"`
	Fitness     float64         `json:"fitness"`
	Rendering   string          `json:"rendering,omitempty"`
	Genome      json.RawMessage `json:"genome"`
}

// SaveChampion saves the best individual of a run to a JSON file
func SaveChampion[G any, F ga.Numeric](path string, s ga.Summary, ind *ga.Individual[G, F]) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	genome, err := json.Marshal(ind.Genome())
	if err != nil {
		return err
	}
	data := Champion{
		Run:         s.Run,
		Generations: s.Generations,
		Objective:   s.Objective,
		Fitness:     s.Fitness,
		Rendering:   s.Individual,
		Genome:      genome,
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}

// LoadChampion loads a champion saved by SaveChampion
func LoadChampion(path string) (*Champion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Champion
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DecodeGenome decodes the saved genome into genes of type G
func DecodeGenome[G any](c *Champion) ([]G, error) {
	var genes []G
	if err := json.Unmarshal(c.Genome, &genes); err != nil {
		return nil, err
	}
	return genes, nil
}
