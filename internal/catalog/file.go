package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kamusis/skillswap/internal/skillswap"
)

// fileDoc is the on-disk shape of catalog.yaml.
type fileDoc struct {
	Skills []skillswap.Skill `yaml:"skills"`
}

// LoadFile reads a YAML catalog file. Row order is preserved; a missing file
// yields an empty slice.
func LoadFile(path string) ([]skillswap.Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []skillswap.Skill{}, nil
		}
		return nil, fmt.Errorf("cannot read catalog %s: %w", path, err)
	}
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	for i, s := range doc.Skills {
		if err := Validate(s); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i+1, err)
		}
	}
	if doc.Skills == nil {
		return []skillswap.Skill{}, nil
	}
	return doc.Skills, nil
}

// SaveFile writes skills to path as a YAML catalog.
func SaveFile(path string, skills []skillswap.Skill) error {
	data, err := yaml.Marshal(fileDoc{Skills: skills})
	if err != nil {
		return fmt.Errorf("cannot marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write catalog %s: %w", path, err)
	}
	return nil
}
