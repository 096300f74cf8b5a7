package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads a snapshot from dir containing manifest + skills.
func Load(dir string) (*Snapshot, error) {
	manifestPath := filepath.Join(dir, manifestFile)
	b, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %w", manifestPath, err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest JSON %s: %w", manifestPath, err)
	}
	if m.SkillsFile == "" {
		m.SkillsFile = defaultSkillsFile
	}

	rows, err := loadRows(filepath.Join(dir, m.SkillsFile))
	if err != nil {
		return nil, err
	}
	if len(rows) != m.Count {
		return nil, fmt.Errorf("snapshot row count mismatch: got %d want %d", len(rows), m.Count)
	}
	return &Snapshot{Manifest: m, Rows: rows}, nil
}

func loadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open skills file %s: %w", path, err)
	}
	defer f.Close()

	out := []Row{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r Row
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("invalid skills JSONL %s: %w", path, err)
		}
		out = append(out, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read skills file %s: %w", path, err)
	}
	return out, nil
}
