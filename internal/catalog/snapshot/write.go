package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Write writes snapshot artifacts to dir.
func Write(dir string, manifest Manifest, rows []Row) error {
	if manifest.SkillsFile == "" {
		manifest.SkillsFile = defaultSkillsFile
	}
	if manifest.CreatedAt == "" {
		manifest.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	manifest.Count = len(rows)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create snapshot dir %s: %w", dir, err)
	}

	// manifest
	mb, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFile), mb, 0o644); err != nil {
		return fmt.Errorf("cannot write manifest: %w", err)
	}

	// skills jsonl
	sf, err := os.Create(filepath.Join(dir, manifest.SkillsFile))
	if err != nil {
		return fmt.Errorf("cannot create skills file: %w", err)
	}
	bw := bufio.NewWriter(sf)
	enc := json.NewEncoder(bw)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			_ = sf.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		_ = sf.Close()
		return err
	}
	return sf.Close()
}
