// Package snapshot exports a catalog to a directory of JSON artifacts that
// other tools can consume, and reads such snapshots back.
package snapshot

// Manifest describes a snapshot and how to interpret it.
type Manifest struct {
	SnapshotVersion int    `json:"snapshot_version"`
	CreatedAt       string `json:"created_at"`
	Source          string `json:"source"`
	Count           int    `json:"count"`
	SkillsFile      string `json:"skills_file"`
}

// Row is one skill line in skills.jsonl.
type Row struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description,omitempty"`
	Hash        string  `json:"hash"`
}

// Snapshot is a loaded snapshot.
type Snapshot struct {
	Manifest Manifest
	Rows     []Row
}

const (
	manifestFile      = "manifest.json"
	defaultSkillsFile = "skills.jsonl"
)
