package cmd

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamusis/skillswap/internal/catalog/snapshot"
	"github.com/kamusis/skillswap/internal/skillswap"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"25", 25, false},
		{"1.5", 1.5, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
	}
	for _, tt := range tests {
		got, err := parseAmount("rate", tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseAmount(%q): err=%v, wantErr=%v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCheckAmount_RejectsInf(t *testing.T) {
	if _, err := checkAmount("max-price", math.Inf(1)); err == nil {
		t.Fatal("expected error for +Inf")
	}
}

func TestFormatPrice(t *testing.T) {
	for in, want := range map[float64]string{37.5: "37.5", 40: "40", 0: "0", 0.1: "0.1"} {
		if got := formatPrice(in); got != want {
			t.Fatalf("formatPrice(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoryIssues(t *testing.T) {
	skills := []skillswap.Skill{
		{Title: "a", Category: "Music"},
		{Title: "b", Category: "music"},
		{Title: "c", Category: "Career "},
		{Title: "d", Category: "All"},
		{Title: "e", Category: "Music"},
	}
	issues := categoryIssues(skills)
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(issues), issues)
	}
	if !strings.Contains(issues[0], `"Music" and "music"`) {
		t.Fatalf("unexpected first issue: %q", issues[0])
	}
	if len(categoryIssues(skills[:1])) != 0 {
		t.Fatal("single clean category should have no issues")
	}
}

func TestInitThenLoadAndExport(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SKILLSWAP_HOME", home)
	t.Setenv("SKILLSWAP_CATALOG", "")

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	// Second run must be a no-op.
	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit (again): %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	skills := c.Skills()
	if len(skills) != len(sampleSkills)+1 {
		t.Fatalf("expected %d skills, got %d", len(sampleSkills)+1, len(skills))
	}

	programming := skillswap.FilterSkillsByCategory(skills, "Programming")
	if len(programming) != 2 || programming[0].Title != "Python Tutoring" || programming[1].Title != "Web Development" {
		t.Fatalf("unexpected programming skills: %v", programming)
	}
	cooking := skillswap.MatchSkillsToUser(skillswap.UserNeeds{Category: "Cooking", MaxPrice: 10}, skills)
	if len(cooking) != 1 || cooking[0].Title != "Sourdough Basics" {
		t.Fatalf("unexpected cooking match: %v", cooking)
	}

	out := filepath.Join(home, "out")
	if _, err := snapshot.Export(context.Background(), c, snapshot.ExportOptions{OutDir: out}); err != nil {
		t.Fatalf("Export: %v", err)
	}
	snap, err := snapshot.Load(out)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Manifest.Count != len(skills) {
		t.Fatalf("snapshot count %d, want %d", snap.Manifest.Count, len(skills))
	}
}

func TestRunImport_MissingSourceFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SKILLSWAP_HOME", home)
	t.Setenv("SKILLSWAP_CATALOG", "")
	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	err := runImport(importCmd, []string{filepath.Join(home, "typo.yaml")})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
