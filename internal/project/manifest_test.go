package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[package]
name = "demo"
version = "0.2.0"

[build]
std = 2
sources = ["src", "main.lc"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Package.Name != "demo" || cfg.Package.Version != "0.2.0" {
		t.Errorf("package = %+v", cfg.Package)
	}
	if cfg.Build.Std != 2 {
		t.Errorf("std = %d, want 2", cfg.Build.Std)
	}
	if len(cfg.Build.Sources) != 2 || cfg.Build.Sources[0] != "src" {
		t.Errorf("sources = %v", cfg.Build.Sources)
	}
}

func TestLoadDefaultsStd(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[package]
name = "demo"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Build.Std != 1 {
		t.Errorf("std = %d, want default 1", cfg.Build.Std)
	}
	if cfg.Build.Sources != nil {
		t.Errorf("sources = %v, want none", cfg.Build.Sources)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"no package section", `[build]
std = 1
`, ErrPackageSectionMissing},
		{"blank name", `[package]
name = "  "
`, ErrPackageNameMissing},
		{"bad std", `[package]
name = "demo"

[build]
std = 3
`, ErrBadStd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.content)
			_, err := Load(path)
			if !errors.Is(err, tc.want) {
				t.Errorf("Load error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package\nname =")
	if _, err := Load(path); err == nil {
		t.Fatal("expected a TOML parse error")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find = %v, %v", ok, err)
	}
	if path != filepath.Join(root, ManifestName) {
		t.Errorf("path = %s", path)
	}
}

func TestFindMissing(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find errored: %v", err)
	}
	if ok {
		t.Error("found a manifest where none exists")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")

	m, ok, err := FindAndLoad(root)
	if err != nil || !ok {
		t.Fatalf("FindAndLoad = %v, %v", ok, err)
	}
	if m.Root != root || m.Config.Package.Name != "demo" {
		t.Errorf("manifest = %+v", m)
	}
}

func TestDefaultManifestRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, DefaultManifest("starter"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("generated manifest does not load: %v", err)
	}
	if cfg.Package.Name != "starter" || cfg.Build.Std != 1 {
		t.Errorf("config = %+v", cfg)
	}
	if len(cfg.Build.Sources) != 1 || cfg.Build.Sources[0] != "main.lc" {
		t.Errorf("sources = %v", cfg.Build.Sources)
	}
}
