package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadProjectConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	tagboardDir := filepath.Join(projectDir, ".tagboard")
	if err := os.MkdirAll(tagboardDir, 0755); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, TagboardProjectDir: tagboardDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	tags := c.PredefinedTags()
	if len(tags) != 5 || tags[0] != "Relevant" {
		t.Fatalf("unexpected default catalog seed: %v", tags)
	}
	policies := c.Policies()
	relevant, ok := policies["Relevant"]
	if !ok || !relevant.Applicable || len(relevant.Negates) != 2 {
		t.Fatalf("unexpected default Relevant policy: %+v (present=%v)", relevant, ok)
	}
	if explored := policies["Explored"]; explored.Applicable || explored.Removable {
		t.Fatalf("derived tags must be gated by default: %+v", explored)
	}
}

func TestLoadProjectConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	tagboardDir := filepath.Join(projectDir, ".tagboard")
	if err := os.MkdirAll(tagboardDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
predefined_tags:
  - "Yes"
  - "No"
  - "Maybe"
policies:
  "Yes":
    applicable: true
    removable: true
    negates: ["No", "Maybe"]
  "No":
    applicable: true
    removable: true
    negates: ["Yes"]
`)
	if err := os.WriteFile(filepath.Join(tagboardDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, TagboardProjectDir: tagboardDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	tags := c.PredefinedTags()
	if len(tags) != 3 || tags[0] != "Yes" || tags[2] != "Maybe" {
		t.Fatalf("unexpected catalog seed: %v", tags)
	}
	yes, ok := c.Policies()["Yes"]
	if !ok {
		t.Fatal("Yes policy missing")
	}
	if len(yes.Negates) != 2 || yes.Negates[0] != "No" || yes.Negates[1] != "Maybe" {
		t.Fatalf("negation order not preserved: %v", yes.Negates)
	}
}

func TestLoadProjectConfigRejectsSelfNegation(t *testing.T) {
	projectDir := t.TempDir()
	tagboardDir := filepath.Join(projectDir, ".tagboard")
	if err := os.MkdirAll(tagboardDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
predefined_tags: [Relevant]
policies:
  Relevant:
    applicable: true
    negates: [Relevant]
`)
	if err := os.WriteFile(filepath.Join(tagboardDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, TagboardProjectDir: tagboardDir, Project: defaultProjectConfig()}
	err := c.loadProjectConfig()
	if err == nil {
		t.Fatal("expected self-negation in config to be rejected")
	}
	if !strings.Contains(err.Error(), "negate itself") {
		t.Fatalf("error = %v, want self-negation message", err)
	}
}

func TestInitTagboardDirSeedsConfigOnce(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitTagboardDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	path := filepath.Join(projectDir, ".tagboard", "config.yaml")
	custom := "version: 1\npredefined_tags: [Solo]\n"
	if err := os.WriteFile(path, []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitTagboardDir(projectDir); err != nil {
		t.Fatalf("re-init: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != custom {
		t.Fatal("re-init must not overwrite an existing config.yaml")
	}
	if _, err := os.Stat(filepath.Join(projectDir, ".tagboard", "logs")); err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}
}
