package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/backoffice/agent"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bo.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "seed_dir: data\nstyle: dark\nmodel: gemini-2.5-flash\nverbose: true\n")
	got, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	want := Config{SeedDir: "data", Style: "dark", Model: "gemini-2.5-flash", Verbose: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() (-want +got):\n%s", diff)
	}

	if got, err := LoadConfig(writeConfig(t, ""), false); err != nil || got != (Config{}) {
		t.Errorf("LoadConfig(empty) = %+v, %v, want an empty configuration", got, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := LoadConfig(missing, true); err != nil {
		t.Errorf("LoadConfig(missing, optional) unexpected error: %v", err)
	}
	if _, err := LoadConfig(missing, false); err == nil {
		t.Error("LoadConfig(missing) = nil error, want one")
	}
	_, err := LoadConfig(writeConfig(t, "colour: blue\n"), false)
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Errorf("LoadConfig(unknown key) = %v, want an error about colour", err)
	}
}

func TestResolve(t *testing.T) {
	file := Config{SeedDir: "from-file", Style: "dark"}
	testCases := []struct {
		name string
		args []string
		want Config
	}{
		{"file over defaults", nil, Config{SeedDir: "from-file", Style: "dark", Model: agent.DefaultModel}},
		{"flags over file", []string{"-seed-dir", "from-flag", "-v"}, Config{SeedDir: "from-flag", Style: "dark", Model: agent.DefaultModel, Verbose: true}},
		{"explicit flag equal to its default", []string{"-style", "auto"}, Config{SeedDir: "from-file", Style: "auto", Model: agent.DefaultModel}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("bo", flag.ContinueOnError)
			fs.String("seed-dir", "", "")
			fs.String("style", "auto", "")
			fs.Bool("v", false, "")
			if err := fs.Parse(tc.args); err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, resolve(file, fs)); diff != "" {
				t.Errorf("resolve() (-want +got):\n%s", diff)
			}
		})
	}
}
