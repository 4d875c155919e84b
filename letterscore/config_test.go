package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want config
	}{
		{"", config{preset: "variant1"}},
		{
			"[letterscore]\npreset = variant2\nhistory = /tmp/h\n",
			config{preset: "variant2", history: "/tmp/h"},
		},
		{
			"[letterscore]\nmultipliers = true\n",
			config{preset: "variant1", multipliers: true},
		},
		{
			"# local guesses\n[letters]\nq = 10\nw = 4\n",
			config{preset: "variant1", overrides: map[rune]int{'q': 10, 'w': 4}},
		},
	} {
		got, err := loadConfig(strings.NewReader(tt.in))
		if err != nil {
			t.Errorf("loadConfig(%q): %s", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("loadConfig(%q): got %+v; want %+v", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, in := range []string{
		"[letters]\nQ = 1\n",
		"[letters]\nab = 1\n",
		"[letters]\na = one\n",
		"[letters]\na = -1\n",
		"not an ini line\n",
		"[letterscore]\nmultipliers = sometimes\n",
	} {
		if _, err := loadConfig(strings.NewReader(in)); err == nil {
			t.Errorf("loadConfig(%q): got nil error", in)
		}
	}
}

func TestConfigScorer(t *testing.T) {
	cfg := config{preset: "variant2", overrides: map[rune]int{'z': 11}}
	s, err := cfg.scorer()
	if err != nil {
		t.Fatal(err)
	}
	sc, err := s.Score("zoo", "")
	if err != nil {
		t.Fatal(err)
	}
	if want := (11 + 1 + 1) * 3; sc.Total != want {
		t.Errorf("got %d; want %d", sc.Total, want)
	}

	if _, err := (config{preset: "nope"}).scorer(); err == nil {
		t.Error("got nil error for unknown preset")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.ini")
	cfg, err := loadConfigFile(missing, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.preset != defaultPreset {
		t.Errorf("got preset %q; want %q", cfg.preset, defaultPreset)
	}
	if _, err := loadConfigFile(missing, false); !os.IsNotExist(err) {
		t.Errorf("got %v; want a not-exist error", err)
	}

	bad := filepath.Join(dir, "bad.ini")
	if err := os.WriteFile(bad, []byte("[letters]\n1 = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = loadConfigFile(bad, true)
	if err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("got %v; want an error naming %s", err, bad)
	}
}

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveConfig(t *testing.T) {
	explicit := writeConfig(t, "explicit.ini", "[letterscore]\npreset = variant2\nhistory = /tmp/explicit\n")
	home := writeConfig(t, "home.ini", "[letterscore]\nhistory = /tmp/home\nmultipliers = true\n")
	missing := filepath.Join(t.TempDir(), "missing.ini")

	for _, tt := range []struct {
		name        string
		flags       flagValues
		defaultFile string
		want        config
	}{
		{"no files", flagValues{}, "", config{preset: "variant1"}},
		{"missing home file", flagValues{}, missing, config{preset: "variant1"}},
		{"home file", flagValues{}, home, config{preset: "variant1", history: "/tmp/home", multipliers: true}},
		{
			"-config wins over home file",
			flagValues{configFile: explicit}, home,
			config{preset: "variant2", history: "/tmp/explicit"},
		},
		{
			"flags override file",
			flagValues{configFile: explicit, preset: "variant1", history: "/tmp/flag", multipliers: true}, "",
			config{preset: "variant1", history: "/tmp/flag", multipliers: true},
		},
		{
			"flags override home file",
			flagValues{preset: "variant2"}, home,
			config{preset: "variant2", history: "/tmp/home", multipliers: true},
		},
	} {
		got, err := resolveConfig(tt.flags, tt.defaultFile)
		if err != nil {
			t.Errorf("%s: %s", tt.name, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %+v; want %+v", tt.name, got, tt.want)
		}
	}
}

func TestResolveConfigMissingExplicitFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ini")
	if _, err := resolveConfig(flagValues{configFile: missing}, ""); !os.IsNotExist(err) {
		t.Errorf("got %v; want a not-exist error", err)
	}
}
