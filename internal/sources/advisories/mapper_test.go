package advisories

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `advisories:
  - carrier: NK
    origin: aus
    destination: dfw
    warning: frequent evening thunderstorm holds
  - origin: EWR
    destination: SFO
    warning: ATC congestion on summer afternoons
  - carrier: AA
    origin: ""
    destination: JFK
    warning: should be skipped
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advisories.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write sample file: %v", err)
	}
	return path
}

func TestLoadAndMap(t *testing.T) {
	path := writeSample(t, sampleYAML)

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(config.Advisories) != 3 {
		t.Fatalf("parsed %d entries, want 3", len(config.Advisories))
	}

	mapped := NewMapper().MapAdvisories(config)
	if len(mapped) != 2 {
		t.Fatalf("mapped %d advisories, want 2 (row without origin skipped)", len(mapped))
	}

	if mapped[0].Carrier != "NK" || mapped[0].Origin != "AUS" || mapped[0].Destination != "DFW" {
		t.Errorf("first advisory = %+v, want upper-cased NK AUS-DFW", mapped[0])
	}
	if mapped[1].Carrier != "" {
		t.Errorf("carrier = %q, want empty for any-carrier advisory", mapped[1].Carrier)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Error("Load() returned nil error for missing file")
	}

	path := writeSample(t, "advisories: {not: [valid")
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() returned nil error for invalid yaml")
	}
}

func TestMapEmptyConfig(t *testing.T) {
	mapped := NewMapper().MapAdvisories(Config{})
	if len(mapped) != 0 {
		t.Errorf("mapped %d advisories from empty config, want 0", len(mapped))
	}
}
