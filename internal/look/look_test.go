package look

import (
	"os"
	"path/filepath"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestResolvePresetValues(t *testing.T) {
	looks := Builtin()

	tests := []struct {
		name string
		want Params
	}{
		{"milkyway", Params{Gamma: 1.30, Contrast: 1.15, Saturation: 1.10, Clarity: 0.30}},
		{"aurora", Params{Gamma: 1.35, Contrast: 1.15, Saturation: 1.15, Clarity: 0.30}},
		{"aurora-boosted", Params{Gamma: 1.42, Contrast: 1.35, Saturation: 1.30, Clarity: 0.35}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := looks.Resolve(tt.name, Overrides{})
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestResolveExplicitOverrideWinsPerField(t *testing.T) {
	looks := Builtin()

	got, err := looks.Resolve("aurora", Overrides{Saturation: fptr(2.0)})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := Params{Gamma: 1.35, Contrast: 1.15, Saturation: 2.0, Clarity: 0.30}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestResolveOverrideCanPinNeutralValue(t *testing.T) {
	looks := Builtin()

	// An explicit --gamma 1.0 against a preset must stick.
	got, err := looks.Resolve("aurora", Overrides{Gamma: fptr(1.0)})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Gamma != 1.0 {
		t.Errorf("explicit gamma 1.0 should override the preset, got %g", got.Gamma)
	}
}

func TestResolveNoLookIsNeutral(t *testing.T) {
	looks := Builtin()

	got, err := looks.Resolve("", Overrides{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != Neutral {
		t.Errorf("expected neutral params, got %+v", got)
	}
}

func TestResolveUnknownLook(t *testing.T) {
	if _, err := Builtin().Resolve("teal-and-orange", Overrides{}); err == nil {
		t.Fatal("expected error for unknown look")
	}
}

func TestLoadFileOverlaysAndAdds(t *testing.T) {
	content := `
milkyway:
  gamma: 1.5
  contrast: 1.2
  saturation: 1.1
  clarity: 0.2
nightcity:
  gamma: 1.1
  contrast: 1.3
  saturation: 1.4
  clarity: 0.1
`
	path := filepath.Join(t.TempDir(), "looks.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	looks := Builtin()
	if err := looks.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	got, err := looks.Resolve("milkyway", Overrides{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Gamma != 1.5 {
		t.Errorf("file should replace built-in milkyway gamma, got %g", got.Gamma)
	}

	custom, err := looks.Resolve("nightcity", Overrides{})
	if err != nil {
		t.Fatalf("Resolve failed for file-defined look: %v", err)
	}
	if custom.Contrast != 1.3 {
		t.Errorf("expected contrast 1.3, got %g", custom.Contrast)
	}
}

func TestLoadFileErrors(t *testing.T) {
	looks := Builtin()

	if err := looks.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte(":\t not yaml ["), 0644)
	if err := looks.LoadFile(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
