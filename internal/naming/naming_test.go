package naming

import "testing"

func TestDetectCameraCounter(t *testing.T) {
	names := []string{"DSCF0851.JPG", "DSCF0852.JPG", "notes.txt"}

	style, err := Detect(names)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if style.Name() != "camera-counter" {
		t.Errorf("expected camera-counter, got %s", style.Name())
	}

	key, ok := style.Match("DSCF0851.JPG")
	if !ok || key != 851 {
		t.Errorf("expected key 851, got %d (ok=%v)", key, ok)
	}
}

func TestDetectSequenceSuffix(t *testing.T) {
	names := []string{"DSCF0851_0001.jpg", "DSCF0851_0002.jpg"}

	style, err := Detect(names)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if style.Name() != "sequence-suffix" {
		t.Errorf("expected sequence-suffix, got %s", style.Name())
	}

	key, ok := style.Match("DSCF0851_0002.jpg")
	if !ok || key != 2 {
		t.Errorf("expected key 2, got %d (ok=%v)", key, ok)
	}
}

func TestDetectPrefersSuffixInMixedDirectory(t *testing.T) {
	// A suffix name never matches the counter pattern, but a directory
	// holding both kinds should resolve to the suffix counter regardless
	// of listing order.
	names := []string{"DSCF0850.JPG", "DSCF0851_0001.jpg"}

	style, err := Detect(names)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if style.Name() != "sequence-suffix" {
		t.Errorf("expected sequence-suffix, got %s", style.Name())
	}
}

func TestDetectCaseInsensitive(t *testing.T) {
	style, err := Detect([]string{"dscf0001.jpg"})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if key, ok := style.Match("dscf0001.jpg"); !ok || key != 1 {
		t.Errorf("expected key 1, got %d (ok=%v)", key, ok)
	}
}

func TestDetectNoSupportedPattern(t *testing.T) {
	if _, err := Detect([]string{"IMG_1234.JPG", "readme.md"}); err == nil {
		t.Fatal("expected error for unsupported names")
	}
}

func TestMatchRejectsNonMembers(t *testing.T) {
	style, err := Detect([]string{"DSCF0001.JPG"})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	for _, name := range []string{"DSCF0001.PNG", "DSCF001.JPG", "XDSCF0001.JPG", "DSCF0001_0001.jpg"} {
		if _, ok := style.Match(name); ok {
			t.Errorf("camera-counter should not match %q", name)
		}
	}
}
