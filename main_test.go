package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const testSceneText = `# minimal scene
cam 0 0 4   0 0 0   0 1 0   1 2
set 0.2 0.3 0.4   1 2
mtl 0.8 0.2 0.2   1 1 1   0 0 0   30 0
sph 0 0 0   1   1
lgt 0 5 5   1 1 1   1 0.5 1
`

func TestLoadScene(t *testing.T) {
	sceneFile := filepath.Join(t.TempDir(), "scene.txt")
	if err := os.WriteFile(sceneFile, []byte(testSceneText), 0644); err != nil {
		t.Fatalf("writing scene file: %v", err)
	}

	tests := []struct {
		name        string
		sceneFile   string
		expectError bool
	}{
		{"empty path uses default scene", "", false},
		{"valid scene file", sceneFile, false},
		{"missing scene file", filepath.Join(t.TempDir(), "nope.txt"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := loadScene(tt.sceneFile)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for %q, got none", tt.sceneFile)
				}
				return
			}

			if err != nil {
				t.Fatalf("loadScene(%q) error = %v", tt.sceneFile, err)
			}
			if sc == nil {
				t.Fatal("loadScene returned nil scene without error")
			}
			if err := sc.Validate(); err != nil {
				t.Errorf("loaded scene failed validation: %v", err)
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	filename := filepath.Join(t.TempDir(), "out.png")

	if err := writePNG(filename, img); err != nil {
		t.Fatalf("writePNG() error = %v", err)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("opening written file: %v", err)
	}
	defer file.Close()

	decoded, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestWritePNG_BadPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error writing to a nonexistent directory, got nil")
	}
}
