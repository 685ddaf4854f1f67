package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/gripclimb/stamina"
)

func TestEmbeddedEntitySpecs(t *testing.T) {
	tests := []struct {
		file string
		want []string
	}{
		{"climber.yaml", []string{"player_tag", "transform", "input", "climber", "grip_stamina", "reticles", "audio"}},
		{"camera.yaml", []string{"camera_tag", "transform", "camera"}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(tt.file)
			if err != nil {
				t.Fatalf("LoadEntityBuildSpec() failed: %v", err)
			}
			for _, name := range tt.want {
				if _, ok := spec.Components[name]; !ok {
					t.Errorf("missing component %q", name)
				}
			}
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("climber.yaml")
	if err != nil {
		t.Fatal(err)
	}
	climber, err := DecodeComponentSpec[ClimberComponentSpec](spec.Components["climber"])
	if err != nil {
		t.Fatalf("decode climber: %v", err)
	}
	if climber.TransitionFrames != 12 || climber.Scheme != "two_button" || climber.HandOffset != 0.125 {
		t.Fatalf("unexpected climber spec %+v", climber)
	}

	gs, err := DecodeComponentSpec[GripStaminaComponentSpec](spec.Components["grip_stamina"])
	if err != nil {
		t.Fatalf("decode grip_stamina: %v", err)
	}
	if gs.Script != "grip_drain.tengo" || gs.DelayFrames != 6 {
		t.Fatalf("unexpected stamina spec %+v", gs)
	}

	empty, err := DecodeComponentSpec[CameraComponentSpec](nil)
	if err != nil || empty != (CameraComponentSpec{}) {
		t.Fatalf("nil raw should decode to the zero spec, got %+v, %v", empty, err)
	}
}

func TestGripDrainScript(t *testing.T) {
	src, err := LoadScript("grip_drain.tengo")
	if err != nil {
		t.Fatalf("LoadScript() failed: %v", err)
	}
	policy, err := stamina.NewScriptPolicy(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	tests := []struct {
		name string
		in   stamina.MoveCost
		want float64
	}{
		{"move", stamina.MoveCost{Quality: 7, MoveModifier: 1, JumpModifier: 2.5}, 3},
		{"one_step_jump", stamina.MoveCost{Quality: 6, Jump: true, Steps: 1, MoveModifier: 1, JumpModifier: 2.5}, 10},
		{"three_step_jump", stamina.MoveCost{Quality: 6, Jump: true, Steps: 3, MoveModifier: 1, JumpModifier: 2.5}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.Cost(tt.in)
			if err != nil {
				t.Fatalf("Cost() failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("cost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec() failed: %v", err)
	}
	if spec.ScreenWidth <= 0 || spec.ScreenHeight <= 0 || len(spec.Levels) == 0 {
		t.Fatalf("unexpected game spec %+v", spec)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	if err := os.WriteFile(filepath.Join(dir, "camera.yaml"), []byte("name: disk\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadEntityBuildSpec("prefabs/camera.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Name != "disk" {
		t.Fatalf("expected the disk override, got %q", spec.Name)
	}

	// Files missing on disk still come from the embedded copies.
	if _, err := LoadEntityBuildSpec("climber.yaml"); err != nil {
		t.Fatalf("embedded fallback failed: %v", err)
	}
}

func TestCleanScriptPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"grip_drain.tengo", "scripts/grip_drain.tengo"},
		{"scripts/grip_drain.tengo", "scripts/grip_drain.tengo"},
		{"prefabs/scripts/grip_drain.tengo", "scripts/grip_drain.tengo"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanScriptPath(tt.in); got != tt.want {
			t.Errorf("cleanScriptPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}

	target := filepath.Join(dir, "tutorial.yaml")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a change")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() failed: %v", err)
	}
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel was not closed")
		}
	}
}

func TestIsLevelFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join("levels", "tutorial.yaml"), true},
		{filepath.Join("game", "levels", "chimney.yml"), true},
		{filepath.Join("prefabs", "climber.yaml"), false},
		{filepath.Join("levels", "embed.go"), false},
	}
	for _, tt := range tests {
		if got := IsLevelFile(tt.path); got != tt.want {
			t.Errorf("IsLevelFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
