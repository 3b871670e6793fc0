package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stairforge/pkg/stair"
)

func keyPress(m PanelModel, key string) PanelModel {
	var msg tea.Msg
	switch key {
	case "up", "down", "left", "right", "enter", "esc", "backspace":
		types := map[string]tea.KeyType{
			"up": tea.KeyUp, "down": tea.KeyDown,
			"left": tea.KeyLeft, "right": tea.KeyRight,
			"enter": tea.KeyEnter, "esc": tea.KeyEsc,
			"backspace": tea.KeyBackspace,
		}
		msg = tea.KeyMsg{Type: types[key]}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(PanelModel)
}

func TestPanelAdjustSteps(t *testing.T) {
	m := NewPanelModel(stair.Default(), "stairs.svg")

	m = keyPress(m, "right")
	if m.Params.StepCount != stair.Default().StepCount+1 {
		t.Errorf("StepCount = %d after right, want %d", m.Params.StepCount, stair.Default().StepCount+1)
	}
	if m.Err != nil {
		t.Errorf("layout error after adjust: %v", m.Err)
	}

	m = keyPress(m, "left")
	m = keyPress(m, "left")
	if m.Params.StepCount != stair.Default().StepCount-1 {
		t.Errorf("StepCount = %d, want %d", m.Params.StepCount, stair.Default().StepCount-1)
	}
}

func TestPanelToggleRailings(t *testing.T) {
	m := NewPanelModel(stair.Default(), "stairs.svg")
	before := len(m.Layout.Primitives)

	for m.Cursor != fieldRailings {
		m = keyPress(m, "down")
	}
	m = keyPress(m, "enter")

	if !m.Params.Railings {
		t.Fatal("Railings should toggle on")
	}
	if len(m.Layout.Primitives) <= before {
		t.Errorf("primitive count = %d, want more than %d after adding railings",
			len(m.Layout.Primitives), before)
	}
}

func TestPanelDirectionCycle(t *testing.T) {
	m := NewPanelModel(stair.Default(), "stairs.svg")
	m.Cursor = fieldDirection

	seen := map[stair.Direction]bool{m.Params.Direction: true}
	for i := 0; i < len(stair.Directions)-1; i++ {
		m = keyPress(m, "right")
		seen[m.Params.Direction] = true
	}
	if len(seen) != len(stair.Directions) {
		t.Errorf("cycled through %d directions, want %d", len(seen), len(stair.Directions))
	}

	m = keyPress(m, "right")
	if m.Params.Direction != stair.Default().Direction {
		t.Errorf("Direction = %q after full cycle, want %q", m.Params.Direction, stair.Default().Direction)
	}
}

func TestPanelInvalidParamsShowError(t *testing.T) {
	params := stair.Default()
	params.StepCount = stair.MinStepCount
	m := NewPanelModel(params, "stairs.svg")

	// Stepping below the minimum keeps the panel alive and surfaces the error.
	m = keyPress(m, "left")
	if m.Err == nil {
		t.Fatal("expected a validation error below the step minimum")
	}
	if !strings.Contains(m.View(), m.Err.Error()) {
		t.Error("View() should show the validation error")
	}

	// Saving an invalid layout is a no-op.
	m = keyPress(m, "s")
	if m.SavedPath != "" {
		t.Error("save should be skipped while the layout is invalid")
	}
}

func TestPanelSave(t *testing.T) {
	out := filepath.Join(t.TempDir(), "panel.svg")
	m := NewPanelModel(stair.Default(), out)

	m = keyPress(m, "s")
	if m.SavedPath != out {
		t.Fatalf("SavedPath = %q, want %q", m.SavedPath, out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read saved drawing: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Errorf("saved drawing should be SVG, got %q", data[:min(20, len(data))])
	}
}

func TestPanelSavePreset(t *testing.T) {
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	defer os.Setenv("HOME", oldHome)

	m := NewPanelModel(stair.Default(), "stairs.svg")

	m = keyPress(m, "w")
	if !m.naming {
		t.Fatal("w should enter preset naming mode")
	}
	for _, r := range "demo" {
		m = keyPress(m, string(r))
	}
	if !strings.Contains(m.View(), "preset name: demo") {
		t.Error("View() should show the name being typed")
	}
	m = keyPress(m, "enter")

	if m.naming {
		t.Error("enter should leave naming mode")
	}
	home := os.Getenv("HOME")
	path := filepath.Join(home, ".config", "stairforge", "presets", "demo.toml")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("preset file not written: %v", err)
	}
}

func TestPanelSavePresetCancel(t *testing.T) {
	m := NewPanelModel(stair.Default(), "stairs.svg")

	m = keyPress(m, "w")
	m = keyPress(m, "x")
	m = keyPress(m, "esc")

	if m.naming {
		t.Error("esc should cancel naming mode")
	}
	if m.saveNote != "" {
		t.Errorf("cancel should not save anything, got note %q", m.saveNote)
	}
}

func TestPanelPreview(t *testing.T) {
	m := NewPanelModel(stair.Default(), "stairs.svg")
	if !strings.Contains(m.preview(), "█") {
		t.Error("preview should draw the step profile")
	}

	// Downward stairs still show a rising profile from the lowest step.
	params := stair.Default()
	params.Direction = stair.DirectionDownward
	m = NewPanelModel(params, "stairs.svg")
	if !strings.Contains(m.preview(), "█") {
		t.Error("downward preview should draw the step profile")
	}
}

func TestPanelView(t *testing.T) {
	m := NewPanelModel(stair.Default(), "stairs.svg")
	view := m.View()

	for _, label := range fieldLabels {
		if !strings.Contains(view, label) {
			t.Errorf("View() missing field label %q", label)
		}
	}
	if !strings.Contains(view, "primitives") {
		t.Error("View() should show the primitive count")
	}
}
