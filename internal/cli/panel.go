package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stairforge/pkg/preset"
	"github.com/matzehuels/stairforge/pkg/render/sink"
	"github.com/matzehuels/stairforge/pkg/scene"
	"github.com/matzehuels/stairforge/pkg/stair"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// panelCommand creates the interactive parameter panel command.
func (c *CLI) panelCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Tune staircase parameters interactively",
		Long:  `Opens an interactive panel where parameters can be adjusted with the arrow keys. The layout regenerates on every change, and "s" saves the current plan drawing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := NewPanelModel(stair.Default(), output)
			prog := tea.NewProgram(model, tea.WithContext(cmd.Context()))

			final, err := prog.Run()
			if err != nil {
				return fmt.Errorf("run panel: %w", err)
			}

			m := final.(PanelModel)
			if m.SavedPath != "" {
				printSuccess("Saved drawing")
				printFile(m.SavedPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "stairs.svg", "file the panel saves drawings to")

	return cmd
}

// =============================================================================
// PanelModel - Interactive parameter editing
// =============================================================================

// panelField identifies an editable parameter row.
type panelField int

const (
	fieldSteps panelField = iota
	fieldHeight
	fieldWidth
	fieldDepth
	fieldThickness
	fieldRailings
	fieldCurved
	fieldRadius
	fieldDirection
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Steps",
	"Step height",
	"Step width",
	"Step depth",
	"Thickness",
	"Railings",
	"Curved",
	"Curve radius",
	"Direction",
}

// PanelModel is the bubbletea model for the parameter panel.
type PanelModel struct {
	Params    stair.Parameters
	Cursor    panelField
	Layout    scene.Layout
	Err       error
	Output    string
	SavedPath string
	saveNote  string

	// naming is true while a preset name is being typed.
	naming     bool
	presetName string
}

// NewPanelModel creates a panel model and generates the initial layout.
func NewPanelModel(params stair.Parameters, output string) PanelModel {
	m := PanelModel{Params: params, Output: output}
	m.regenerate()
	return m
}

func (m PanelModel) Init() tea.Cmd {
	return nil
}

func (m PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.updateNaming(msg), nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < fieldCount-1 {
				m.Cursor++
			}
		case "left", "h":
			m.adjust(-1)
			m.regenerate()
		case "right", "l", "enter", " ":
			m.adjust(+1)
			m.regenerate()
		case "s":
			m.save()
		case "w":
			if m.Err == nil {
				m.naming = true
				m.presetName = ""
			}
		}
	}
	return m, nil
}

// updateNaming handles key input while a preset name is being typed.
func (m PanelModel) updateNaming(msg tea.KeyMsg) PanelModel {
	switch msg.Type {
	case tea.KeyEsc:
		m.naming = false
	case tea.KeyEnter:
		m.naming = false
		m.savePreset()
	case tea.KeyBackspace:
		if len(m.presetName) > 0 {
			m.presetName = m.presetName[:len(m.presetName)-1]
		}
	case tea.KeySpace:
		m.presetName += " "
	case tea.KeyRunes:
		m.presetName += string(msg.Runes)
	}
	return m
}

// adjust changes the focused field by delta steps. Toggles and the
// direction cycle ignore the sign for enter/space convenience.
func (m *PanelModel) adjust(delta int) {
	p := &m.Params
	switch m.Cursor {
	case fieldSteps:
		p.StepCount += delta
	case fieldHeight:
		p.StepHeight += 0.05 * float64(delta)
	case fieldWidth:
		p.StepWidth += 0.1 * float64(delta)
	case fieldDepth:
		p.StepDepth += 0.05 * float64(delta)
	case fieldThickness:
		p.StepThickness += 0.01 * float64(delta)
	case fieldRailings:
		p.Railings = !p.Railings
	case fieldCurved:
		p.Curved = !p.Curved
	case fieldRadius:
		p.CurveRadius += 0.5 * float64(delta)
	case fieldDirection:
		idx := 0
		for i, d := range stair.Directions {
			if d == p.Direction {
				idx = i
				break
			}
		}
		idx = (idx + delta + len(stair.Directions)) % len(stair.Directions)
		p.Direction = stair.Directions[idx]
	}
}

// regenerate rebuilds the layout from the current parameters.
func (m *PanelModel) regenerate() {
	m.saveNote = ""
	m.Layout, m.Err = stair.Generate(m.Params)
}

// save renders the current layout to the output file.
func (m *PanelModel) save() {
	if m.Err != nil {
		return
	}
	data, err := sink.RenderSVG(m.Layout)
	if err != nil {
		m.saveNote = StyleWarning.Render("save failed: " + err.Error())
		return
	}
	if err := writeArtifact(m.Output, data); err != nil {
		m.saveNote = StyleWarning.Render("save failed: " + err.Error())
		return
	}
	m.SavedPath = m.Output
	m.saveNote = StyleSuccess.Render("saved " + m.Output)
}

// savePreset stores the current parameters under the typed name.
func (m *PanelModel) savePreset() {
	store, err := preset.NewFileStore("")
	if err != nil {
		m.saveNote = StyleWarning.Render("preset save failed: " + err.Error())
		return
	}
	defer store.Close()

	p, err := store.Put(context.Background(), preset.Preset{Name: m.presetName, Params: m.Params})
	if err != nil {
		m.saveNote = StyleWarning.Render("preset save failed: " + err.Error())
		return
	}
	m.saveNote = StyleSuccess.Render("saved preset " + p.Name)
}

// previewRows is the height of the text elevation preview.
const previewRows = 6

// preview renders a coarse side profile of the staircase. Each column is a
// step; bar height follows the step's rise above the lowest step, so
// downward stairs mirror the upward profile and flat stairs draw a slab.
func (m PanelModel) preview() string {
	if m.Err != nil {
		return ""
	}

	steps := m.Layout.Steps()
	if len(steps) == 0 {
		return ""
	}

	tops := make([]float64, len(steps))
	minTop, maxTop := steps[0].Position.Y, steps[0].Position.Y
	for i, s := range steps {
		tops[i] = s.Position.Y
		if tops[i] < minTop {
			minTop = tops[i]
		}
		if tops[i] > maxTop {
			maxTop = tops[i]
		}
	}
	span := maxTop - minTop

	var b strings.Builder
	for row := previewRows; row >= 1; row-- {
		b.WriteString("  ")
		for _, top := range tops {
			filled := 1
			if span > 0 {
				filled = 1 + int((top-minTop)/span*float64(previewRows-1)+0.5)
			}
			if filled >= row {
				b.WriteString("█")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return StyleDim.Render(strings.TrimRight(b.String(), "\n"))
}

// fieldValue formats the display value for a field.
func (m PanelModel) fieldValue(f panelField) string {
	p := m.Params
	switch f {
	case fieldSteps:
		return fmt.Sprintf("%d", p.StepCount)
	case fieldHeight:
		return fmt.Sprintf("%.2f", p.StepHeight)
	case fieldWidth:
		return fmt.Sprintf("%.2f", p.StepWidth)
	case fieldDepth:
		return fmt.Sprintf("%.2f", p.StepDepth)
	case fieldThickness:
		return fmt.Sprintf("%.2f", p.StepThickness)
	case fieldRailings:
		return onOff(p.Railings)
	case fieldCurved:
		return onOff(p.Curved)
	case fieldRadius:
		return fmt.Sprintf("%.1f", p.CurveRadius)
	case fieldDirection:
		return string(p.Direction)
	}
	return ""
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m PanelModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Staircase Panel"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ←/→ adjust  s save drawing  w save preset  q quit"))
	b.WriteString("\n\n")

	for f := panelField(0); f < fieldCount; f++ {
		cursor := "  "
		if f == m.Cursor {
			cursor = "▸ "
		}

		// Fields that do not apply to the current shape are dimmed.
		inactive := (f == fieldRadius && !m.Params.Curved) ||
			(f == fieldDirection && m.Params.Curved)

		line := fmt.Sprintf("%s%-14s %s", cursor, fieldLabels[f], m.fieldValue(f))
		switch {
		case f == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case inactive:
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")

	if m.Err != nil {
		b.WriteString(StyleWarning.Render("  " + m.Err.Error()))
		b.WriteString("\n")
	} else {
		min, max := m.Layout.Bounds()
		b.WriteString(listDimStyle.Render(fmt.Sprintf(
			"  %d primitives · footprint %.1f × %.1f · rise %.1f",
			len(m.Layout.Primitives), max.X-min.X, max.Z-min.Z, max.Y-min.Y)))
		b.WriteString("\n\n")
		b.WriteString(m.preview())
		b.WriteString("\n")
	}

	if m.naming {
		b.WriteString("  " + StyleHighlight.Render("preset name: ") + m.presetName + "▏\n")
	} else if m.saveNote != "" {
		b.WriteString("  " + m.saveNote + "\n")
	}

	return b.String()
}
