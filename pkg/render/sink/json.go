package sink

import "github.com/matzehuels/stairforge/pkg/scene"

// RenderJSON exports the layout in the canonical serialization format.
func RenderJSON(l scene.Layout) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return scene.MarshalLayout(l)
}
