package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/shapes"
)

// YAMLWorld is the file layout of one world.
type YAMLWorld struct {
	World  int         `yaml:"world"`
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level entry inside a world file.
type YAMLLevel struct {
	Level  int          `yaml:"level"`
	Queue  []string     `yaml:"queue"`
	Target []core.Point `yaml:"target"`
}

// ParseYAML parses a world file. Unknown shape names and empty targets are
// errors; numbering is checked later by Catalog.Validate.
func ParseYAML(data []byte) (World, error) {
	var yw YAMLWorld
	if err := yaml.Unmarshal(data, &yw); err != nil {
		return World{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	w := World{
		Number: yw.World,
		Name:   yw.Name,
		Levels: make([]Level, 0, len(yw.Levels)),
	}
	for _, yl := range yw.Levels {
		queue, err := shapes.ParseAll(yl.Queue)
		if err != nil {
			return World{}, fmt.Errorf("world %d level %d: %w", yw.World, yl.Level, err)
		}
		if len(yl.Target) == 0 {
			return World{}, fmt.Errorf("world %d level %d: empty target", yw.World, yl.Level)
		}
		w.Levels = append(w.Levels, Level{
			World:  yw.World,
			Number: yl.Level,
			Queue:  queue,
			Target: core.Shape(yl.Target).Normalize(),
		})
	}
	return w, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
