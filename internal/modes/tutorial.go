package modes

import (
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/registry"
)

// Tutorial plays free play levels while the tutorial stages gate the
// actions. The session decides when the tutorial is over.
type Tutorial struct{}

// NewTutorial creates the tutorial policy.
func NewTutorial() *Tutorial {
	return &Tutorial{}
}

func (t *Tutorial) ID() string    { return TutorialID }
func (t *Tutorial) Title() string { return "Tutorial" }

func (t *Tutorial) Setup(opts core.GameOptions) (registry.Setup, error) {
	return levelSetup(opts), nil
}

func (t *Tutorial) Next(opts core.GameOptions) (core.GameOptions, bool) {
	return nextLevel(opts), true
}
