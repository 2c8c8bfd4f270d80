package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/panel-arcade/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (s *stubGame) ID() string                 { return s.id }
func (s *stubGame) Title() string              { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig)   { s.steps = 0 }
func (s *stubGame) Render(*core.Screen)        {}
func (s *stubGame) State() core.GameState      { return core.GameState{Score: s.steps} }
func (s *stubGame) Stats() core.RoundStats     { return core.RoundStats{Ticks: uint64(s.steps)} }
func (s *stubGame) Step(core.InputFrame) core.StepResult {
	s.steps++
	return core.StepResult{State: s.State(), Stats: s.Stats()}
}

// withCleanRegistry swaps in empty maps for the duration of a test.
func withCleanRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	oldF, oldT := factories, titles
	factories = make(map[string]Factory)
	titles = make(map[string]string)
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		factories, titles = oldF, oldT
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	withCleanRegistry(t)

	Register("zeta", func() Game { return &stubGame{id: "zeta"} })
	Register("alpha", func() Game { return &stubGame{id: "alpha"} })

	assert.Equal(t, []GameInfo{
		{ID: "alpha", Title: "Stub alpha"},
		{ID: "zeta", Title: "Stub zeta"},
	}, List())
	assert.Equal(t, []string{"alpha", "zeta"}, IDs())
	assert.True(t, Exists("alpha"))
	assert.False(t, Exists("beta"))

	g, err := Create("zeta")
	require.NoError(t, err)
	assert.Equal(t, "zeta", g.ID())
}

func TestCreateUnknown(t *testing.T) {
	withCleanRegistry(t)
	Register("alpha", func() Game { return &stubGame{id: "alpha"} })

	_, err := Create("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha")
}

func TestRegisterRejectsDuplicatesAndEmptyIDs(t *testing.T) {
	withCleanRegistry(t)
	Register("alpha", func() Game { return &stubGame{id: "alpha"} })

	assert.Panics(t, func() {
		Register("alpha", func() Game { return &stubGame{id: "alpha"} })
	})
	assert.Panics(t, func() {
		Register(" ", func() Game { return &stubGame{id: " "} })
	})
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	withCleanRegistry(t)
	Register("alpha", func() Game { return &stubGame{id: "alpha"} })

	g1, err := Create("alpha")
	require.NoError(t, err)
	g1.Step(core.NewInputFrame())

	g2, err := Create("alpha")
	require.NoError(t, err)
	assert.Zero(t, g2.State().Score)
}
