package registry

import (
	"testing"

	"github.com/vovakirdan/tui-knight/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                    { return g.id }
func (g *stubGame) Title() string                                 { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)                      {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(core.Renderer)                          {}
func (g *stubGame) State() core.GameState                         { return core.GameState{} }
func (g *stubGame) WorldSize() core.Vec2                          { return core.V(800, 600) }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Error("Exists(stub_a) = false, expected true")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create(stub_b) error = %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("ID() = %q, expected stub_b", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := indexOf(ids, "stub_a"), indexOf(ids, "stub_b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected sorted ids containing stub_a before stub_b", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate id should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
