package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string {
	return g.id
}

func (g *stubGame) Title() string {
	return strings.ToUpper(g.id)
}

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.state = core.GameState{}
}

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState {
	return g.state
}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Error("Exists reported the wrong registrations")
	}

	g1, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g2, _ := Create("stub_a")
	g1.Step(core.NewInputFrame())
	if g2.State().Score != 0 {
		t.Error("each Create should return an independent instance")
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create of an unknown ID should fail")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if strings.Join(ids, ",") != "stub_a,stub_b" {
		t.Errorf("List order = %v, expected sorted by ID", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
