package registry

import (
	"testing"

	"github.com/vovakirdan/tui-puzzle/internal/core"
)

type stubGame struct {
	id string
}

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Describe() string                     { return "test double" }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Fatal("Exists reported the wrong games")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("created %q", g.ID())
	}
	if _, err := Create("zz_missing"); err == nil {
		t.Error("unknown id should be an error")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "zz_stub_a" && (info.Title != "Stub zz_stub_a" || info.Description != "test double") {
			t.Errorf("unexpected info %+v", info)
		}
		ids = append(ids, info.ID)
	}
	posA, posB := -1, -1
	for i, id := range ids {
		switch id {
		case "zz_stub_a":
			posA = i
		case "zz_stub_b":
			posB = i
		}
	}
	if posA < 0 || posB < 0 || posA > posB {
		t.Errorf("List should be sorted by ID, got %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}
