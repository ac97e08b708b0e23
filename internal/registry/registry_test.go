package registry

import (
	"testing"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

type fakeGame struct{ title string }

func (g fakeGame) ID() string                                  { return g.title }
func (g fakeGame) Title() string                               { return g.title }
func (fakeGame) Reset(core.RuntimeConfig)                      {}
func (fakeGame) Resize(core.Viewport)                          {}
func (fakeGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (fakeGame) Render(*core.Screen)                           {}
func (fakeGame) State() core.GameState                         { return core.GameState{} }

func factory(title string) Factory {
	return func() Game { return fakeGame{title: title} }
}

func TestRegisterAndList(t *testing.T) {
	Register("t-zeta", factory("Zeta"))
	Register("t-beta", factory("Beta"), Order(2))
	Register("t-alpha", factory("Alpha"), Order(1), SoloOnly())

	var ids []string
	for _, g := range List() {
		switch g.ID {
		case "t-zeta", "t-beta", "t-alpha":
			ids = append(ids, g.ID)
		}
	}
	want := []string{"t-alpha", "t-beta", "t-zeta"}
	if len(ids) != len(want) {
		t.Fatalf("List() ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	info, ok := Lookup("t-beta")
	if !ok || info.Title != "Beta" || !info.Race {
		t.Errorf("Lookup(t-beta) = %+v, %v", info, ok)
	}
	if SupportsRace("t-alpha") {
		t.Error("t-alpha is solo only")
	}
	if !SupportsRace("t-zeta") {
		t.Error("t-zeta should race by default")
	}
	if SupportsRace("t-missing") || Exists("t-missing") {
		t.Error("unregistered id reported as present")
	}
}

func TestCreate(t *testing.T) {
	Register("t-create", factory("Create"))

	g, err := Create("t-create")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Create" {
		t.Errorf("Title() = %q", g.Title())
	}

	if _, err := Create("t-nope"); err == nil {
		t.Error("Create of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("t-dup", factory("Dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("t-dup", factory("Dup"))
}
