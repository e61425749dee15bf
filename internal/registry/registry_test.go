package registry

import (
	"testing"

	"github.com/vovakirdan/tui-particles/internal/core"
)

type stubScene struct {
	id, title string
	ticks     int
}

func (s *stubScene) ID() string { return s.id }
func (s *stubScene) Title() string { return s.title }
func (s *stubScene) Grid() (int, int) { return 4, 2 }
func (s *stubScene) TickRate() int { return 0 }
func (s *stubScene) Reset(core.RuntimeConfig) { s.ticks = 0 }
func (s *stubScene) Tick(float64) { s.ticks++ }
func (s *stubScene) Draw(*core.Screen) {}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Scene { return &stubScene{id: "stub-a", title: "Stub A"} })
	Register("stub-b", func() Scene { return &stubScene{id: "stub-b", title: "Stub B"} })

	if !Exists("stub-a") {
		t.Error("Exists(stub-a) = false, expected true")
	}
	if Exists("stub-z") {
		t.Error("Exists(stub-z) = true, expected false")
	}

	s, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.ID() != "stub-b" {
		t.Errorf("Create(stub-b).ID() = %q", s.ID())
	}

	if _, err := Create("stub-z"); err == nil {
		t.Error("Create(stub-z) should fail")
	}

	// Each Create returns a fresh instance
	s1, _ := Create("stub-a")
	s2, _ := Create("stub-a")
	s1.Tick(0.1)
	if s2.(*stubScene).ticks != 0 {
		t.Error("Create should return independent instances")
	}

	var found []SceneInfo
	for _, info := range List() {
		if info.ID == "stub-a" || info.ID == "stub-b" {
			found = append(found, info)
		}
	}
	if len(found) != 2 || found[0].ID != "stub-a" || found[1].Title != "Stub B" {
		t.Errorf("List() = %+v, expected sorted stub-a, stub-b with titles", found)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Scene { return &stubScene{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Scene { return &stubScene{id: "stub-dup"} })
}
