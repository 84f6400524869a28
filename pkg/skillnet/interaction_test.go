package skillnet

import (
	"math/rand"
	"testing"
)

func checkInvariants(t *testing.T, s *Interaction, step string) {
	t.Helper()
	if s.Selected() != "" && s.Hovered() != "" {
		t.Fatalf("%s: hovered %q and selected %q both set", step, s.Hovered(), s.Selected())
	}
	if (s.Progress() == 0) != (s.Active() == "") {
		t.Fatalf("%s: progress %g with active %q", step, s.Progress(), s.Active())
	}
	if s.Progress() < 0 || s.Progress() > 1 {
		t.Fatalf("%s: progress %g out of range", step, s.Progress())
	}
}

func TestInteractionInitial(t *testing.T) {
	s := NewInteraction()
	if s.Phase() != Idle || s.Active() != "" || s.Progress() != 0 {
		t.Errorf("new interaction not idle: %s", s)
	}
}

func TestHoverAndLeave(t *testing.T) {
	s := NewInteraction()

	if !s.PointerMove("php") {
		t.Error("hovering a node should change state")
	}
	if s.Hovered() != "php" || s.Progress() != 1 || s.Phase() != Highlighting {
		t.Errorf("after hover: %s", s)
	}
	if s.PointerMove("php") {
		t.Error("hovering the same node again should be a no-op")
	}
	if !s.PointerMove("mysql") || s.Hovered() != "mysql" {
		t.Errorf("moving to another node: %s", s)
	}
	if !s.PointerMove("") || s.Hovered() != "" || s.Progress() != 0 {
		t.Errorf("moving off nodes: %s", s)
	}

	s.PointerMove("php")
	if !s.PointerLeave() || s.Active() != "" || s.Progress() != 0 {
		t.Errorf("after leave: %s", s)
	}
	if s.PointerLeave() {
		t.Error("second leave should be a no-op")
	}
}

func TestClickToggle(t *testing.T) {
	s := NewInteraction()

	s.PointerMove(CenterID)
	s.Click(CenterID)
	if s.Selected() != CenterID || s.Hovered() != "" || s.Progress() != 1 {
		t.Errorf("after first click: %s", s)
	}

	s.Click(CenterID)
	if s.Selected() != "" || s.Progress() != 0 {
		t.Errorf("after second click: %s", s)
	}
}

func TestClickOtherNodeMovesSelection(t *testing.T) {
	s := NewInteraction()
	s.Click("aws")
	s.Click("docker")
	if s.Selected() != "docker" || s.Progress() != 1 {
		t.Errorf("selection should move to docker: %s", s)
	}
}

func TestClickEmptyKeepsSelection(t *testing.T) {
	s := NewInteraction()
	s.Click("aws")
	if s.Click("") {
		t.Error("clicking empty space with a selection should not change state")
	}
	if s.Selected() != "aws" || s.Progress() != 1 {
		t.Errorf("selection lost: %s", s)
	}
}

func TestClickEmptyClearsHover(t *testing.T) {
	s := NewInteraction()
	s.PointerMove("aws")
	s.Click("")
	if s.Hovered() != "" || s.Progress() != 0 {
		t.Errorf("click should clear hover: %s", s)
	}
}

func TestSelectionSuppressesHover(t *testing.T) {
	s := NewInteraction()
	s.Click("aws")

	if s.PointerMove("docker") {
		t.Error("hover must be ignored while a node is selected")
	}
	if s.Hovered() != "" || s.Active() != "aws" {
		t.Errorf("selection highlight lost: %s", s)
	}
	if s.PointerMove("") || s.PointerLeave() {
		t.Error("leaving must not clear a selection")
	}
	if s.Active() != "aws" || s.Progress() != 1 {
		t.Errorf("selection lost after leave: %s", s)
	}
}

func TestRetain(t *testing.T) {
	s := NewInteraction()
	s.Click("aws")
	if !s.Retain(func(id string) bool { return id != "aws" }) {
		t.Error("dropping the selected id should change state")
	}
	if s.Active() != "" || s.Progress() != 0 {
		t.Errorf("after retain: %s", s)
	}
}

func TestInvariantsUnderRandomEvents(t *testing.T) {
	l := ComputeLayout(DefaultGraph(), 550, 550)
	rng := rand.New(rand.NewSource(42))
	s := NewInteraction()

	pick := func() (float64, float64) {
		// Half the events land on a node center, half anywhere.
		if rng.Intn(2) == 0 {
			n := l.Nodes[rng.Intn(len(l.Nodes))]
			return n.X, n.Y
		}
		return rng.Float64() * 550, rng.Float64() * 550
	}
	hit := func(x, y float64) string {
		if n, ok := l.HitTest(x, y); ok {
			return n.ID
		}
		return ""
	}

	for i := 0; i < 5000; i++ {
		switch rng.Intn(3) {
		case 0:
			s.PointerMove(hit(pick()))
			checkInvariants(t, s, "move")
		case 1:
			s.Click(hit(pick()))
			checkInvariants(t, s, "click")
		case 2:
			s.PointerLeave()
			checkInvariants(t, s, "leave")
		}
	}
}

func TestPhaseString(t *testing.T) {
	if Idle.String() != "idle" || Highlighting.String() != "highlighting" {
		t.Errorf("unexpected phase names %q %q", Idle, Highlighting)
	}
}
