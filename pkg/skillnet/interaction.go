package skillnet

import "fmt"

// Phase is the coarse state of the highlight state machine.
type Phase int

const (
	Idle         Phase = iota // no active node
	Highlighting              // one node is hovered or selected
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Highlighting:
		return "highlighting"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Interaction tracks the hovered node, the selected node and the animation
// progress. Nodes are held by id, so the state survives relayout.
//
// At most one node is active: the selected node if there is one, otherwise
// the hovered node. While a selection exists the hovered id stays empty.
// Progress is 0 exactly when there is no active node, 1 otherwise.
type Interaction struct {
	hovered  string
	selected string
	progress float64
}

// NewInteraction returns an idle interaction state.
func NewInteraction() *Interaction {
	return &Interaction{}
}

// Hovered returns the hovered node id, or "".
func (s *Interaction) Hovered() string { return s.hovered }

// Selected returns the selected node id, or "".
func (s *Interaction) Selected() string { return s.selected }

// Progress returns the animation progress in [0,1].
func (s *Interaction) Progress() float64 { return s.progress }

// Active returns the selected node id if set, else the hovered id.
func (s *Interaction) Active() string {
	if s.selected != "" {
		return s.selected
	}
	return s.hovered
}

// Phase returns Highlighting when a node is active.
func (s *Interaction) Phase() Phase {
	if s.Active() != "" {
		return Highlighting
	}
	return Idle
}

// PointerMove applies a pointer move whose hit test returned hit ("" for
// no node). It reports whether the state changed.
func (s *Interaction) PointerMove(hit string) bool {
	if s.selected != "" {
		return false
	}
	if hit == s.hovered {
		return false
	}
	s.hovered = hit
	s.settle()
	return true
}

// PointerLeave clears the hover unless a node is selected.
func (s *Interaction) PointerLeave() bool {
	if s.selected != "" || s.hovered == "" {
		return false
	}
	s.hovered = ""
	s.settle()
	return true
}

// Click applies a click whose hit test returned hit. Clicking the selected
// node deselects it, clicking any other node selects it, clicking empty
// space leaves the selection alone. The hover is always cleared.
func (s *Interaction) Click(hit string) bool {
	before := *s
	if hit != "" {
		if hit == s.selected {
			s.selected = ""
		} else {
			s.selected = hit
		}
	}
	s.hovered = ""
	s.settle()
	return *s != before
}

// Retain drops hovered or selected ids that fail keep, e.g. after the
// graph was replaced.
func (s *Interaction) Retain(keep func(id string) bool) bool {
	before := *s
	if s.hovered != "" && !keep(s.hovered) {
		s.hovered = ""
	}
	if s.selected != "" && !keep(s.selected) {
		s.selected = ""
	}
	s.settle()
	return *s != before
}

// Reset returns to the idle state.
func (s *Interaction) Reset() {
	*s = Interaction{}
}

// settle drives progress to its target for the current active node.
func (s *Interaction) settle() {
	if s.Active() != "" {
		s.progress = 1
	} else {
		s.progress = 0
	}
}

func (s *Interaction) String() string {
	return fmt.Sprintf("%s hovered=%q selected=%q progress=%g", s.Phase(), s.hovered, s.selected, s.progress)
}
