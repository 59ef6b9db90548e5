// Package booth holds the editing-session state machine: layout choice,
// capture sequencing, and the sticker placement collection the compositor
// reads as an immutable snapshot.
package booth

import (
	"fmt"

	"github.com/tinybooth/filmstrip/pkg/filmstrip"
	"k8s.io/klog/v2"
)

// State is one step of the booth flow.
type State int

const (
	StateLayout State = iota
	StateCapture
	StateEdit
	StateFinal
)

func (s State) String() string {
	switch s {
	case StateLayout:
		return "layout"
	case StateCapture:
		return "capture"
	case StateEdit:
		return "edit"
	case StateFinal:
		return "final"
	}
	return "unknown"
}

// Event advances the state machine.
type Event int

const (
	EventLayoutChosen Event = iota
	EventCaptureDone
	EventEditDone
	EventReset
)

// Next is the pure transition function. Unknown transitions return an error
// and leave the caller's state unchanged.
func Next(s State, e Event) (State, error) {
	if e == EventReset {
		return StateLayout, nil
	}

	switch {
	case s == StateLayout && e == EventLayoutChosen:
		return StateCapture, nil
	case s == StateCapture && e == EventCaptureDone:
		return StateEdit, nil
	case s == StateEdit && e == EventEditDone:
		return StateFinal, nil
	}
	return s, fmt.Errorf("no transition from %s on event %d", s, e)
}

// Session owns one booth run's mutable state. It is single-user and not
// goroutine safe; the compositor only ever sees snapshots.
type Session struct {
	state  State
	layout filmstrip.LayoutMode
	design filmstrip.DesignVariant
	filter filmstrip.FilterKind

	eventText  string
	footerText string

	photos   []*filmstrip.CapturedPhoto
	stickers []filmstrip.StickerPlacement
	nextID   int
}

// NewSession starts at the layout-choice step.
func NewSession() *Session {
	return &Session{state: StateLayout, nextID: 1}
}

// State reports the current step.
func (s *Session) State() State { return s.state }

// ChooseLayout fixes the layout mode and moves to capture.
func (s *Session) ChooseLayout(mode filmstrip.LayoutMode, design filmstrip.DesignVariant, filter filmstrip.FilterKind) error {
	next, err := Next(s.state, EventLayoutChosen)
	if err != nil {
		return err
	}

	s.layout = mode
	s.design = design
	s.filter = filter
	s.state = next
	klog.V(1).Infof("layout %s chosen, need %d photos", mode, mode.PhotoCount())
	return nil
}

// AddPhoto appends a captured photo. When the layout's required count is
// reached the session moves to editing; extra captures are rejected.
func (s *Session) AddPhoto(p *filmstrip.CapturedPhoto) error {
	if s.state != StateCapture {
		return fmt.Errorf("cannot capture in state %s", s.state)
	}
	if len(s.photos) >= s.layout.PhotoCount() {
		return fmt.Errorf("already have %d photos", len(s.photos))
	}

	s.photos = append(s.photos, p)
	if len(s.photos) == s.layout.PhotoCount() {
		s.state, _ = Next(s.state, EventCaptureDone)
	}
	return nil
}

// SetText updates the event and footer labels.
func (s *Session) SetText(event, footer string) {
	s.eventText = event
	s.footerText = footer
}

// AddSticker places a sticker at canvas-relative percentage coordinates and
// returns its id. New stickers stack above earlier ones.
func (s *Session) AddSticker(kind filmstrip.StickerKind, x, y float64) int {
	id := s.nextID
	s.nextID++

	s.stickers = append(s.stickers, filmstrip.StickerPlacement{
		ID:    id,
		Kind:  kind,
		X:     x,
		Y:     y,
		Scale: 1,
	})
	return id
}

// MoveSticker updates position only.
func (s *Session) MoveSticker(id int, x, y float64) error {
	p, err := s.sticker(id)
	if err != nil {
		return err
	}
	p.X = x
	p.Y = y
	return nil
}

// ResizeSticker updates scale only, clamped into the configured bounds.
func (s *Session) ResizeSticker(id int, scale float64) error {
	p, err := s.sticker(id)
	if err != nil {
		return err
	}
	p.Scale = filmstrip.ClampScale(scale)
	return nil
}

// RotateSticker updates rotation only. Degrees are not wrapped.
func (s *Session) RotateSticker(id int, degrees float64) error {
	p, err := s.sticker(id)
	if err != nil {
		return err
	}
	p.Rotation = degrees
	return nil
}

// RemoveSticker deletes one placement.
func (s *Session) RemoveSticker(id int) error {
	for i, p := range s.stickers {
		if p.ID == id {
			s.stickers = append(s.stickers[:i], s.stickers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no sticker %d", id)
}

// Stickers returns a copy of the current placements in insertion order.
func (s *Session) Stickers() []filmstrip.StickerPlacement {
	out := make([]filmstrip.StickerPlacement, len(s.stickers))
	copy(out, s.stickers)
	return out
}

// Snapshot freezes the session into a render request. The slices are copies,
// so later edits never race an in-flight render.
func (s *Session) Snapshot() *filmstrip.Request {
	photos := make([]*filmstrip.CapturedPhoto, len(s.photos))
	copy(photos, s.photos)

	return &filmstrip.Request{
		Layout:     s.layout,
		Photos:     photos,
		EventText:  s.eventText,
		FooterText: s.footerText,
		Stickers:   s.Stickers(),
		Design:     s.design,
		Filter:     s.filter,
	}
}

// Finalize moves the session to the final step and returns the snapshot.
func (s *Session) Finalize() (*filmstrip.Request, error) {
	next, err := Next(s.state, EventEditDone)
	if err != nil {
		return nil, err
	}
	s.state = next
	return s.Snapshot(), nil
}

// Reset drops all photos, stickers and text and returns to layout choice.
func (s *Session) Reset() {
	klog.V(1).Infof("session reset from state %s", s.state)
	s.state = StateLayout
	s.photos = nil
	s.stickers = nil
	s.eventText = ""
	s.footerText = ""
	s.nextID = 1
}

func (s *Session) sticker(id int) (*filmstrip.StickerPlacement, error) {
	for i := range s.stickers {
		if s.stickers[i].ID == id {
			return &s.stickers[i], nil
		}
	}
	return nil, fmt.Errorf("no sticker %d", id)
}
