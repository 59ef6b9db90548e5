package booth

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tinybooth/filmstrip/pkg/filmstrip"
)

func TestNextTransitions(t *testing.T) {
	tests := []struct {
		from    State
		event   Event
		want    State
		wantErr bool
	}{
		{StateLayout, EventLayoutChosen, StateCapture, false},
		{StateCapture, EventCaptureDone, StateEdit, false},
		{StateEdit, EventEditDone, StateFinal, false},
		{StateLayout, EventCaptureDone, StateLayout, true},
		{StateCapture, EventEditDone, StateCapture, true},
		{StateFinal, EventLayoutChosen, StateFinal, true},
		{StateFinal, EventReset, StateLayout, false},
		{StateEdit, EventReset, StateLayout, false},
	}

	for _, tc := range tests {
		got, err := Next(tc.from, tc.event)
		if (err != nil) != tc.wantErr {
			t.Errorf("Next(%s, %d) error = %v, wantErr %v", tc.from, tc.event, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("Next(%s, %d) = %s, want %s", tc.from, tc.event, got, tc.want)
		}
	}
}

func photo() *filmstrip.CapturedPhoto {
	return &filmstrip.CapturedPhoto{CapturedAt: time.Now()}
}

func TestCaptureSequencing(t *testing.T) {
	s := NewSession()

	if err := s.AddPhoto(photo()); err == nil {
		t.Fatal("capture before layout choice should fail")
	}

	if err := s.ChooseLayout(filmstrip.Strip, filmstrip.Plain, filmstrip.FilterNone); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		if s.State() != StateCapture {
			t.Fatalf("state = %s before photo %d", s.State(), i)
		}
		if err := s.AddPhoto(photo()); err != nil {
			t.Fatalf("photo %d: %v", i, err)
		}
	}

	if s.State() != StateEdit {
		t.Errorf("state = %s after 4 photos, want edit", s.State())
	}
	if err := s.AddPhoto(photo()); err == nil {
		t.Error("fifth photo on a strip layout should be rejected")
	}
}

func TestSingleLayoutNeedsOnePhoto(t *testing.T) {
	s := NewSession()
	if err := s.ChooseLayout(filmstrip.Single, filmstrip.Plain, filmstrip.FilterNone); err != nil {
		t.Fatal(err)
	}
	if err := s.AddPhoto(photo()); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateEdit {
		t.Errorf("state = %s after 1 photo, want edit", s.State())
	}
}

func editSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	if err := s.ChooseLayout(filmstrip.Single, filmstrip.Plain, filmstrip.FilterNone); err != nil {
		t.Fatal(err)
	}
	if err := s.AddPhoto(photo()); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestResizeClampsRepeatedly(t *testing.T) {
	s := editSession(t)
	id := s.AddSticker(filmstrip.StickerHeart, 50, 50)

	for i := 0; i < 10; i++ {
		cur := s.Stickers()[0].Scale
		if err := s.ResizeSticker(id, cur*1.5); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Stickers()[0].Scale; got != filmstrip.MaxStickerScale {
		t.Errorf("scale after repeated grows = %v, want %v", got, filmstrip.MaxStickerScale)
	}

	for i := 0; i < 10; i++ {
		cur := s.Stickers()[0].Scale
		if err := s.ResizeSticker(id, cur*0.5); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Stickers()[0].Scale; got != filmstrip.MinStickerScale {
		t.Errorf("scale after repeated shrinks = %v, want %v", got, filmstrip.MinStickerScale)
	}
}

func TestMutationsAreIndependent(t *testing.T) {
	s := editSession(t)
	id := s.AddSticker(filmstrip.StickerStar, 30, 40)
	if err := s.ResizeSticker(id, 1.5); err != nil {
		t.Fatal(err)
	}

	before := s.Stickers()[0]

	if err := s.RotateSticker(id, 270); err != nil {
		t.Fatal(err)
	}
	after := s.Stickers()[0]
	if after.X != before.X || after.Y != before.Y || after.Scale != before.Scale {
		t.Errorf("rotation changed position/scale: %+v -> %+v", before, after)
	}

	if err := s.MoveSticker(id, 80, 10); err != nil {
		t.Fatal(err)
	}
	moved := s.Stickers()[0]
	if moved.Rotation != after.Rotation || moved.Scale != after.Scale {
		t.Errorf("move changed rotation/scale: %+v -> %+v", after, moved)
	}
}

func TestStickerInsertionOrderAndRemoval(t *testing.T) {
	s := editSession(t)
	a := s.AddSticker(filmstrip.StickerHeart, 10, 10)
	b := s.AddSticker(filmstrip.StickerStar, 20, 20)
	c := s.AddSticker(filmstrip.StickerBolt, 30, 30)

	ids := []int{}
	for _, p := range s.Stickers() {
		ids = append(ids, p.ID)
	}
	if diff := cmp.Diff([]int{a, b, c}, ids); diff != "" {
		t.Errorf("insertion order (-want +got):\n%s", diff)
	}

	if err := s.RemoveSticker(b); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Stickers()); got != 2 {
		t.Fatalf("have %d stickers after removal", got)
	}
	if err := s.RemoveSticker(b); err == nil {
		t.Error("removing a removed sticker should fail")
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := editSession(t)
	s.SetText("grad party", "class of 2026")
	id := s.AddSticker(filmstrip.StickerSparkle, 50, 50)

	req := s.Snapshot()

	// Mutations after the snapshot must not leak into it.
	if err := s.MoveSticker(id, 90, 90); err != nil {
		t.Fatal(err)
	}
	s.AddSticker(filmstrip.StickerBolt, 5, 5)

	if len(req.Stickers) != 1 {
		t.Fatalf("snapshot has %d stickers, want 1", len(req.Stickers))
	}
	if req.Stickers[0].X != 50 {
		t.Errorf("snapshot sticker moved to X=%v", req.Stickers[0].X)
	}
	if req.EventText != "grad party" || req.FooterText != "class of 2026" {
		t.Errorf("snapshot text = %q/%q", req.EventText, req.FooterText)
	}
}

func TestFinalizeAndReset(t *testing.T) {
	s := editSession(t)
	req, err := s.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != StateFinal {
		t.Errorf("state = %s, want final", s.State())
	}
	if len(req.Photos) != 1 {
		t.Errorf("snapshot has %d photos", len(req.Photos))
	}

	if _, err := s.Finalize(); err == nil {
		t.Error("double finalize should fail")
	}

	s.Reset()
	if s.State() != StateLayout {
		t.Errorf("state after reset = %s", s.State())
	}
	if len(s.Stickers()) != 0 {
		t.Error("stickers survived reset")
	}
}
