package filmstrip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeGeometryClosedForm(t *testing.T) {
	tests := []struct {
		name  string
		mode  LayoutMode
		count int
	}{
		{"single empty", Single, 0},
		{"single one", Single, 1},
		{"strip empty", Strip, 0},
		{"strip partial", Strip, 2},
		{"strip full", Strip, 4},
		{"strip overfull", Strip, 6},
		{"negative count", Single, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := ComputeGeometry(tc.mode, tc.count)

			n := tc.count
			if n < 0 {
				n = 0
			}
			want := 2*g.Margin + g.HeaderHeight + g.FooterHeight + n*g.SlotHeight
			if n > 0 {
				want += (n - 1) * g.SlotSpacing
			}
			if g.CanvasHeight != want {
				t.Errorf("CanvasHeight = %d, want %d", g.CanvasHeight, want)
			}

			if len(g.SlotYOffsets) != n {
				t.Errorf("got %d slot offsets, want %d", len(g.SlotYOffsets), n)
			}
			for i, y := range g.SlotYOffsets {
				want := g.Margin + g.HeaderHeight + i*(g.SlotHeight+g.SlotSpacing)
				if y != want {
					t.Errorf("SlotYOffsets[%d] = %d, want %d", i, y, want)
				}
			}
		})
	}
}

func TestComputeGeometryKnownSizes(t *testing.T) {
	g := ComputeGeometry(Single, 1)
	want := Geometry{
		CanvasWidth:  600,
		CanvasHeight: 740,
		Margin:       20,
		HeaderHeight: 60,
		FooterHeight: 80,
		SlotWidth:    560,
		SlotHeight:   560,
		SlotSpacing:  12,
		SlotYOffsets: []int{80},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("single geometry mismatch (-want +got):\n%s", diff)
	}

	if got := ComputeGeometry(Strip, 4).CanvasHeight; got != 1736 {
		t.Errorf("strip height = %d, want 1736", got)
	}
}

func TestComputeGeometryEmptyStillValid(t *testing.T) {
	g := ComputeGeometry(Strip, 0)
	if g.CanvasHeight != 2*g.Margin+g.HeaderHeight+g.FooterHeight {
		t.Errorf("empty strip height = %d", g.CanvasHeight)
	}
	if g.CanvasWidth != CanvasWidth {
		t.Errorf("width = %d, want %d", g.CanvasWidth, CanvasWidth)
	}
}

func TestComputeOverlayGeometryPinned(t *testing.T) {
	g := ComputeOverlayGeometry(Strip, 4, 800, 2400)
	if g.CanvasWidth != 600 {
		t.Errorf("width = %d, want 600", g.CanvasWidth)
	}
	if g.CanvasHeight != 1800 {
		t.Errorf("height = %d, want 1800 (2400 * 600/800)", g.CanvasHeight)
	}
	if len(g.SlotYOffsets) != 4 {
		t.Fatalf("got %d slots", len(g.SlotYOffsets))
	}
	for i, y := range g.SlotYOffsets {
		if y < 0 || y > g.CanvasHeight {
			t.Errorf("slot %d offset %d outside pinned canvas", i, y)
		}
	}
}

func TestComputeOverlayGeometryDegenerateArtwork(t *testing.T) {
	plain := ComputeGeometry(Single, 1)
	got := ComputeOverlayGeometry(Single, 1, 0, 0)
	if diff := cmp.Diff(plain, got); diff != "" {
		t.Errorf("degenerate overlay should fall back to plain (-want +got):\n%s", diff)
	}
}
