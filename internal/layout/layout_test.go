package layout

import "testing"

func TestFieldFromViewport(t *testing.T) {
	f, err := Field(1280, 720)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Left != 36 || f.Top != 36 || f.Right != 1244 || f.Bottom != 684 {
		t.Fatalf("unexpected rectangle %+v", f)
	}
	if f.StartX != 116 || f.FinishX != 1164 {
		t.Fatalf("unexpected lines start=%v finish=%v", f.StartX, f.FinishX)
	}
}

func TestFieldGrowsTinyViewport(t *testing.T) {
	f, err := Field(10, 10)
	if err != nil {
		t.Fatalf("expected a tiny viewport to be grown, got %v", err)
	}
	if !(f.Left < f.StartX && f.StartX < f.FinishX && f.FinishX < f.Right) {
		t.Fatalf("lines out of order in %+v", f)
	}
}
