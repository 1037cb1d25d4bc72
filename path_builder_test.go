package easel

import "testing"

func TestPathBuilderSegments(t *testing.T) {
	path := BuildPath().
		MoveTo(0, 0).
		LineTo(10, 0).
		QuadTo(15, 5, 10, 10).
		CubicTo(8, 12, 4, 12, 0, 10).
		Close().
		Build()

	segs := path.Segments()
	if len(segs) != 5 {
		t.Fatalf("len(Segments()) = %d, want 5", len(segs))
	}

	if mv, ok := segs[0].(MoveTo); !ok || mv.Point != Pt(0, 0) {
		t.Errorf("segs[0] = %#v, want MoveTo(0,0)", segs[0])
	}
	if ln, ok := segs[1].(LineTo); !ok || ln.Point != Pt(10, 0) {
		t.Errorf("segs[1] = %#v, want LineTo(10,0)", segs[1])
	}
	if q, ok := segs[2].(QuadTo); !ok || q.Control != Pt(15, 5) || q.Point != Pt(10, 10) {
		t.Errorf("segs[2] = %#v, want QuadTo", segs[2])
	}
	if c, ok := segs[3].(CubicTo); !ok || c.Control1 != Pt(8, 12) || c.Control2 != Pt(4, 12) || c.Point != Pt(0, 10) {
		t.Errorf("segs[3] = %#v, want CubicTo", segs[3])
	}
	if _, ok := segs[4].(Close); !ok {
		t.Errorf("segs[4] = %#v, want Close", segs[4])
	}
}

func TestPathBuilderArcAndRect(t *testing.T) {
	path := BuildPath().
		ArcTo(50, 50, 25, 0, 3.14).
		RectTo(1, 2, 3, 4).
		Build()

	segs := path.Segments()
	if len(segs) != 2 {
		t.Fatalf("len(Segments()) = %d, want 2", len(segs))
	}
	arc, ok := segs[0].(ArcTo)
	if !ok {
		t.Fatalf("segs[0] = %#v, want ArcTo", segs[0])
	}
	if arc.Center != Pt(50, 50) || arc.Radius != 25 || arc.StartAngle != 0 || arc.SweepAngle != 3.14 {
		t.Errorf("ArcTo = %+v", arc)
	}
	rect, ok := segs[1].(RectTo)
	if !ok {
		t.Fatalf("segs[1] = %#v, want RectTo", segs[1])
	}
	if rect.Point != Pt(1, 2) || rect.Width != 3 || rect.Height != 4 {
		t.Errorf("RectTo = %+v", rect)
	}
}

func TestEmptyPath(t *testing.T) {
	if !BuildPath().Build().Empty() {
		t.Error("Empty() = false for a path with no segments")
	}
	if BuildPath().MoveTo(1, 1).Build().Empty() {
		t.Error("Empty() = true for a path with segments")
	}
}
