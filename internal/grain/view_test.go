package grain

import "testing"

func TestGrainsInView_InsideTrack(t *testing.T) {
	s := threeGrains()

	startIdx, endIdx := GrainsInView(s, View{Start: 5, End: 25})
	if startIdx != 0 || endIdx != 2 {
		t.Fatalf("GrainsInView = (%d, %d), want (0, 2)", startIdx, endIdx)
	}

	// A view ending exactly on a boundary does not pull in the next grain.
	startIdx, endIdx = GrainsInView(s, View{Start: 10, End: 20})
	if startIdx != 1 || endIdx != 1 {
		t.Fatalf("GrainsInView aligned = (%d, %d), want (1, 1)", startIdx, endIdx)
	}
}

func TestGrainsInView_ClampsPastTrackEnd(t *testing.T) {
	s := threeGrains()

	startIdx, endIdx := GrainsInView(s, View{Start: 25, End: 50})
	if startIdx != 2 || endIdx != 2 {
		t.Fatalf("GrainsInView = (%d, %d), want (2, 2)", startIdx, endIdx)
	}
}

func TestGrainsToShow_ViewBeyondBothTrackEdges(t *testing.T) {
	s := threeGrains()

	shown := GrainsToShow(s, View{Start: -5, End: 25})

	if len(shown) != 5 {
		t.Fatalf("expected start filler + 3 grains + end filler, got %d", len(shown))
	}

	start := shown[0]
	if !start.Filler || start.Start != -5 || start.End != 0 || start.More {
		t.Fatalf("start filler = %+v, want filler [-5, 0) more=false", start)
	}

	// Real grains clipped to the view: the last one stops at sample 25.
	lastReal := shown[3]
	if lastReal.Filler || lastReal.Start != 20 || lastReal.End != 25 {
		t.Fatalf("last real grain = %+v, want [20, 25)", lastReal)
	}

	end := shown[4]
	if !end.Filler || end.Start != 25 || end.End != 25 {
		t.Fatalf("end filler = %+v, want zero-length at 25", end)
	}
	if !end.More {
		t.Fatalf("end filler More = false, want true: track content continues past 25")
	}
}

func TestGrainsToShow_CoversViewExactly(t *testing.T) {
	s := threeGrains()

	views := []View{
		{Start: 0, End: 30},
		{Start: 5, End: 25},
		{Start: 10, End: 20},
		{Start: 12, End: 13},
	}
	for _, v := range views {
		shown := GrainsToShow(s, v)
		if shown[0].Start != v.Start || shown[len(shown)-1].End != v.End {
			t.Fatalf("view %+v: shown span [%d, %d)", v, shown[0].Start, shown[len(shown)-1].End)
		}
		for i := 1; i < len(shown); i++ {
			if shown[i-1].End != shown[i].Start {
				t.Fatalf("view %+v: gap between shown[%d] and shown[%d]: %+v", v, i-1, i, shown)
			}
		}
		if !shown[0].Filler || !shown[len(shown)-1].Filler {
			t.Fatalf("view %+v: missing edge fillers: %+v", v, shown)
		}
	}
}

func TestGrainsToShow_ViewEntirelyPastTrack(t *testing.T) {
	s := threeGrains()

	shown := GrainsToShow(s, View{Start: 35, End: 40})

	if shown[0].Start != 35 || shown[len(shown)-1].End != 40 {
		t.Fatalf("shown span [%d, %d), want [35, 40)", shown[0].Start, shown[len(shown)-1].End)
	}
	for i, g := range shown {
		if g.Start < 35 || g.End > 40 {
			t.Fatalf("shown[%d] = %+v escapes the view window", i, g)
		}
		if i > 0 && shown[i-1].End != g.Start {
			t.Fatalf("gap between shown[%d] and shown[%d]: %+v", i-1, i, shown)
		}
	}

	end := shown[len(shown)-1]
	if !end.Filler || end.Start != 35 || end.End != 40 {
		t.Fatalf("end filler = %+v, want filler [35, 40)", end)
	}
	if end.More {
		t.Fatalf("end filler More = true, no content exists past sample 40")
	}
}

func TestGrainsToShow_ViewEntirelyBeforeTrack(t *testing.T) {
	s := threeGrains()

	shown := GrainsToShow(s, View{Start: -10, End: -5})

	start := shown[0]
	if !start.Filler || start.Start != -10 || start.End != -5 {
		t.Fatalf("start filler = %+v, want filler [-10, -5)", start)
	}
	for i, g := range shown {
		if g.Start < -10 || g.End > -5 {
			t.Fatalf("shown[%d] = %+v escapes the view window", i, g)
		}
		if i > 0 && shown[i-1].End != g.Start {
			t.Fatalf("gap between shown[%d] and shown[%d]: %+v", i-1, i, shown)
		}
	}
	if end := shown[len(shown)-1]; !end.More {
		t.Fatalf("end filler More = false, want true: the whole track lies past the view")
	}
}

func TestGrainsToShow_MoreFlags(t *testing.T) {
	s := threeGrains()

	cases := []struct {
		name      string
		view      View
		wantStart bool
		wantEnd   bool
	}{
		{"full track", View{0, 30}, false, false},
		{"middle grain only", View{10, 20}, true, true},
		{"past both edges", View{-10, 40}, false, false},
		{"tail of track", View{25, 40}, true, false},
		{"ends inside last grain", View{0, 25}, false, true},
	}
	for _, tc := range cases {
		shown := GrainsToShow(s, tc.view)
		start, end := shown[0], shown[len(shown)-1]
		if start.More != tc.wantStart {
			t.Fatalf("%s: start filler More = %v, want %v", tc.name, start.More, tc.wantStart)
		}
		if end.More != tc.wantEnd {
			t.Fatalf("%s: end filler More = %v, want %v", tc.name, end.More, tc.wantEnd)
		}
	}
}

func TestGrainsToShow_PreservesRealGrainMetadata(t *testing.T) {
	s := Sequence{
		{Start: 0, End: 10, Tags: map[string]string{"id": "a"}},
		{Start: 10, End: 20, Tags: map[string]string{"id": "b"}},
	}

	shown := GrainsToShow(s, View{Start: 5, End: 20})

	if shown[1].Tags["id"] != "a" || shown[2].Tags["id"] != "b" {
		t.Fatalf("metadata lost in view reconstruction: %+v", shown)
	}

	// The clipped copy must not share its map with the source grain.
	shown[1].Tags["id"] = "x"
	if s[0].Tags["id"] != "a" {
		t.Fatalf("source sequence metadata mutated via clipped grain")
	}
}
