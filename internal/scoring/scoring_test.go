package scoring

import "testing"

func TestScore_AdditiveRules(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want int
	}{
		{"zero", Input{VisitsCount: 1}, 0},
		{"repeat", Input{VisitsCount: 2}, 2},
		{"time", Input{VisitsCount: 1, TotalTimeOnPageMs: 60000}, 2},
		{"time below threshold", Input{VisitsCount: 1, TotalTimeOnPageMs: 59999}, 0},
		{"scroll", Input{VisitsCount: 1, MaxScrollPercentage: 50}, 1},
		{"key page", Input{VisitsCount: 1, VisitedKeyPage: true}, 2},
		{"cta", Input{VisitsCount: 1, CTAClicked: true}, 3},
		{"exit intent", Input{VisitsCount: 1, ExitIntentTriggered: true}, 3},
		{"video", Input{VisitsCount: 1, VideoEngaged: true}, 2},
		{"everything", Input{
			VisitsCount:         5,
			TotalTimeOnPageMs:   120000,
			MaxScrollPercentage: 90,
			VisitedKeyPage:      true,
			CTAClicked:          true,
			ExitIntentTriggered: true,
			VideoEngaged:        true,
		}, 15},
	}
	for _, tc := range cases {
		if got := Score(tc.in); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestScore_Monotonic(t *testing.T) {
	base := Input{VisitsCount: 2, TotalTimeOnPageMs: 60000}
	withMore := base
	withMore.CTAClicked = true
	if Score(withMore) < Score(base) {
		t.Fatal("adding a signal must never lower the score")
	}
}

func TestSegment_Boundaries(t *testing.T) {
	cases := map[int]string{
		0: "Casual", 2: "Casual",
		3: "Researcher", 5: "Researcher",
		6: "HighIntent", 8: "HighIntent",
		9: "Action", 15: "Action",
	}
	for score, want := range cases {
		if got := Segment(score); got != want {
			t.Errorf("score %d: got %s, want %s", score, got, want)
		}
	}
}

func TestDetectors(t *testing.T) {
	if !IsKeyPage("https://site.test/pricing?x=1") || IsKeyPage("/blog/post") || IsKeyPage("") {
		t.Fatal("key page detection")
	}
	if !IsCTAClick("btn-book-demo", "") || !IsCTAClick("", "/contact-us") || IsCTAClick("", "") {
		t.Fatal("cta detection")
	}
	if !IsExitIntent("EXIT_INTENT") || IsExitIntent("page_view") {
		t.Fatal("exit intent detection")
	}
	if !IsVideoEngaged("video_play") || IsVideoEngaged("click") {
		t.Fatal("video detection")
	}
	if !IsPageView("PAGE_VIEW") || !IsPageView("pageview") || IsPageView("click") {
		t.Fatal("page view detection")
	}
}

func TestFlags_Map(t *testing.T) {
	m := Flags{IsRepeatVisitor: true, CTAClicked: true}.Map()
	if !m["is_repeat_visitor"] || !m["cta_clicked"] {
		t.Fatalf("set flags missing: %v", m)
	}
	if m["video_engaged"] {
		t.Fatal("unset flag must be false")
	}
	if len(m) != 6 {
		t.Fatalf("expected all 6 flags present, got %d", len(m))
	}
}
