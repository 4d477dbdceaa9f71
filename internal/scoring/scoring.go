// Package scoring computes deterministic engagement scores and segments.
package scoring

import "strings"

// Flags are the boolean engagement signals derived per visitor.
type Flags struct {
	IsRepeatVisitor     bool `json:"is_repeat_visitor"`
	HighAttention       bool `json:"high_attention"`
	VisitedKeyPage      bool `json:"visited_key_page"`
	CTAClicked          bool `json:"cta_clicked"`
	ExitIntentTriggered bool `json:"exit_intent_triggered"`
	VideoEngaged        bool `json:"video_engaged"`
}

// Map renders the flags in their stored JSON shape.
func (f Flags) Map() map[string]bool {
	return map[string]bool{
		"is_repeat_visitor":     f.IsRepeatVisitor,
		"high_attention":        f.HighAttention,
		"visited_key_page":      f.VisitedKeyPage,
		"cta_clicked":           f.CTAClicked,
		"exit_intent_triggered": f.ExitIntentTriggered,
		"video_engaged":         f.VideoEngaged,
	}
}

// Input is the feature set the score is computed from.
type Input struct {
	VisitsCount         int
	TotalTimeOnPageMs   int
	MaxScrollPercentage float64
	VisitedKeyPage      bool
	CTAClicked          bool
	ExitIntentTriggered bool
	VideoEngaged        bool
}

// Score applies the additive rule table:
// +2 repeat visits, +2 total time >= 60s, +1 max scroll >= 50%,
// +2 key page, +3 CTA click, +3 exit intent, +2 video engagement.
// All rules are independent; the maximum is 15.
func Score(in Input) int {
	score := 0
	if in.VisitsCount >= 2 {
		score += 2
	}
	if in.TotalTimeOnPageMs >= 60000 {
		score += 2
	}
	if in.MaxScrollPercentage >= 50 {
		score += 1
	}
	if in.VisitedKeyPage {
		score += 2
	}
	if in.CTAClicked {
		score += 3
	}
	if in.ExitIntentTriggered {
		score += 3
	}
	if in.VideoEngaged {
		score += 2
	}
	return score
}

// Segment maps a score onto the engagement bands. Bounds are inclusive at
// the lower edge of each band.
func Segment(score int) string {
	switch {
	case score >= 9:
		return "Action"
	case score >= 6:
		return "HighIntent"
	case score >= 3:
		return "Researcher"
	default:
		return "Casual"
	}
}

var keyPageKeywords = []string{"pricing", "contact", "book", "demo", "thank-you", "checkout", "schedule"}

// IsKeyPage reports whether the URL points at a high-intent page.
func IsKeyPage(url string) bool {
	if url == "" {
		return false
	}
	lower := strings.ToLower(url)
	for _, kw := range keyPageKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

var ctaKeywords = []string{"contact", "pricing", "book", "schedule", "demo", "apply", "lead", "call", "button", "cta"}

// IsCTAClick reports whether the element identifier or URL indicates a
// call-to-action interaction.
func IsCTAClick(elementIdentifier, url string) bool {
	if elementIdentifier == "" && url == "" {
		return false
	}
	combined := strings.ToLower(elementIdentifier + " " + url)
	for _, kw := range ctaKeywords {
		if strings.Contains(combined, kw) {
			return true
		}
	}
	return false
}

// IsExitIntent reports whether the event type indicates exit intent.
func IsExitIntent(eventType string) bool {
	if eventType == "" {
		return false
	}
	lower := strings.ToLower(eventType)
	return strings.Contains(lower, "exit") || strings.Contains(lower, "intent") || strings.Contains(lower, "leave")
}

// IsVideoEngaged reports whether the event type indicates video engagement.
func IsVideoEngaged(eventType string) bool {
	if eventType == "" {
		return false
	}
	lower := strings.ToLower(eventType)
	return strings.Contains(lower, "video") || strings.Contains(lower, "play") || strings.Contains(lower, "watch")
}

// IsPageView reports whether the event type counts as a page view.
func IsPageView(eventType string) bool {
	lower := strings.ToLower(eventType)
	return strings.Contains(lower, "page_view") || strings.Contains(lower, "pageview") || lower == "view"
}
