package domain

// Tone is the visual category a status maps to on the dashboard.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
	ToneNegative Tone = "negative"
)

// BadgeInfo is display metadata for a campaign status.
type BadgeInfo struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

// Badge maps a status to its display metadata. The function is total: an
// unrecognized status falls back to a neutral badge carrying the raw value
// rather than failing.
func Badge(s Status) BadgeInfo {
	switch s {
	case StatusDraft:
		return BadgeInfo{Label: "Draft", Tone: ToneNeutral}
	case StatusPending:
		return BadgeInfo{Label: "Pending", Tone: ToneWarning}
	case StatusActive:
		return BadgeInfo{Label: "Active", Tone: TonePositive}
	case StatusPaused:
		return BadgeInfo{Label: "Paused", Tone: ToneWarning}
	case StatusStopped:
		return BadgeInfo{Label: "Stopped", Tone: ToneNeutral}
	case StatusFailed:
		return BadgeInfo{Label: "Failed", Tone: ToneNegative}
	default:
		return BadgeInfo{Label: string(s), Tone: ToneNeutral}
	}
}
