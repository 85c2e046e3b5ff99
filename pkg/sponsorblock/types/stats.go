package types

import "time"

// TotalStats aggregates the whole database.
type TotalStats struct {
	UserCount        int // only populated when contributing users were counted
	ActiveUsers      int // public install counts from the extension stores
	APIUsers         int // 48-hour active API users
	ViewCount        int
	TotalSubmissions int
	MinutesSaved     float64
}

// DaysSaved converts the cumulative saved minutes into days.
func (t TotalStats) DaysSaved() float64 {
	return t.MinutesSaved / (60 * 24)
}

// SegmentInfo is the full database row behind a segment, as returned by
// the segmentInfo endpoint.
type SegmentInfo struct {
	VideoID       string
	Start         float64
	End           float64
	Votes         int
	Locked        bool
	UUID          string
	UserID        string
	TimeSubmitted time.Time
	Views         int
	Category      Category
	ActionType    ActionType
	Service       string
	VideoDuration float64
	Hidden        bool
	Reputation    float64
	ShadowHidden  bool
	HashedVideoID string
	UserAgent     string
}

// Duration returns End - Start as a time.Duration.
func (s SegmentInfo) Duration() time.Duration {
	return time.Duration((s.End - s.Start) * float64(time.Second))
}
