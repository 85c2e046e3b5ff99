package types

import (
	"fmt"
	"strings"
	"time"
)

// UserInfo is the server's view of a single contributor.
type UserInfo struct {
	UserID              string
	UserName            string
	MinutesSaved        float64
	SegmentCount        int
	IgnoredSegmentCount int
	ViewCount           int
	IgnoredViewCount    int
	Warnings            int
	Reputation          float64
	VIP                 bool
	LastSegmentID       string
}

// TimeSaved returns the cumulative time this user saved viewers.
func (u UserInfo) TimeSaved() time.Duration {
	return time.Duration(u.MinutesSaved * float64(time.Minute))
}

// TimeSavedString renders the saved time as "3d 4h 12m".
func (u UserInfo) TimeSavedString() string {
	return formatMinutes(u.MinutesSaved)
}

// TopUser is one entry of the leaderboard. Rank is assigned from the
// position in the server response, starting at 1.
type TopUser struct {
	Rank             int
	UserName         string
	ViewCount        int
	TotalSubmissions int
	MinutesSaved     float64
}

// SearchedUser pairs a user name with the public user id it resolves to.
type SearchedUser struct {
	UserName string
	UserID   string
}

// SortType selects the leaderboard metric for TopUsers.
type SortType int

const (
	SortByMinutesSaved SortType = iota
	SortByViewCount
	SortByTotalSubmissions
)

func (s SortType) String() string {
	switch s {
	case SortByMinutesSaved:
		return "minutesSaved"
	case SortByViewCount:
		return "viewCount"
	case SortByTotalSubmissions:
		return "totalSubmissions"
	}
	return fmt.Sprintf("SortType(%d)", int(s))
}

func formatMinutes(minutes float64) string {
	d := time.Duration(minutes * float64(time.Minute))
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if hours > 0 || days > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	fmt.Fprintf(&b, "%dm", mins)
	return b.String()
}
