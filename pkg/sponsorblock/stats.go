package sponsorblock

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/wasi-master/gosponsorblock/pkg/sponsorblock/types"
)

// TotalStats fetches the database-wide totals. Counting contributing
// users is noticeably more expensive server-side, so it is opt-in; when
// false, UserCount stays zero.
func (c *Client) TotalStats(countContributingUsers bool) (types.TotalStats, error) {
	key := cacheKey("totalStats", strconv.FormatBool(countContributingUsers))
	return cachedCall(c.cache, key, totalStatsTTL, func() (types.TotalStats, error) {
		var w struct {
			UserCount        int     `json:"userCount"`
			ActiveUsers      int     `json:"activeUsers"`
			APIUsers         int     `json:"apiUsers"`
			ViewCount        int     `json:"viewCount"`
			TotalSubmissions int     `json:"totalSubmissions"`
			MinutesSaved     float64 `json:"minutesSaved"`
		}
		params := url.Values{"countContributingUsers": {strconv.FormatBool(countContributingUsers)}}
		if err := c.getJSON("/api/getTotalStats", params, &w); err != nil {
			return types.TotalStats{}, err
		}
		return types.TotalStats{
			UserCount:        w.UserCount,
			ActiveUsers:      w.ActiveUsers,
			APIUsers:         w.APIUsers,
			ViewCount:        w.ViewCount,
			TotalSubmissions: w.TotalSubmissions,
			MinutesSaved:     w.MinutesSaved,
		}, nil
	})
}

// SavedDaysFormatted returns the total days of viewer time saved,
// pre-rounded by the server. The server sends the value either as a
// number or a formatted string depending on version, so both are
// accepted.
func (c *Client) SavedDaysFormatted() (float64, error) {
	return cachedCall(c.cache, cacheKey("savedDaysFormatted"), totalStatsTTL, func() (float64, error) {
		var w struct {
			DaysSaved any `json:"daysSaved"`
		}
		if err := c.getJSON("/api/getDaysSavedFormatted", nil, &w); err != nil {
			return 0, err
		}
		switch v := w.DaysSaved.(type) {
		case float64:
			return v, nil
		case string:
			days, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0, &InvalidJSONError{Body: v, cause: err}
			}
			return days, nil
		default:
			return 0, &InvalidJSONError{cause: errors.Errorf("unexpected daysSaved type %T", v)}
		}
	})
}
