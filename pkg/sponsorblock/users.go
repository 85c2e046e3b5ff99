package sponsorblock

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/wasi-master/gosponsorblock/pkg/sponsorblock/types"
)

type userInfoWire struct {
	UserID              string  `json:"userID"`
	UserName            string  `json:"userName"`
	MinutesSaved        float64 `json:"minutesSaved"`
	SegmentCount        int     `json:"segmentCount"`
	IgnoredSegmentCount int     `json:"ignoredSegmentCount"`
	ViewCount           int     `json:"viewCount"`
	IgnoredViewCount    int     `json:"ignoredViewCount"`
	Warnings            int     `json:"warnings"`
	Reputation          float64 `json:"reputation"`
	VIP                 bool    `json:"vip"`
	LastSegmentID       string  `json:"lastSegmentID"`
}

// UserInfo fetches the stats of a user. Pass the public user id of the
// user to look up, or the empty string for the user the client
// authenticates as.
func (c *Client) UserInfo(publicUserID string) (types.UserInfo, error) {
	key := cacheKey("userInfo", publicUserID)
	return cachedCall(c.cache, key, userInfoTTL, func() (types.UserInfo, error) {
		params := url.Values{}
		if publicUserID == "" {
			params.Set("userID", c.userID)
		} else {
			params.Set("publicUserID", publicUserID)
		}

		var w userInfoWire
		if err := c.getJSON("/api/userInfo", params, &w); err != nil {
			return types.UserInfo{}, err
		}
		return types.UserInfo{
			UserID:              w.UserID,
			UserName:            w.UserName,
			MinutesSaved:        w.MinutesSaved,
			SegmentCount:        w.SegmentCount,
			IgnoredSegmentCount: w.IgnoredSegmentCount,
			ViewCount:           w.ViewCount,
			IgnoredViewCount:    w.IgnoredViewCount,
			Warnings:            w.Warnings,
			Reputation:          w.Reputation,
			VIP:                 w.VIP,
			LastSegmentID:       w.LastSegmentID,
		}, nil
	})
}

// UserName returns the display name of the current user.
func (c *Client) UserName() (string, error) {
	return cachedCall(c.cache, cacheKey("userName"), userNameTTL, func() (string, error) {
		var out struct {
			UserName string `json:"userName"`
		}
		params := url.Values{"userID": {c.userID}}
		if err := c.getJSON("/api/getUsername", params, &out); err != nil {
			return "", err
		}
		return out.UserName, nil
	})
}

// SetUserName changes the display name of the current user.
func (c *Client) SetUserName(name string) error {
	if name == "" {
		return errors.New("user name must not be empty")
	}
	params := url.Values{}
	params.Set("userID", c.userID)
	params.Set("username", name)
	return c.postQuery("/api/setUsername", params)
}

// ViewsForUser returns how many times segments of the current user were
// skipped by viewers.
func (c *Client) ViewsForUser() (int, error) {
	return cachedCall(c.cache, cacheKey("viewsForUser"), userViewsTTL, func() (int, error) {
		var out struct {
			ViewCount int `json:"viewCount"`
		}
		params := url.Values{"userID": {c.userID}}
		if err := c.getJSON("/api/getViewsForUser", params, &out); err != nil {
			return 0, err
		}
		return out.ViewCount, nil
	})
}

// SavedTimeForUser returns the minutes of viewer time the current user's
// segments have saved.
func (c *Client) SavedTimeForUser() (float64, error) {
	return cachedCall(c.cache, cacheKey("savedTimeForUser"), userViewsTTL, func() (float64, error) {
		var out struct {
			TimeSaved float64 `json:"timeSaved"`
		}
		params := url.Values{"userID": {c.userID}}
		if err := c.getJSON("/api/getSavedTimeForUser", params, &out); err != nil {
			return 0, err
		}
		return out.TimeSaved, nil
	})
}

// SearchUsers resolves a user name to public user ids. With exact set,
// only users whose name matches exactly are returned.
func (c *Client) SearchUsers(userName string, exact bool) ([]types.SearchedUser, error) {
	if userName == "" {
		return nil, errors.New("user name must not be empty")
	}
	params := url.Values{}
	params.Set("username", userName)
	params.Set("exact", strconv.FormatBool(exact))

	var wires []struct {
		UserName string `json:"userName"`
		UserID   string `json:"userID"`
	}
	if err := c.getJSON("/api/userID", params, &wires); err != nil {
		return nil, err
	}
	users := make([]types.SearchedUser, 0, len(wires))
	for _, w := range wires {
		users = append(users, types.SearchedUser{UserName: w.UserName, UserID: w.UserID})
	}
	return users, nil
}

// topUsersWire is the parallel-array leaderboard response; entry i of
// each array describes the same user.
type topUsersWire struct {
	UserNames        []string  `json:"userNames"`
	ViewCounts       []int     `json:"viewCounts"`
	TotalSubmissions []int     `json:"totalSubmissions"`
	MinutesSaved     []float64 `json:"minutesSaved"`
}

// TopUsers returns the leaderboard ordered by the given metric. Rank is
// the position in the server response. An empty leaderboard is an empty
// slice, not an error.
func (c *Client) TopUsers(sort types.SortType) ([]types.TopUser, error) {
	key := cacheKey("topUsers", sort.String())
	return cachedCall(c.cache, key, topUsersTTL, func() ([]types.TopUser, error) {
		params := url.Values{"sortType": {strconv.Itoa(int(sort))}}
		var w topUsersWire
		if err := c.getJSON("/api/getTopUsers", params, &w); err != nil {
			return nil, err
		}
		return zipTopUsers(w), nil
	})
}

// TopCategoryUsers is TopUsers restricted to a single category.
func (c *Client) TopCategoryUsers(category types.Category, sort types.SortType) ([]types.TopUser, error) {
	if category == "" {
		return nil, errors.New("category must not be empty")
	}
	key := cacheKey("topCategoryUsers", string(category), sort.String())
	return cachedCall(c.cache, key, topUsersTTL, func() ([]types.TopUser, error) {
		params := url.Values{}
		params.Set("category", string(category))
		params.Set("sortType", strconv.Itoa(int(sort)))
		var w topUsersWire
		if err := c.getJSON("/api/getTopCategoryUsers", params, &w); err != nil {
			return nil, err
		}
		return zipTopUsers(w), nil
	})
}

// zipTopUsers joins the parallel arrays, stopping at the shortest one.
func zipTopUsers(w topUsersWire) []types.TopUser {
	n := len(w.UserNames)
	for _, l := range []int{len(w.ViewCounts), len(w.TotalSubmissions), len(w.MinutesSaved)} {
		if l < n {
			n = l
		}
	}
	users := make([]types.TopUser, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, types.TopUser{
			Rank:             i + 1,
			UserName:         w.UserNames[i],
			ViewCount:        w.ViewCounts[i],
			TotalSubmissions: w.TotalSubmissions[i],
			MinutesSaved:     w.MinutesSaved[i],
		})
	}
	return users
}
