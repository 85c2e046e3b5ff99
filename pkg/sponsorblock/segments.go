package sponsorblock

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/wasi-master/gosponsorblock/pkg/sponsorblock/types"
)

// Vote is the direction of a vote on a segment.
type Vote int

const (
	VoteDown Vote = 0
	VoteUp   Vote = 1
	VoteUndo Vote = 20
)

// SegmentQuery narrows a skip-segment lookup.
type SegmentQuery struct {
	// Categories to return. The client's default categories when empty.
	Categories []types.Category
	// RequiredSegments are segment UUIDs returned even when they do not
	// meet the vote threshold.
	RequiredSegments []string
	// Service overrides the client's video service for this call.
	Service string
}

// segmentWire is the shape of one segment in a skipSegments response.
type segmentWire struct {
	Category      string    `json:"category"`
	ActionType    string    `json:"actionType"`
	Segment       []float64 `json:"segment"`
	UUID          string    `json:"UUID"`
	Locked        int       `json:"locked"`
	Votes         int       `json:"votes"`
	VideoDuration float64   `json:"videoDuration"`
	Description   string    `json:"description"`
}

// hashedWire is one entry of a K-anonymity response: every video whose
// hashed id shares the requested prefix.
type hashedWire struct {
	VideoID  string        `json:"videoID"`
	Hash     string        `json:"hash"`
	Segments []segmentWire `json:"segments"`
}

// SkipSegments returns the skip segments of a video, most recent vote
// ordering preserved from the server. video may be a bare 11-character
// id or a full watch/embed URL. With no categories the client's default
// set is requested. A video without segments yields a NotFoundError.
func (c *Client) SkipSegments(video string, categories ...types.Category) ([]types.Segment, error) {
	return c.SkipSegmentsQuery(video, SegmentQuery{Categories: categories})
}

// SkipSegmentsQuery is SkipSegments with the full set of query knobs.
func (c *Client) SkipSegmentsQuery(video string, q SegmentQuery) ([]types.Segment, error) {
	videoID, err := extractVideoID(video)
	if err != nil {
		return nil, err
	}
	categories, service := c.fillQuery(&q)

	key := cacheKey("skipSegments", videoID, service, join(categories), strings.Join(q.RequiredSegments, ","))
	return cachedCall(c.cache, key, skipSegmentsTTL, func() ([]types.Segment, error) {
		params, err := segmentParams(q)
		if err != nil {
			return nil, err
		}
		params.Set("videoID", videoID)

		var wires []segmentWire
		if err := c.getJSON("/api/skipSegments", params, &wires); err != nil {
			return nil, err
		}
		return decodeSegments(videoID, wires)
	})
}

// SkipSegmentsHashed behaves like SkipSegmentsQuery but only reveals a
// short sha256 prefix of the video id to the server (K-anonymity). The
// server answers with every matching video; the requested one is picked
// out locally.
func (c *Client) SkipSegmentsHashed(video string, q SegmentQuery) ([]types.Segment, error) {
	videoID, err := extractVideoID(video)
	if err != nil {
		return nil, err
	}
	categories, service := c.fillQuery(&q)

	key := cacheKey("skipSegmentsHashed", videoID, service, join(categories), strings.Join(q.RequiredSegments, ","))
	return cachedCall(c.cache, key, skipSegmentsTTL, func() ([]types.Segment, error) {
		params, err := segmentParams(q)
		if err != nil {
			return nil, err
		}

		var matches []hashedWire
		prefix := hashedVideoIDPrefix(videoID, c.hashLength)
		if err := c.getJSON("/api/skipSegments/"+prefix, params, &matches); err != nil {
			return nil, err
		}
		for _, match := range matches {
			if match.VideoID == videoID {
				return decodeSegments(videoID, match.Segments)
			}
		}
		return nil, noSegmentsError(videoID)
	})
}

// SubmitSegments submits one or more new segments for a video. Only
// Category, Start, End and optionally ActionType of each segment are
// sent; everything else is server-assigned.
func (c *Client) SubmitSegments(video string, segments ...types.Segment) error {
	if len(segments) == 0 {
		return errors.New("at least one segment is required")
	}
	videoID, err := extractVideoID(video)
	if err != nil {
		return err
	}

	type submissionWire struct {
		Segment    []float64 `json:"segment"`
		Category   string    `json:"category"`
		ActionType string    `json:"actionType,omitempty"`
	}
	wires := make([]submissionWire, 0, len(segments))
	for _, s := range segments {
		if s.Category == "" {
			return errors.New("segment category must not be empty")
		}
		if s.Start >= s.End && s.ActionType != types.ActionPOI {
			return errors.Errorf("segment start %v must be before end %v", s.Start, s.End)
		}
		wires = append(wires, submissionWire{
			Segment:    []float64{s.Start, s.End},
			Category:   string(s.Category),
			ActionType: string(s.ActionType),
		})
	}

	body := map[string]any{
		"videoID":   videoID,
		"userID":    c.userID,
		"userAgent": c.userAgent,
		"service":   c.service,
		"segments":  wires,
	}
	return c.postJSON("/api/skipSegments", body)
}

// VoteSegment votes a segment up, down, or undoes a previous vote.
func (c *Client) VoteSegment(uuid string, vote Vote) error {
	params := url.Values{}
	params.Set("UUID", uuid)
	params.Set("userID", c.userID)
	params.Set("type", strconv.Itoa(int(vote)))
	return c.postQuery("/api/voteOnSponsorTime", params)
}

// VoteCategory suggests a different category for a segment.
func (c *Client) VoteCategory(uuid string, category types.Category) error {
	if category == "" {
		return errors.New("category must not be empty")
	}
	params := url.Values{}
	params.Set("UUID", uuid)
	params.Set("userID", c.userID)
	params.Set("category", string(category))
	return c.postQuery("/api/voteOnSponsorTime", params)
}

// ViewedSegment tells the server a segment was acted on, which feeds the
// view counters.
func (c *Client) ViewedSegment(uuid string) error {
	params := url.Values{}
	params.Set("UUID", uuid)
	return c.postQuery("/api/viewedVideoSponsorTime", params)
}

// segmentInfoWire is the shape of one row in a segmentInfo response.
type segmentInfoWire struct {
	VideoID       string  `json:"videoID"`
	StartTime     float64 `json:"startTime"`
	EndTime       float64 `json:"endTime"`
	Votes         int     `json:"votes"`
	Locked        int     `json:"locked"`
	UUID          string  `json:"UUID"`
	UserID        string  `json:"userID"`
	TimeSubmitted int64   `json:"timeSubmitted"`
	Views         int     `json:"views"`
	Category      string  `json:"category"`
	ActionType    string  `json:"actionType"`
	Service       string  `json:"service"`
	VideoDuration float64 `json:"videoDuration"`
	Hidden        int     `json:"hidden"`
	Reputation    float64 `json:"reputation"`
	ShadowHidden  int     `json:"shadowHidden"`
	HashedVideoID string  `json:"hashedVideoID"`
	UserAgent     string  `json:"userAgent"`
}

// SegmentInfo looks up the full database rows for the given segment
// UUIDs.
func (c *Client) SegmentInfo(uuids ...string) ([]types.SegmentInfo, error) {
	if len(uuids) == 0 {
		return nil, errors.New("at least one segment uuid is required")
	}

	key := cacheKey("segmentInfo", uuids...)
	return cachedCall(c.cache, key, segmentInfoTTL, func() ([]types.SegmentInfo, error) {
		params := url.Values{"UUID": uuids}
		var wires []segmentInfoWire
		if err := c.getJSON("/api/segmentInfo", params, &wires); err != nil {
			return nil, err
		}

		infos := make([]types.SegmentInfo, 0, len(wires))
		for _, w := range wires {
			infos = append(infos, types.SegmentInfo{
				VideoID:       w.VideoID,
				Start:         w.StartTime,
				End:           w.EndTime,
				Votes:         w.Votes,
				Locked:        w.Locked != 0,
				UUID:          w.UUID,
				UserID:        w.UserID,
				TimeSubmitted: time.UnixMilli(w.TimeSubmitted),
				Views:         w.Views,
				Category:      types.Category(w.Category),
				ActionType:    types.ActionType(w.ActionType),
				Service:       w.Service,
				VideoDuration: w.VideoDuration,
				Hidden:        w.Hidden != 0,
				Reputation:    w.Reputation,
				ShadowHidden:  w.ShadowHidden != 0,
				HashedVideoID: w.HashedVideoID,
				UserAgent:     w.UserAgent,
			})
		}
		return infos, nil
	})
}

func (c *Client) fillQuery(q *SegmentQuery) ([]types.Category, string) {
	if len(q.Categories) == 0 {
		q.Categories = c.categories
	}
	if q.Service == "" {
		q.Service = c.service
	}
	return q.Categories, q.Service
}

// segmentParams encodes the shared skipSegments query parameters. The
// category and requiredSegments filters go over the wire as JSON-encoded
// array strings.
func segmentParams(q SegmentQuery) (url.Values, error) {
	params := url.Values{}
	encoded, err := json.Marshal(q.Categories)
	if err != nil {
		return nil, errors.Wrap(err, "encoding categories")
	}
	params.Set("categories", string(encoded))
	if len(q.RequiredSegments) > 0 {
		encoded, err = json.Marshal(q.RequiredSegments)
		if err != nil {
			return nil, errors.Wrap(err, "encoding required segments")
		}
		params.Set("requiredSegments", string(encoded))
	}
	params.Set("service", q.Service)
	return params, nil
}

// decodeSegments validates and converts a wire response. Parsing is
// strict on the required fields and a single malformed entry fails the
// whole call; unknown categories and action types pass through.
func decodeSegments(videoID string, wires []segmentWire) ([]types.Segment, error) {
	if len(wires) == 0 {
		return nil, noSegmentsError(videoID)
	}
	segments := make([]types.Segment, 0, len(wires))
	for i, w := range wires {
		switch {
		case w.UUID == "":
			return nil, malformedSegment(i, "missing UUID")
		case w.Category == "":
			return nil, malformedSegment(i, "missing category")
		case len(w.Segment) != 2:
			return nil, malformedSegment(i, fmt.Sprintf("segment has %d offsets, want 2", len(w.Segment)))
		case w.Segment[1] < w.Segment[0]:
			return nil, malformedSegment(i, fmt.Sprintf("end %v before start %v", w.Segment[1], w.Segment[0]))
		}
		segments = append(segments, types.Segment{
			Category:      types.Category(w.Category),
			ActionType:    types.ActionType(w.ActionType),
			Start:         w.Segment[0],
			End:           w.Segment[1],
			UUID:          w.UUID,
			Locked:        w.Locked != 0,
			Votes:         w.Votes,
			VideoDuration: w.VideoDuration,
			Description:   w.Description,
		})
	}
	return segments, nil
}

func noSegmentsError(videoID string) error {
	return &NotFoundError{HTTPError{Message: fmt.Sprintf("no segments found for video %s", videoID)}}
}

func malformedSegment(index int, detail string) error {
	return &InvalidJSONError{cause: errors.Errorf("segment %d: %s", index, detail)}
}

func join(categories []types.Category) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}
