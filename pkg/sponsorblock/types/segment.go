// Package types defines the response models returned by the SponsorBlock API.
package types

import "time"

// Category classifies what a segment contains (sponsor, intro, outro...).
// The server may introduce new categories at any time, so unknown values
// are carried through as-is instead of being rejected.
type Category string

const (
	CategorySponsor       Category = "sponsor"
	CategorySelfPromo     Category = "selfpromo"
	CategoryInteraction   Category = "interaction"
	CategoryIntro         Category = "intro"
	CategoryOutro         Category = "outro"
	CategoryPreview       Category = "preview"
	CategoryMusicOfftopic Category = "music_offtopic"
	CategoryHighlight     Category = "poi_highlight"
	CategoryFiller        Category = "filler"
)

// AllCategories lists the categories requested when the caller does not
// pick any. Matches the server's default submission categories.
var AllCategories = []Category{
	CategorySponsor,
	CategorySelfPromo,
	CategoryInteraction,
	CategoryIntro,
	CategoryOutro,
	CategoryPreview,
	CategoryMusicOfftopic,
	CategoryHighlight,
}

// ActionType describes what a player should do with a segment.
// Unknown values pass through unchanged, like Category.
type ActionType string

const (
	ActionSkip    ActionType = "skip"
	ActionMute    ActionType = "mute"
	ActionFull    ActionType = "full"
	ActionPOI     ActionType = "poi"
	ActionChapter ActionType = "chapter"
)

// Segment is a tagged time range in a video. Segments are read-only:
// they are built while decoding a server response and never mutated.
type Segment struct {
	Category      Category
	ActionType    ActionType
	Start         float64 // seconds from the beginning of the video
	End           float64 // seconds, End >= Start
	UUID          string
	Locked        bool
	Votes         int
	VideoDuration float64 // duration of the whole video, 0 when unknown
	Description   string  // chapter name, usually empty
}

// Duration returns End - Start as a time.Duration.
func (s Segment) Duration() time.Duration {
	return time.Duration((s.End - s.Start) * float64(time.Second))
}
