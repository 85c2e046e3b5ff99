// Command sponsorblock prints the skip segments of a video.
//
//	sponsorblock [flags] <video id or url>
package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/wasi-master/gosponsorblock/internal/config"
	"github.com/wasi-master/gosponsorblock/internal/logger"
	"github.com/wasi-master/gosponsorblock/internal/version"
	"github.com/wasi-master/gosponsorblock/pkg/sponsorblock"
	"github.com/wasi-master/gosponsorblock/pkg/sponsorblock/types"
)

// categoryStyles maps a category to its display name and color, matching
// the colors the browser extension uses.
var categoryStyles = map[types.Category]struct {
	name  string
	color lipgloss.Color
}{
	types.CategorySponsor:       {"Sponsor", "#00D400"},
	types.CategorySelfPromo:     {"Unpaid/Self Promotion", "#FFFF00"},
	types.CategoryInteraction:   {"Interaction Reminder", "#CC00FF"},
	types.CategoryIntro:         {"Intermission/Intro Animation", "#00FFFF"},
	types.CategoryOutro:         {"Endcards/Credits", "#0202ED"},
	types.CategoryPreview:       {"Preview/Recap", "#008FD6"},
	types.CategoryMusicOfftopic: {"Music: Non-Music Section", "#FF9900"},
	types.CategoryHighlight:     {"Point of Interest", "#FF1684"},
	types.CategoryFiller:        {"Filler", "#7300FF"},
}

func main() {
	configPath := flag.String("config", "", "path to the config file")
	baseURL := flag.String("base-url", "", "SponsorBlock server to use")
	timeout := flag.Duration("timeout", 0, "request timeout")
	categories := flag.String("categories", "", "comma-separated categories to fetch")
	hashed := flag.Bool("hashed", false, "use the K-anonymity lookup")
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	versionFlag := flag.Bool("version", false, "show version information")
	flag.Parse()

	if *versionFlag || version.HasVersionArg() {
		version.ShowVersion()
		return
	}

	logger.Init(*debugFlag)

	if flag.NArg() < 1 {
		logger.Fatal("no video id or url given")
	}
	video := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config", "error", err)
	}

	client, err := buildClient(cfg, *baseURL, *timeout)
	if err != nil {
		logger.Fatal("building client", "error", err)
	}

	query := sponsorblock.SegmentQuery{Categories: parseCategories(*categories, cfg.Categories)}
	var segments []types.Segment
	if *hashed {
		segments, err = client.SkipSegmentsHashed(video, query)
	} else {
		segments, err = client.SkipSegmentsQuery(video, query)
	}
	if err != nil {
		logger.Fatal("fetching segments", "error", err)
	}

	printSegments(segments)
}

func buildClient(cfg config.Config, baseURL string, timeout time.Duration) (*sponsorblock.Client, error) {
	var opts []sponsorblock.Option
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	if baseURL != "" {
		opts = append(opts, sponsorblock.WithBaseURL(baseURL))
	}
	if timeout == 0 {
		timeout = cfg.Timeout
	}
	if timeout != 0 {
		opts = append(opts, sponsorblock.WithTimeout(timeout))
	}
	if cfg.UserID != "" {
		opts = append(opts, sponsorblock.WithUserID(cfg.UserID))
	}
	if cfg.CacheTTL != 0 {
		opts = append(opts, sponsorblock.WithCacheTTL(cfg.CacheTTL))
	}
	return sponsorblock.New(opts...)
}

// parseCategories prefers the flag over the config file.
func parseCategories(flagValue string, fromConfig []string) []types.Category {
	var names []string
	if flagValue != "" {
		names = strings.Split(flagValue, ",")
	} else {
		names = fromConfig
	}
	categories := make([]types.Category, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			categories = append(categories, types.Category(trimmed))
		}
	}
	return categories
}

func printSegments(segments []types.Segment) {
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})
	for i, segment := range segments {
		name := string(segment.Category)
		style := lipgloss.NewStyle()
		if cs, ok := categoryStyles[segment.Category]; ok {
			name = cs.name
			style = style.Foreground(cs.color)
		}
		fmt.Println(style.Render(fmt.Sprintf(
			"Segment #%d (%s):\n\tStart: %s\n\tEnd: %s",
			i, name, formatOffset(segment.Start), formatOffset(segment.End),
		)))
	}
}

// formatOffset renders seconds as H:MM:SS.
func formatOffset(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
