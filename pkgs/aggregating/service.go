package aggregating

import (
	"context"
	"fmt"
	"time"

	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
	"github.com/WangWilly/threadStats/pkgs/utils"
)

////////////////////////////////////////////////////////////////////////////////

// Mode selects what a day bucket counts
type Mode string

const (
	ModeCount    Mode = "count"
	ModeViews    Mode = "views"
	ModeDetailed Mode = "detailed"
)

// ParseMode parses the metric query parameter; empty means count
func ParseMode(value string) (Mode, error) {
	switch value {
	case "", string(ModeCount):
		return ModeCount, nil
	case string(ModeViews):
		return ModeViews, nil
	case string(ModeDetailed):
		return ModeDetailed, nil
	default:
		return "", fmt.Errorf("unknown metric mode %q", value)
	}
}

////////////////////////////////////////////////////////////////////////////////

// DetailedActivity is the detailed-mode result: the full per-day breakdown
// plus the top posts by views
type DetailedActivity struct {
	DailyStats []DetailedDayBucket `json:"dailyStats"`
	TopPosts   []RankedPost        `json:"topPosts"`
}

const topPostsLimit = 10

////////////////////////////////////////////////////////////////////////////////

type Config struct {
	MaxInsightRoutine int
	InsightTimeout    time.Duration
}

// Service aggregates the account's posts into daily stats. It holds no
// state between calls; every aggregation works on freshly fetched posts.
type Service struct {
	client ThreadsClient
	cfg    Config
	now    func() time.Time
}

func New(client ThreadsClient, cfg Config) *Service {
	if cfg.MaxInsightRoutine <= 0 {
		cfg.MaxInsightRoutine = 8
	}
	if cfg.InsightTimeout <= 0 {
		cfg.InsightTimeout = 10 * time.Second
	}

	return &Service{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

////////////////////////////////////////////////////////////////////////////////

// PostsForYear retrieves every post of the year via the collector
func (s *Service) PostsForYear(ctx context.Context, token string, year int) ([]threadsclient.Post, error) {
	return s.client.ListPostsByTimeRange(ctx, token, utils.YearWindow(year, s.now()))
}

// DailyActivity aggregates a year of posts into day buckets. ModeCount
// counts posts per day; ModeViews sums each day's view metric after the
// per-post insights join. A collector failure aborts the whole call.
func (s *Service) DailyActivity(ctx context.Context, token string, year int, mode Mode) ([]DayBucket, error) {
	posts, err := s.PostsForYear(ctx, token, year)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeViews:
		joined := s.joinMetrics(ctx, token, posts, threadsclient.METRIC_VIEWS)
		return ViewsByDay(joined), nil
	default:
		return CountByDay(posts), nil
	}
}

// DetailedActivity aggregates a year of posts into the full per-day metric
// breakdown plus the top posts list
func (s *Service) DetailedActivity(ctx context.Context, token string, year int) (*DetailedActivity, error) {
	posts, err := s.PostsForYear(ctx, token, year)
	if err != nil {
		return nil, err
	}

	joined := s.joinMetrics(ctx, token, posts, threadsclient.POST_METRIC_NAMES)

	return &DetailedActivity{
		DailyStats: DetailByDay(joined),
		TopPosts:   TopByViews(joined, topPostsLimit),
	}, nil
}

// PostsForDate retrieves the posts of one calendar day, optionally joined
// with their view counts
func (s *Service) PostsForDate(ctx context.Context, token string, day time.Time, withViews bool) ([]RankedPost, error) {
	posts, err := s.client.ListPostsByTimeRange(ctx, token, utils.DayWindow(day))
	if err != nil {
		return nil, err
	}

	if withViews {
		return s.joinMetrics(ctx, token, posts, threadsclient.METRIC_VIEWS), nil
	}

	joined := make([]RankedPost, len(posts))
	for i, post := range posts {
		joined[i] = RankedPost{Post: post}
	}
	return joined, nil
}
