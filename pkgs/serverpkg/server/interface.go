package server

import (
	"context"
	"time"

	"github.com/WangWilly/threadStats/pkgs/aggregating"
	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
	"github.com/WangWilly/threadStats/pkgs/utils"
)

type ActivityService interface {
	PostsForYear(ctx context.Context, token string, year int) ([]threadsclient.Post, error)
	DailyActivity(ctx context.Context, token string, year int, mode aggregating.Mode) ([]aggregating.DayBucket, error)
	DetailedActivity(ctx context.Context, token string, year int) (*aggregating.DetailedActivity, error)
	PostsForDate(ctx context.Context, token string, day time.Time, withViews bool) ([]aggregating.RankedPost, error)
}

type AccountClient interface {
	GetProfile(ctx context.Context, token string) (*threadsclient.Profile, error)
	GetAccountInsights(ctx context.Context, token string, window utils.TimeRange) ([]threadsclient.AccountMetric, error)
}
