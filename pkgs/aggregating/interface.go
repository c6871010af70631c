package aggregating

import (
	"context"

	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
	"github.com/WangWilly/threadStats/pkgs/utils"
)

type ThreadsClient interface {
	ListPostsByTimeRange(ctx context.Context, token string, window utils.TimeRange) ([]threadsclient.Post, error)
	GetPostInsights(ctx context.Context, token string, postID string, metricNames string) (threadsclient.Metrics, error)
}
