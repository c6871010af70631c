package aggregating

import (
	"context"

	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
	"github.com/WangWilly/threadStats/pkgs/workers"
	log "github.com/sirupsen/logrus"
)

// joinMetrics fetches the named metrics for every post with a bounded
// fan-out and waits for all requests to settle. A failed or malformed
// insights response affects only its own post: that post keeps zero
// metrics and the join carries on.
func (s *Service) joinMetrics(ctx context.Context, token string, posts []threadsclient.Post, metricNames string) []RankedPost {
	results := workers.Map(ctx, posts, s.cfg.MaxInsightRoutine,
		func(ctx context.Context, post threadsclient.Post) (threadsclient.Metrics, error) {
			insightCtx, cancel := context.WithTimeout(ctx, s.cfg.InsightTimeout)
			defer cancel()
			return s.client.GetPostInsights(insightCtx, token, post.ID, metricNames)
		},
	)

	joined := make([]RankedPost, len(posts))
	for i, post := range posts {
		joined[i] = RankedPost{Post: post}

		if err := results[i].Err; err != nil {
			log.WithFields(log.Fields{
				"caller": "Service.joinMetrics",
				"postId": post.ID,
			}).WithError(err).Warn("failed to fetch insights, keeping zero metrics")
			continue
		}

		joined[i].Metrics = results[i].Value
	}

	return joined
}
