package threadsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

////////////////////////////////////////////////////////////////////////////////

// insightsPayload is the wire shape of a per-post insights response.
// Values carry pointers so a missing value can be told apart from zero.
type insightsPayload struct {
	Data []struct {
		Name   string `json:"name"`
		Values []struct {
			Value *int64 `json:"value"`
		} `json:"values"`
		TotalValue *struct {
			Value *int64 `json:"value"`
		} `json:"total_value"`
	} `json:"data"`
}

////////////////////////////////////////////////////////////////////////////////

// GetPostInsights fetches the named engagement metrics for one post.
// metricNames is the comma-separated list to request, e.g. POST_METRIC_NAMES.
// The payload is decoded strictly: a malformed entry fails the whole call
// rather than silently defaulting mid-parse.
func (c *Client) GetPostInsights(ctx context.Context, token string, postID string, metricNames string) (Metrics, error) {
	requestUrl := c.buildPostInsightsUrl(token, postID, metricNames)

	resp, err := c.restyClient.R().SetContext(ctx).Get(requestUrl)
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to get insights for post %s: %w", postID, err)
	}

	if resp.IsError() {
		return Metrics{}, parseRemoteError(resp.StatusCode(), resp.Body())
	}

	return decodePostInsights(resp.Body())
}

func (c *Client) buildPostInsightsUrl(token string, postID string, metricNames string) string {
	u, _ := url.Parse(c.host)
	u = u.JoinPath(postID, "insights")

	params := url.Values{}
	params.Set("metric", metricNames)
	params.Set("access_token", token)

	u.RawQuery = params.Encode()
	return u.String()
}

////////////////////////////////////////////////////////////////////////////////

// decodePostInsights validates the insights payload into a Metrics record.
// Unknown metric names are ignored; metrics absent from the payload stay
// zero.
func decodePostInsights(body []byte) (Metrics, error) {
	var payload insightsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Metrics{}, fmt.Errorf("failed to decode insights payload: %w", err)
	}

	var metrics Metrics
	for _, entry := range payload.Data {
		if entry.Name == "" {
			return Metrics{}, fmt.Errorf("insights entry missing metric name")
		}

		value, err := insightValue(entry.TotalValue, entry.Values)
		if err != nil {
			return Metrics{}, fmt.Errorf("metric %s: %w", entry.Name, err)
		}

		switch entry.Name {
		case "views":
			metrics.Views = value
		case "likes":
			metrics.Likes = value
		case "replies":
			metrics.Replies = value
		case "reposts":
			metrics.Reposts = value
		case "quotes":
			metrics.Quotes = value
		}
	}

	return metrics, nil
}

func insightValue(
	totalValue *struct {
		Value *int64 `json:"value"`
	},
	values []struct {
		Value *int64 `json:"value"`
	},
) (int64, error) {
	var value int64
	switch {
	case totalValue != nil && totalValue.Value != nil:
		value = *totalValue.Value
	case len(values) > 0 && values[0].Value != nil:
		value = *values[0].Value
	default:
		return 0, fmt.Errorf("no value present")
	}

	if value < 0 {
		return 0, fmt.Errorf("negative value %d", value)
	}
	return value, nil
}
