package threadsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/WangWilly/threadStats/pkgs/utils"
)

////////////////////////////////////////////////////////////////////////////////

type accountInsightsPayload struct {
	Data []struct {
		Name       string       `json:"name"`
		Period     string       `json:"period"`
		Values     []TimedValue `json:"values"`
		TotalValue *struct {
			Value int64 `json:"value"`
		} `json:"total_value"`
	} `json:"data"`
}

////////////////////////////////////////////////////////////////////////////////

// GetAccountInsights fetches the account-level metric series for the window
func (c *Client) GetAccountInsights(ctx context.Context, token string, window utils.TimeRange) ([]AccountMetric, error) {
	requestUrl := c.buildAccountInsightsUrl(token, window)

	resp, err := c.restyClient.R().SetContext(ctx).Get(requestUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to get account insights: %w", err)
	}

	if resp.IsError() {
		return nil, parseRemoteError(resp.StatusCode(), resp.Body())
	}

	var payload accountInsightsPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode account insights: %w", err)
	}

	metrics := make([]AccountMetric, 0, len(payload.Data))
	for _, entry := range payload.Data {
		metric := AccountMetric{
			Name:   entry.Name,
			Period: entry.Period,
			Values: entry.Values,
		}
		if entry.TotalValue != nil {
			metric.TotalValue = entry.TotalValue.Value
		}
		metrics = append(metrics, metric)
	}

	return metrics, nil
}

func (c *Client) buildAccountInsightsUrl(token string, window utils.TimeRange) string {
	u, _ := url.Parse(c.host)
	u = u.JoinPath(PATH_MY_INSIGHTS)

	params := url.Values{}
	params.Set("metric", ACCOUNT_METRIC_NAMES)
	params.Set("since", strconv.FormatInt(window.BeginUnix(), 10))
	params.Set("until", strconv.FormatInt(window.EndUnix(), 10))
	params.Set("access_token", token)

	u.RawQuery = params.Encode()
	return u.String()
}
