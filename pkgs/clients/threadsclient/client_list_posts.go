package threadsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/WangWilly/threadStats/pkgs/utils"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// ListPostsByYear retrieves every post of the authenticated account within
// the given year. The window ends at yesterday when year is the current one.
func (c *Client) ListPostsByYear(ctx context.Context, token string, year int, now time.Time) ([]Post, error) {
	return c.ListPostsByTimeRange(ctx, token, utils.YearWindow(year, now))
}

// ListPostsByTimeRange retrieves every post within the window by following
// the cursor chain of the listing endpoint. The whole call is all-or-nothing:
// a failed page discards everything accumulated so far.
func (c *Client) ListPostsByTimeRange(ctx context.Context, token string, window utils.TimeRange) ([]Post, error) {
	results := make([]Post, 0)
	requestUrl := c.buildPostsUrl(token, window)

	for requestUrl != "" {
		page, next, err := c.listPostsPage(ctx, requestUrl)
		if err != nil {
			return nil, err
		}

		if len(page) == 0 {
			break
		}

		results = append(results, page...)
		requestUrl = next
	}

	return results, nil
}

////////////////////////////////////////////////////////////////////////////////

// listPostsPage fetches one listing page and returns its posts plus the
// opaque next-page URL, empty when the chain is exhausted
func (c *Client) listPostsPage(ctx context.Context, requestUrl string) ([]Post, string, error) {
	logger := log.WithFields(log.Fields{
		"caller": "Client.listPostsPage",
	})

	resp, err := c.restyClient.R().SetContext(ctx).Get(requestUrl)
	if err != nil {
		logger.WithError(err).Error("failed to get posts page")
		return nil, "", fmt.Errorf("failed to get posts page: %w", err)
	}

	if resp.IsError() {
		remoteErr := parseRemoteError(resp.StatusCode(), resp.Body())
		logger.WithFields(log.Fields{
			"status": resp.StatusCode(),
			"kind":   remoteErr.Kind.String(),
		}).Error("threads api error: ", remoteErr.Message)
		return nil, "", remoteErr
	}

	var page postPage
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, "", fmt.Errorf("failed to decode posts page: %w", err)
	}

	return page.Data, page.Paging.Next, nil
}

func (c *Client) buildPostsUrl(token string, window utils.TimeRange) string {
	u, _ := url.Parse(c.host)
	u = u.JoinPath(PATH_MY_THREADS)

	params := url.Values{}
	params.Set("fields", POST_FIELDS)
	params.Set("since", strconv.FormatInt(window.BeginUnix(), 10))
	params.Set("until", strconv.FormatInt(window.EndUnix(), 10))
	params.Set("limit", strconv.Itoa(DEFAULT_PAGE_SIZE_FOR_POSTS))
	params.Set("access_token", token)

	u.RawQuery = params.Encode()
	return u.String()
}
