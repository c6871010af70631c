package threadsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// GetProfile fetches the authenticated account's profile
func (c *Client) GetProfile(ctx context.Context, token string) (*Profile, error) {
	u, _ := url.Parse(c.host)
	u = u.JoinPath(PATH_MY_PROFILE)

	params := url.Values{}
	params.Set("fields", PROFILE_FIELDS)
	params.Set("access_token", token)
	u.RawQuery = params.Encode()

	resp, err := c.restyClient.R().SetContext(ctx).Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if resp.IsError() {
		return nil, parseRemoteError(resp.StatusCode(), resp.Body())
	}

	profile := &Profile{}
	if err := json.Unmarshal(resp.Body(), profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	return profile, nil
}
