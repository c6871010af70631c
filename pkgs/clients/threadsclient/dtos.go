package threadsclient

////////////////////////////////////////////////////////////////////////////////

// Post is one published item on Threads, as returned by the listing endpoint.
// Timestamp stays the raw API string; all date bucketing slices its date
// part without timezone conversion.
type Post struct {
	ID               string `json:"id"`
	MediaProductType string `json:"media_product_type,omitempty"`
	MediaType        string `json:"media_type,omitempty"`
	MediaURL         string `json:"media_url,omitempty"`
	Permalink        string `json:"permalink,omitempty"`
	Username         string `json:"username,omitempty"`
	Text             string `json:"text,omitempty"`
	Timestamp        string `json:"timestamp"`
	Shortcode        string `json:"shortcode,omitempty"`
	ThumbnailURL     string `json:"thumbnail_url,omitempty"`
	IsQuotePost      bool   `json:"is_quote_post,omitempty"`
}

// Date returns the calendar-date part of the post timestamp
func (p Post) Date() string {
	if len(p.Timestamp) < 10 {
		return p.Timestamp
	}
	return p.Timestamp[:10]
}

////////////////////////////////////////////////////////////////////////////////

// Metrics holds the per-post engagement counters. Metrics the remote side
// did not return stay zero.
type Metrics struct {
	Views   int64 `json:"views"`
	Likes   int64 `json:"likes"`
	Replies int64 `json:"replies"`
	Reposts int64 `json:"reposts"`
	Quotes  int64 `json:"quotes"`
}

////////////////////////////////////////////////////////////////////////////////

// Profile is the authenticated account's public identity
type Profile struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"threads_profile_picture_url,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////

// TimedValue is one point of an account-level metric series
type TimedValue struct {
	Value   int64  `json:"value"`
	EndTime string `json:"end_time,omitempty"`
}

// AccountMetric is one account-level metric series from /me/threads_insights
type AccountMetric struct {
	Name       string       `json:"name"`
	Period     string       `json:"period,omitempty"`
	TotalValue int64        `json:"total_value"`
	Values     []TimedValue `json:"values,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////

// postPage is the wire shape of one listing page
type postPage struct {
	Data   []Post `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}
