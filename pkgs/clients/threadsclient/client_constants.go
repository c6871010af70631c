package threadsclient

// urls
const (
	API_HOST = "https://graph.threads.net/v1.0"

	PATH_MY_THREADS  = "/me/threads"
	PATH_MY_INSIGHTS = "/me/threads_insights"
	PATH_MY_PROFILE  = "/me"
)

// header keys
const (
	HEADER_CACHE_CONTROL = "Cache-Control"
	CACHE_NO_STORE       = "no-store"
)

// field sets requested from the API
const (
	POST_FIELDS = "id,media_product_type,media_type,media_url,permalink,owner," +
		"username,text,timestamp,shortcode,thumbnail_url,children,is_quote_post"
	PROFILE_FIELDS = "id,username,threads_profile_picture_url"
)

// metric name lists
const (
	METRIC_VIEWS         = "views"
	POST_METRIC_NAMES    = "views,likes,replies,reposts,quotes"
	ACCOUNT_METRIC_NAMES = "views,likes,replies,reposts,followers_count"
)

const DEFAULT_PAGE_SIZE_FOR_POSTS = 100
