package aggregating

import (
	"sort"

	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
)

////////////////////////////////////////////////////////////////////////////////

// DayBucket holds one counter for all posts sharing a calendar date.
// Count is the post count or the summed view count depending on the mode.
type DayBucket struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DetailedDayBucket holds the post count plus every metric sum for one date
type DetailedDayBucket struct {
	Date    string `json:"date"`
	Count   int64  `json:"count"`
	Views   int64  `json:"views"`
	Likes   int64  `json:"likes"`
	Replies int64  `json:"replies"`
	Reposts int64  `json:"reposts"`
	Quotes  int64  `json:"quotes"`
}

// RankedPost is a post joined with its resolved metrics. The embedded
// structs flatten into one JSON object, matching the API the UI consumes.
type RankedPost struct {
	threadsclient.Post
	threadsclient.Metrics
}

////////////////////////////////////////////////////////////////////////////////

// CountByDay reduces posts into one bucket per distinct date, counting
// posts. Buckets come back sorted ascending by date; dates with no posts
// are never materialized.
func CountByDay(posts []threadsclient.Post) []DayBucket {
	byDate := make(map[string]int64)
	for _, post := range posts {
		byDate[post.Date()]++
	}
	return sortedBuckets(byDate)
}

// ViewsByDay reduces joined posts into one bucket per distinct date,
// summing view counts
func ViewsByDay(joined []RankedPost) []DayBucket {
	byDate := make(map[string]int64)
	for _, post := range joined {
		byDate[post.Date()] += post.Views
	}
	return sortedBuckets(byDate)
}

// DetailByDay reduces joined posts into per-date post counts plus running
// sums of all five metrics
func DetailByDay(joined []RankedPost) []DetailedDayBucket {
	byDate := make(map[string]*DetailedDayBucket)
	for _, post := range joined {
		date := post.Date()
		bucket, ok := byDate[date]
		if !ok {
			bucket = &DetailedDayBucket{Date: date}
			byDate[date] = bucket
		}

		bucket.Count++
		bucket.Views += post.Views
		bucket.Likes += post.Likes
		bucket.Replies += post.Replies
		bucket.Reposts += post.Reposts
		bucket.Quotes += post.Quotes
	}

	buckets := make([]DetailedDayBucket, 0, len(byDate))
	for _, bucket := range byDate {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})
	return buckets
}

// TopByViews returns the n posts with the highest view counts, views
// descending. Ties keep their input order.
func TopByViews(joined []RankedPost, n int) []RankedPost {
	ranked := make([]RankedPost, len(joined))
	copy(ranked, joined)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

////////////////////////////////////////////////////////////////////////////////

func sortedBuckets(byDate map[string]int64) []DayBucket {
	buckets := make([]DayBucket, 0, len(byDate))
	for date, count := range byDate {
		buckets = append(buckets, DayBucket{Date: date, Count: count})
	}
	// lexicographic order coincides with chronological order for ISO dates
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})
	return buckets
}
