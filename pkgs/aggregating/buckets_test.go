package aggregating

import (
	"reflect"
	"testing"

	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
)

func post(id, timestamp string) threadsclient.Post {
	return threadsclient.Post{ID: id, Timestamp: timestamp}
}

func TestCountByDay(t *testing.T) {
	posts := []threadsclient.Post{
		post("a", "2024-01-01T10:00:00+0000"),
		post("b", "2024-01-01T22:00:00+0000"),
		post("c", "2024-01-02T05:00:00+0000"),
	}

	buckets := CountByDay(posts)

	want := []DayBucket{
		{Date: "2024-01-01", Count: 2},
		{Date: "2024-01-02", Count: 1},
	}
	if !reflect.DeepEqual(buckets, want) {
		t.Errorf("buckets = %+v, want %+v", buckets, want)
	}
}

func TestCountByDay_SortedAcrossGaps(t *testing.T) {
	// input deliberately out of chronological order, with gap days between
	posts := []threadsclient.Post{
		post("a", "2024-06-30T10:00:00+0000"),
		post("b", "2024-01-05T10:00:00+0000"),
		post("c", "2024-03-10T10:00:00+0000"),
	}

	buckets := CountByDay(posts)

	wantDates := []string{"2024-01-05", "2024-03-10", "2024-06-30"}
	for i, bucket := range buckets {
		if bucket.Date != wantDates[i] {
			t.Errorf("bucket %d date = %s, want %s", i, bucket.Date, wantDates[i])
		}
	}
}

func TestCountByDay_NoEmptyDates(t *testing.T) {
	buckets := CountByDay(nil)
	if len(buckets) != 0 {
		t.Errorf("expected no buckets for no posts, got %d", len(buckets))
	}
}

func TestViewsByDay(t *testing.T) {
	joined := []RankedPost{
		{Post: post("a", "2024-01-01T10:00:00+0000"), Metrics: threadsclient.Metrics{Views: 10}},
		{Post: post("b", "2024-01-01T22:00:00+0000"), Metrics: threadsclient.Metrics{Views: 5}},
		{Post: post("c", "2024-01-02T05:00:00+0000"), Metrics: threadsclient.Metrics{Views: 7}},
	}

	buckets := ViewsByDay(joined)

	want := []DayBucket{
		{Date: "2024-01-01", Count: 15},
		{Date: "2024-01-02", Count: 7},
	}
	if !reflect.DeepEqual(buckets, want) {
		t.Errorf("buckets = %+v, want %+v", buckets, want)
	}
}

func TestDetailByDay(t *testing.T) {
	joined := []RankedPost{
		{
			Post:    post("a", "2024-01-01T10:00:00+0000"),
			Metrics: threadsclient.Metrics{Views: 10, Likes: 2, Replies: 1, Reposts: 1, Quotes: 0},
		},
		{
			Post:    post("b", "2024-01-01T22:00:00+0000"),
			Metrics: threadsclient.Metrics{Views: 20, Likes: 3, Replies: 0, Reposts: 2, Quotes: 1},
		},
		{
			Post:    post("c", "2024-01-02T05:00:00+0000"),
			Metrics: threadsclient.Metrics{Views: 5, Likes: 1, Replies: 4, Reposts: 0, Quotes: 2},
		},
	}

	buckets := DetailByDay(joined)

	want := []DetailedDayBucket{
		{Date: "2024-01-01", Count: 2, Views: 30, Likes: 5, Replies: 1, Reposts: 3, Quotes: 1},
		{Date: "2024-01-02", Count: 1, Views: 5, Likes: 1, Replies: 4, Reposts: 0, Quotes: 2},
	}
	if !reflect.DeepEqual(buckets, want) {
		t.Errorf("buckets = %+v, want %+v", buckets, want)
	}
}

func TestTopByViews(t *testing.T) {
	views := []int64{5, 100, 3, 100, 1}
	joined := make([]RankedPost, len(views))
	for i, v := range views {
		joined[i] = RankedPost{
			Post:    post(string(rune('a'+i)), "2024-01-01T10:00:00+0000"),
			Metrics: threadsclient.Metrics{Views: v},
		}
	}

	top := TopByViews(joined, 10)

	if len(top) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(top))
	}

	// both 100s first in either order, then 5, 3, 1
	if top[0].Views != 100 || top[1].Views != 100 {
		t.Errorf("first two entries should have 100 views, got %d and %d", top[0].Views, top[1].Views)
	}
	for i, want := range []int64{100, 100, 5, 3, 1} {
		if top[i].Views != want {
			t.Errorf("entry %d views = %d, want %d", i, top[i].Views, want)
		}
	}
}

func TestTopByViews_Truncates(t *testing.T) {
	joined := make([]RankedPost, 25)
	for i := range joined {
		joined[i] = RankedPost{
			Post:    post("x", "2024-01-01T10:00:00+0000"),
			Metrics: threadsclient.Metrics{Views: int64(i)},
		}
	}

	top := TopByViews(joined, 10)

	if len(top) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(top))
	}
	if top[0].Views != 24 {
		t.Errorf("top entry views = %d, want 24", top[0].Views)
	}
}

func TestTopByViews_InputUntouched(t *testing.T) {
	joined := []RankedPost{
		{Post: post("a", "2024-01-01T10:00:00+0000"), Metrics: threadsclient.Metrics{Views: 1}},
		{Post: post("b", "2024-01-01T11:00:00+0000"), Metrics: threadsclient.Metrics{Views: 2}},
	}

	TopByViews(joined, 10)

	if joined[0].ID != "a" || joined[1].ID != "b" {
		t.Error("ranking must not reorder the input slice")
	}
}

func TestAggregationIsIdempotent(t *testing.T) {
	posts := []threadsclient.Post{
		post("a", "2024-01-01T10:00:00+0000"),
		post("b", "2024-01-01T22:00:00+0000"),
		post("c", "2024-01-02T05:00:00+0000"),
	}

	first := CountByDay(posts)
	second := CountByDay(posts)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs: %+v vs %+v", first, second)
	}
}
