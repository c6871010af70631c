package aggregating

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
	"github.com/WangWilly/threadStats/pkgs/utils"
)

// fakeClient fakes the ThreadsClient interface
type fakeClient struct {
	posts    []threadsclient.Post
	listErr  error
	listCall int

	metrics    map[string]threadsclient.Metrics
	insightErr map[string]error
}

func (f *fakeClient) ListPostsByTimeRange(ctx context.Context, token string, window utils.TimeRange) ([]threadsclient.Post, error) {
	f.listCall++
	if f.listErr != nil {
		return nil, f.listErr
	}

	// honor the window like the remote side would
	var filtered []threadsclient.Post
	for _, p := range f.posts {
		ts, err := time.Parse("2006-01-02T15:04:05-0700", p.Timestamp)
		if err != nil {
			filtered = append(filtered, p)
			continue
		}
		if !ts.Before(window.Begin) && !ts.After(window.End) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (f *fakeClient) GetPostInsights(ctx context.Context, token string, postID string, metricNames string) (threadsclient.Metrics, error) {
	if err, ok := f.insightErr[postID]; ok {
		return threadsclient.Metrics{}, err
	}
	return f.metrics[postID], nil
}

func newTestService(client *fakeClient) *Service {
	svc := New(client, Config{MaxInsightRoutine: 4, InsightTimeout: time.Second})
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

////////////////////////////////////////////////////////////////////////////////

func TestDailyActivity_CountMode(t *testing.T) {
	client := &fakeClient{
		posts: []threadsclient.Post{
			{ID: "a", Timestamp: "2024-01-01T10:00:00+0000"},
			{ID: "b", Timestamp: "2024-01-01T22:00:00+0000"},
			{ID: "c", Timestamp: "2024-01-02T05:00:00+0000"},
		},
	}
	svc := newTestService(client)

	buckets, err := svc.DailyActivity(context.Background(), "tok", 2024, ModeCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Date != "2024-01-01" || buckets[0].Count != 2 {
		t.Errorf("bucket 0 = %+v", buckets[0])
	}
	if buckets[1].Date != "2024-01-02" || buckets[1].Count != 1 {
		t.Errorf("bucket 1 = %+v", buckets[1])
	}
}

func TestDailyActivity_ViewsModeJoinsInsights(t *testing.T) {
	client := &fakeClient{
		posts: []threadsclient.Post{
			{ID: "a", Timestamp: "2024-01-01T10:00:00+0000"},
			{ID: "b", Timestamp: "2024-01-01T22:00:00+0000"},
		},
		metrics: map[string]threadsclient.Metrics{
			"a": {Views: 10},
			"b": {Views: 32},
		},
	}
	svc := newTestService(client)

	buckets, err := svc.DailyActivity(context.Background(), "tok", 2024, ModeViews)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Count != 42 {
		t.Errorf("views sum = %d, want 42", buckets[0].Count)
	}
}

func TestDailyActivity_CollectorFailurePropagates(t *testing.T) {
	listErr := &threadsclient.RemoteError{
		Kind:       threadsclient.KindRemote,
		StatusCode: 500,
		Message:    "boom",
	}
	client := &fakeClient{listErr: listErr}
	svc := newTestService(client)

	_, err := svc.DailyActivity(context.Background(), "tok", 2024, ModeCount)
	if err == nil {
		t.Fatal("expected collector error to propagate")
	}

	var remoteErr *threadsclient.RemoteError
	if !errors.As(err, &remoteErr) || remoteErr.Message != "boom" {
		t.Errorf("expected original remote error, got %v", err)
	}
}

func TestDetailedActivity_IsolatedInsightFailure(t *testing.T) {
	client := &fakeClient{
		posts: []threadsclient.Post{
			{ID: "a", Timestamp: "2024-01-01T10:00:00+0000"},
			{ID: "b", Timestamp: "2024-01-01T12:00:00+0000"},
			{ID: "c", Timestamp: "2024-01-02T10:00:00+0000"},
		},
		metrics: map[string]threadsclient.Metrics{
			"a": {Views: 100, Likes: 10},
			"c": {Views: 50, Likes: 5},
		},
		insightErr: map[string]error{
			"b": fmt.Errorf("insights request failed"),
		},
	}
	svc := newTestService(client)

	activity, err := svc.DetailedActivity(context.Background(), "tok", 2024)
	if err != nil {
		t.Fatalf("isolated failure must not abort the aggregation: %v", err)
	}

	if len(activity.TopPosts) != 3 {
		t.Fatalf("expected 3 top posts, got %d", len(activity.TopPosts))
	}

	var failed *RankedPost
	for i := range activity.TopPosts {
		if activity.TopPosts[i].ID == "b" {
			failed = &activity.TopPosts[i]
		}
	}
	if failed == nil {
		t.Fatal("post b missing from top posts")
	}
	if failed.Metrics != (threadsclient.Metrics{}) {
		t.Errorf("failed post metrics should be all zero, got %+v", failed.Metrics)
	}

	// day sums only include the posts whose insights succeeded
	if activity.DailyStats[0].Date != "2024-01-01" || activity.DailyStats[0].Views != 100 {
		t.Errorf("day 0 = %+v", activity.DailyStats[0])
	}
	if activity.DailyStats[0].Count != 2 {
		t.Errorf("day 0 count = %d, want 2", activity.DailyStats[0].Count)
	}
}

func TestDetailedActivity_TopPostsOrdered(t *testing.T) {
	client := &fakeClient{
		posts: []threadsclient.Post{
			{ID: "low", Timestamp: "2024-01-01T10:00:00+0000"},
			{ID: "high", Timestamp: "2024-01-02T10:00:00+0000"},
			{ID: "mid", Timestamp: "2024-01-03T10:00:00+0000"},
		},
		metrics: map[string]threadsclient.Metrics{
			"low":  {Views: 1},
			"high": {Views: 300},
			"mid":  {Views: 20},
		},
	}
	svc := newTestService(client)

	activity, err := svc.DetailedActivity(context.Background(), "tok", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"high", "mid", "low"}
	for i, want := range wantOrder {
		if activity.TopPosts[i].ID != want {
			t.Errorf("top post %d = %s, want %s", i, activity.TopPosts[i].ID, want)
		}
	}
}

func TestPostsForDate(t *testing.T) {
	client := &fakeClient{
		posts: []threadsclient.Post{
			{ID: "in1", Timestamp: "2024-06-10T08:00:00+0000"},
			{ID: "in2", Timestamp: "2024-06-10T23:30:00+0000"},
			{ID: "out", Timestamp: "2024-06-11T00:30:00+0000"},
		},
		metrics: map[string]threadsclient.Metrics{
			"in1": {Views: 9},
			"in2": {Views: 4},
		},
	}
	svc := newTestService(client)

	day := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	posts, err := svc.PostsForDate(context.Background(), "tok", day, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Views != 9 || posts[1].Views != 4 {
		t.Errorf("views join missing: %+v", posts)
	}
}

func TestPostsForDate_WithoutViews(t *testing.T) {
	client := &fakeClient{
		posts: []threadsclient.Post{
			{ID: "in1", Timestamp: "2024-06-10T08:00:00+0000"},
		},
		insightErr: map[string]error{
			"in1": fmt.Errorf("should not be called"),
		},
	}
	svc := newTestService(client)

	day := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	posts, err := svc.PostsForDate(context.Background(), "tok", day, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 || posts[0].Views != 0 {
		t.Errorf("unexpected posts: %+v", posts)
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeCount, false},
		{"count", ModeCount, false},
		{"views", ModeViews, false},
		{"detailed", ModeDetailed, false},
		{"likes", "", true},
	}

	for _, tc := range cases {
		mode, err := ParseMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): unexpected error %v", tc.in, err)
		}
		if mode != tc.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tc.in, mode, tc.want)
		}
	}
}
