package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"fanvue-front/cmd/web/clients/placeholderclient"
	"fanvue-front/cmd/web/httpclient"
)

// fakeUpstream 은 placeholder API 의 posts/comments/photos 엔드포인트를 흉내 낸다.
type fakeUpstream struct {
	mu sync.Mutex

	posts    []placeholderclient.Post
	comments map[int][]placeholderclient.Comment
	photos   []placeholderclient.Photo

	failPosts       bool
	failCommentsFor map[int]int // postID -> status code
	rawPostsBody    string

	postLimits  []string
	photoLimits []string
	commentHits []int
	// postID -> 댓글 요청에 실린 X-Request-Id / X-Span-Id
	commentTrace map[int][2]string
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{
		comments:        map[int][]placeholderclient.Comment{},
		failCommentsFor: map[int]int{},
		commentTrace:    map[int][2]string{},
	}
}

func (f *fakeUpstream) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.postLimits = append(f.postLimits, r.URL.Query().Get("_limit"))
		fail, raw, posts := f.failPosts, f.rawPostsBody, f.posts
		f.mu.Unlock()

		if fail {
			http.Error(w, "upstream down", http.StatusInternalServerError)
			return
		}
		if raw != "" {
			w.Write([]byte(raw))
			return
		}
		writeJSON(t, w, posts)
	})
	mux.HandleFunc("/comments", func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.Atoi(r.URL.Query().Get("postId"))
		if err != nil {
			http.Error(w, "bad postId", http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.commentHits = append(f.commentHits, postID)
		f.commentTrace[postID] = [2]string{r.Header.Get("X-Request-Id"), r.Header.Get("X-Span-Id")}
		status, fail := f.failCommentsFor[postID]
		comments := f.comments[postID]
		f.mu.Unlock()

		if fail {
			http.Error(w, fmt.Sprintf("comments for %d unavailable", postID), status)
			return
		}
		if comments == nil {
			comments = []placeholderclient.Comment{}
		}
		writeJSON(t, w, comments)
	})
	mux.HandleFunc("/photos", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.photoLimits = append(f.photoLimits, r.URL.Query().Get("_limit"))
		photos := f.photos
		f.mu.Unlock()
		writeJSON(t, w, photos)
	})
	return mux
}

func (f *fakeUpstream) client(t *testing.T) *placeholderclient.Client {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)
	return placeholderclient.New(httpclient.NewBaseClient(srv.URL))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode fake response: %v", err)
	}
}

func makePosts(ids ...int) []placeholderclient.Post {
	out := make([]placeholderclient.Post, 0, len(ids))
	for _, id := range ids {
		out = append(out, placeholderclient.Post{
			ID:    id,
			Title: fmt.Sprintf("post %d", id),
			Body:  fmt.Sprintf("body %d", id),
		})
	}
	return out
}

func makeComments(postID int, ids ...int) []placeholderclient.Comment {
	out := make([]placeholderclient.Comment, 0, len(ids))
	for _, id := range ids {
		out = append(out, placeholderclient.Comment{
			ID:     id,
			PostID: postID,
			Name:   fmt.Sprintf("author %d", id),
			Body:   fmt.Sprintf("comment %d", id),
		})
	}
	return out
}

func makePhotos(n int) []placeholderclient.Photo {
	out := make([]placeholderclient.Photo, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, placeholderclient.Photo{
			ID:           i,
			Title:        fmt.Sprintf("photo %d", i),
			URL:          fmt.Sprintf("https://img.test/600/%d", i),
			ThumbnailURL: fmt.Sprintf("https://img.test/150/%d", i),
		})
	}
	return out
}
