package placeholderclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/go-playground/validator/v10"

	"fanvue-front/cmd/web/httpclient"
	"fanvue-front/config"
)

// Client는 placeholder REST API(posts/comments/photos)를 호출하는 얇은 클라이언트다.
//
// - 페이지 로더(services)는 이 클라이언트로 원본 레코드만 가져오고, 뷰 모델 조합은 dto 에서 한다.
// - 응답은 항상 새로 조회하며 캐시하지 않는다.
//
// baseURL 예: https://jsonplaceholder.typicode.com
type Client struct {
	base     *httpclient.BaseClient
	validate *validator.Validate
}

var (
	// ErrUnexpectedStatus 는 2xx 가 아닌 응답을 나타낸다.
	ErrUnexpectedStatus = errors.New("placeholder api: unexpected status")
	// ErrDecode 는 응답 바디가 기대한 JSON 형태가 아닐 때 반환된다.
	ErrDecode = errors.New("placeholder api: malformed response body")
	// ErrInvalidRecord 는 디코딩은 되었지만 식별자(id, postId)가 없는 레코드를 나타낸다.
	// 그 밖의 필드는 upstream 이 준 그대로 둔다.
	ErrInvalidRecord = errors.New("placeholder api: invalid record")
)

func New(base *httpclient.BaseClient) *Client {
	return &Client{
		base:     base,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// NewFromConfig 는 설정의 base_url 과 요청 타임아웃으로 클라이언트를 만든다.
func NewFromConfig(cfg config.UpstreamConfig) *Client {
	httpClient := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	return New(httpclient.NewBaseClientWithClient(httpClient, cfg.BaseURL))
}

// -------------------- Records --------------------

type Post struct {
	ID    int    `json:"id" validate:"gt=0"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Comment struct {
	ID     int    `json:"id" validate:"gt=0"`
	PostID int    `json:"postId" validate:"gt=0"`
	Name   string `json:"name"`
	Body   string `json:"body"`
}

type Photo struct {
	ID           int    `json:"id" validate:"gt=0"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// -------------------- Endpoints --------------------

// ListPosts 는 GET /posts?_limit=N 을 호출한다. limit 이 0 이하면 _limit 을 보내지 않는다.
func (c *Client) ListPosts(ctx context.Context, limit int) ([]Post, error) {
	var out []Post
	if err := c.getJSON(ctx, "/posts", limitQuery(limit), &out); err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	if err := validateEach(c.validate, out); err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	return out, nil
}

// ListCommentsByPost 는 GET /comments?postId=ID 를 호출한다.
// 응답 순서를 그대로 유지한다.
func (c *Client) ListCommentsByPost(ctx context.Context, postID int) ([]Comment, error) {
	q := url.Values{}
	q.Set("postId", strconv.Itoa(postID))

	var out []Comment
	if err := c.getJSON(ctx, "/comments", q, &out); err != nil {
		return nil, fmt.Errorf("ListCommentsByPost(%d): %w", postID, err)
	}
	if err := validateEach(c.validate, out); err != nil {
		return nil, fmt.Errorf("ListCommentsByPost(%d): %w", postID, err)
	}
	return out, nil
}

// ListPhotos 는 GET /photos?_limit=N 을 호출한다.
func (c *Client) ListPhotos(ctx context.Context, limit int) ([]Photo, error) {
	var out []Photo
	if err := c.getJSON(ctx, "/photos", limitQuery(limit), &out); err != nil {
		return nil, fmt.Errorf("ListPhotos: %w", err)
	}
	if err := validateEach(c.validate, out); err != nil {
		return nil, fmt.Errorf("ListPhotos: %w", err)
	}
	return out, nil
}

// Health 는 upstream 이 응답하는지 확인한다.
// placeholder API 에는 /health 가 없으므로 가장 가벼운 단건 조회로 대신한다.
func (c *Client) Health(ctx context.Context) error {
	relPath := path.Join("/posts", "1")
	var out Post
	if err := c.getJSON(ctx, relPath, nil, &out); err != nil {
		return fmt.Errorf("Health: %w", err)
	}
	return nil
}

// -------------------- helpers --------------------

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	q := url.Values{}
	q.Set("_limit", strconv.Itoa(limit))
	return q
}

func (c *Client) getJSON(ctx context.Context, relPath string, q url.Values, out any) error {
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, q, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%w: status=%d body=%s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func validateEach[T any](v *validator.Validate, records []T) error {
	for i := range records {
		if err := v.Struct(&records[i]); err != nil {
			return fmt.Errorf("%w: index=%d: %v", ErrInvalidRecord, i, err)
		}
	}
	return nil
}
