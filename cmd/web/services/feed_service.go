package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"fanvue-front/cmd/internal/logger"
	"fanvue-front/cmd/web/clients/placeholderclient"
	"fanvue-front/cmd/web/dto"
	"fanvue-front/cmd/web/metrics"
	"fanvue-front/cmd/web/trace"
	"fanvue-front/config"
)

const PageFeed = "feed"

// FeedSource 는 피드 로더가 필요로 하는 upstream 조회 기능이다.
type FeedSource interface {
	ListPosts(ctx context.Context, limit int) ([]placeholderclient.Post, error)
	ListCommentsByPost(ctx context.Context, postID int) ([]placeholderclient.Comment, error)
}

// FeedService 는 피드 페이지 데이터를 조합한다.
//
// - 포스트 목록을 한 번 조회한 뒤, 포스트마다 댓글을 병렬로 조회한다. (동시 요청 수 제한 없음)
// - 댓글 조회 중 하나라도 실패하면 전체를 실패로 본다.
// - emptyCommentsPostID 에 해당하는 포스트에는 항상 빈 댓글 목록을 붙인다.
type FeedService struct {
	client              FeedSource
	postLimit           int
	emptyCommentsPostID int
}

func NewFeedService(client FeedSource, cfg config.FeedConfig) *FeedService {
	return &FeedService{
		client:              client,
		postLimit:           cfg.PostLimit,
		emptyCommentsPostID: cfg.EmptyCommentsPostID,
	}
}

// Load 는 요청마다 한 번 호출된다. 에러를 반환하지 않고 LoadResult 에 담으며, 실패는 로그로 남긴다.
func (s *FeedService) Load(ctx context.Context) LoadResult[dto.PostWithComments] {
	start := time.Now()

	posts, err := s.fetch(ctx)
	if err != nil {
		logger.ErrorWithFields("feed load failed", logger.Fields{
			"page":       PageFeed,
			"request_id": trace.RequestID(ctx),
			"duration":   time.Since(start).String(),
			"error":      err.Error(),
		})
		metrics.ObservePageLoad(PageFeed, false, 0, time.Since(start))
		return failure[dto.PostWithComments](err)
	}

	metrics.ObservePageLoad(PageFeed, true, len(posts), time.Since(start))
	return success(posts)
}

func (s *FeedService) fetch(ctx context.Context) ([]dto.PostWithComments, error) {
	posts, err := s.client.ListPosts(ctx, s.postLimit)
	if err != nil {
		return nil, err
	}

	// 각 goroutine 은 자기 인덱스에만 쓰므로 원래 포스트 순서가 유지된다.
	out := make([]dto.PostWithComments, len(posts))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range posts {
		g.Go(func() error {
			comments, err := s.fetchComments(gctx, p.ID)
			if err != nil {
				return err
			}
			out[i] = dto.NewPostWithComments(p, comments, s.hidesComments(p.ID))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// fetchComments 는 댓글 조회 하나에 span 을 발급한다. upstream 요청의 X-Span-Id 와 로그의 span_id 가 같다.
func (s *FeedService) fetchComments(ctx context.Context, postID int) ([]placeholderclient.Comment, error) {
	ctx, span := trace.NewSpan(ctx)
	start := time.Now()

	comments, err := s.client.ListCommentsByPost(ctx, postID)
	if err != nil {
		logger.WarnWithFields("comment fetch failed", span.Fields(logger.Fields{
			"page":     PageFeed,
			"post_id":  postID,
			"duration": time.Since(start).String(),
			"error":    err.Error(),
		}))
		return nil, err
	}
	logger.DebugWithFields("comments fetched", span.Fields(logger.Fields{
		"page":     PageFeed,
		"post_id":  postID,
		"count":    len(comments),
		"duration": time.Since(start).String(),
	}))
	return comments, nil
}

func (s *FeedService) hidesComments(postID int) bool {
	return s.emptyCommentsPostID != 0 && postID == s.emptyCommentsPostID
}
