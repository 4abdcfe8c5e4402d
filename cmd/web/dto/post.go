package dto

import "fanvue-front/cmd/web/clients/placeholderclient"

// CommentDTO is a single comment block rendered under a post card.
type CommentDTO struct {
	ID     int    `json:"id" example:"6"`
	PostID int    `json:"post_id" example:"2"`
	Name   string `json:"name" example:"et omnis dolorem"`
	Body   string `json:"body"`
}

// PostWithComments is the feed view model: a post plus its comments in upstream order.
// It is built once by NewPostWithComments and never mutated afterwards.
type PostWithComments struct {
	ID       int          `json:"id" example:"2"`
	Title    string       `json:"title"`
	Body     string       `json:"body"`
	Comments []CommentDTO `json:"comments"`
}

// NewPostWithComments 는 포스트와 댓글을 하나의 뷰 모델로 합친다.
// emptyComments 가 true 이면 comments 와 무관하게 빈 목록을 붙인다.
// Comments 는 nil 이 아니며 입력 슬라이스와 메모리를 공유하지 않는다.
func NewPostWithComments(p placeholderclient.Post, comments []placeholderclient.Comment, emptyComments bool) PostWithComments {
	out := PostWithComments{
		ID:       p.ID,
		Title:    p.Title,
		Body:     p.Body,
		Comments: []CommentDTO{},
	}
	if emptyComments {
		return out
	}
	out.Comments = make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		out.Comments = append(out.Comments, CommentDTO{
			ID:     c.ID,
			PostID: c.PostID,
			Name:   c.Name,
			Body:   c.Body,
		})
	}
	return out
}

// FeedResponseDTO is the JSON body of GET /api/v1/feed.
type FeedResponseDTO struct {
	Posts []PostWithComments `json:"posts"`
}
