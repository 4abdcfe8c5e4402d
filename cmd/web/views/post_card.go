package views

import (
	"fmt"

	"fanvue-front/cmd/web/dto"
)

// PostCard 는 피드의 포스트 카드 하나다.
// 펼침 상태는 카드 인스턴스에만 속하며 처음에는 접혀 있다.
type PostCard struct {
	Post     dto.PostWithComments
	expanded bool
}

func NewPostCard(post dto.PostWithComments) *PostCard {
	return &PostCard{Post: post}
}

// Toggle 은 접힘/펼침을 뒤집는다. 네트워크 호출은 없다.
func (c *PostCard) Toggle() {
	c.expanded = !c.expanded
}

func (c *PostCard) Expanded() bool {
	return c.expanded
}

// HasComments 가 false 이면 토글 버튼을 그리지 않는다.
func (c *PostCard) HasComments() bool {
	return len(c.Post.Comments) > 0
}

func (c *PostCard) ToggleLabel() string {
	return fmt.Sprintf("Comments (%d)", len(c.Post.Comments))
}

func (c *PostCard) DOMID() string {
	return fmt.Sprintf("post-%d", c.Post.ID)
}
