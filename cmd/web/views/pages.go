package views

import (
	"embed"
	"html/template"
	"io"
	"sync"

	"fanvue-front/cmd/web/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	TemplateFeed  = "feed"
	TemplateVault = "vault"
)

// FeedPage 는 피드 페이지 템플릿 데이터다.
// Data 는 페이지에 JSON 으로 함께 실리는 레코드 목록이다.
type FeedPage struct {
	Meta  PageMeta
	Cards []*PostCard
	Data  dto.FeedResponseDTO
}

func NewFeedPage(meta PageMeta, posts []dto.PostWithComments) FeedPage {
	if posts == nil {
		posts = []dto.PostWithComments{}
	}
	cards := make([]*PostCard, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, NewPostCard(p))
	}
	return FeedPage{
		Meta:  meta,
		Cards: cards,
		Data:  dto.FeedResponseDTO{Posts: posts},
	}
}

type VaultPage struct {
	Meta    PageMeta
	Gallery *VaultGallery
	Data    dto.VaultResponseDTO
}

func NewVaultPage(meta PageMeta, photos []dto.Photo) VaultPage {
	gallery := NewVaultGallery(photos)
	return VaultPage{
		Meta:    meta,
		Gallery: gallery,
		Data:    dto.VaultResponseDTO{Photos: gallery.Photos},
	}
}

var loadTemplates = sync.OnceValue(func() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
})

// Templates 는 임베드된 템플릿 묶음을 한 번만 파싱해 돌려준다.
func Templates() *template.Template {
	return loadTemplates()
}

// Render 는 이름이 name 인 템플릿(페이지 또는 컴포넌트)을 w 에 그린다.
func Render(w io.Writer, name string, data any) error {
	return Templates().ExecuteTemplate(w, name, data)
}
