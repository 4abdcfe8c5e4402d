package views

import (
	"fmt"

	"fanvue-front/cmd/web/dto"
)

// DialogHeight 는 전체 화면 이미지 다이얼로그의 고정 높이다.
const DialogHeight = "80vh"

// FullScreenImageDialog 는 사진 한 장을 원본 해상도로 띄우는 오버레이다.
// 닫기 링크와 배경(backdrop) 클릭 두 가지로 항상 닫을 수 있다.
type FullScreenImageDialog struct {
	DOMID     string
	Open      bool
	Title     string
	ImageURL  string
	CloseHref string
	Height    string
}

// VaultGallery 는 사진 그리드와 선택 상태를 가진다. 처음에는 아무것도 선택되지 않는다.
type VaultGallery struct {
	Photos   []dto.Photo
	selected int // Photos 인덱스, -1 이면 선택 없음
}

func NewVaultGallery(photos []dto.Photo) *VaultGallery {
	if photos == nil {
		photos = []dto.Photo{}
	}
	return &VaultGallery{Photos: photos, selected: -1}
}

func (g *VaultGallery) Empty() bool {
	return len(g.Photos) == 0
}

// Select 는 그리드 아이템 클릭에 해당한다. 목록에 없는 id 면 상태를 바꾸지 않고 false 를 반환한다.
func (g *VaultGallery) Select(photoID int) bool {
	for i, p := range g.Photos {
		if p.ID == photoID {
			g.selected = i
			return true
		}
	}
	return false
}

// Close 는 닫기 버튼과 배경 클릭 모두에 해당한다.
func (g *VaultGallery) Close() {
	g.selected = -1
}

func (g *VaultGallery) Selected() (dto.Photo, bool) {
	if g.selected < 0 || g.selected >= len(g.Photos) {
		return dto.Photo{}, false
	}
	return g.Photos[g.selected], true
}

// ItemHref 는 그리드 아이템 링크다. 프래그먼트 이동이라 서버 왕복이 없다.
func (g *VaultGallery) ItemHref(p dto.Photo) string {
	return "#" + photoDOMID(p.ID)
}

// Dialogs 는 사진마다 하나씩 다이얼로그를 만든다.
// 브라우저에서는 :target 으로 열리고, 서버에서 선택된 사진은 Open 으로 그려진다.
func (g *VaultGallery) Dialogs() []FullScreenImageDialog {
	selected, hasSelection := g.Selected()
	out := make([]FullScreenImageDialog, 0, len(g.Photos))
	for _, p := range g.Photos {
		out = append(out, FullScreenImageDialog{
			DOMID:     photoDOMID(p.ID),
			Open:      hasSelection && selected.ID == p.ID,
			Title:     p.Title,
			ImageURL:  p.URL,
			CloseHref: "#",
			Height:    DialogHeight,
		})
	}
	return out
}

func photoDOMID(id int) string {
	return fmt.Sprintf("photo-%d", id)
}
