package dto

import "fanvue-front/cmd/web/clients/placeholderclient"

// Photo is the vault view model.
type Photo struct {
	ID           int    `json:"id" example:"5"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url" example:"https://via.placeholder.com/150/f66b97"`
	URL          string `json:"url" example:"https://via.placeholder.com/600/f66b97"`
}

func NewPhoto(p placeholderclient.Photo) Photo {
	return Photo{
		ID:           p.ID,
		Title:        p.Title,
		ThumbnailURL: p.ThumbnailURL,
		URL:          p.URL,
	}
}

// VaultResponseDTO is the JSON body of GET /api/v1/vault.
type VaultResponseDTO struct {
	Photos []Photo `json:"photos"`
}
