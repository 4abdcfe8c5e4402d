package services

import (
	"context"
	"time"

	"fanvue-front/cmd/internal/logger"
	"fanvue-front/cmd/web/clients/placeholderclient"
	"fanvue-front/cmd/web/dto"
	"fanvue-front/cmd/web/metrics"
	"fanvue-front/cmd/web/trace"
	"fanvue-front/config"
)

const PageVault = "vault"

type VaultSource interface {
	ListPhotos(ctx context.Context, limit int) ([]placeholderclient.Photo, error)
}

// VaultService 는 볼트 페이지의 사진 목록을 한 번의 요청으로 가져온다.
type VaultService struct {
	client     VaultSource
	photoLimit int
}

func NewVaultService(client VaultSource, cfg config.VaultConfig) *VaultService {
	return &VaultService{client: client, photoLimit: cfg.PhotoLimit}
}

func (s *VaultService) Load(ctx context.Context) LoadResult[dto.Photo] {
	start := time.Now()

	photos, err := s.client.ListPhotos(ctx, s.photoLimit)
	if err != nil {
		logger.ErrorWithFields("vault load failed", logger.Fields{
			"page":       PageVault,
			"request_id": trace.RequestID(ctx),
			"duration":   time.Since(start).String(),
			"error":      err.Error(),
		})
		metrics.ObservePageLoad(PageVault, false, 0, time.Since(start))
		return failure[dto.Photo](err)
	}

	out := make([]dto.Photo, 0, len(photos))
	for _, p := range photos {
		out = append(out, dto.NewPhoto(p))
	}
	metrics.ObservePageLoad(PageVault, true, len(out), time.Since(start))
	return success(out)
}
