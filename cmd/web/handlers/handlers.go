package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fanvue-front/cmd/web/dto"
	"fanvue-front/cmd/web/services"
	"fanvue-front/cmd/web/views"
)

// FeedLoader 는 피드 페이지 데이터 로더다. (services.FeedService)
type FeedLoader interface {
	Load(ctx context.Context) services.LoadResult[dto.PostWithComments]
}

// VaultLoader 는 볼트 페이지 데이터 로더다. (services.VaultService)
type VaultLoader interface {
	Load(ctx context.Context) services.LoadResult[dto.Photo]
}

type HealthChecker interface {
	Health(ctx context.Context) error
}

// FeedPageHandler 는 피드 페이지를 서버에서 렌더링한다.
// 로더 실패는 빈 목록으로 접혀서 "No posts found" 로 보이며, 상태 코드는 항상 200 이다.
func FeedPageHandler(loader FeedLoader, meta views.PageMeta) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := loader.Load(c.Request.Context())
		c.HTML(http.StatusOK, views.TemplateFeed, views.NewFeedPage(meta, res.ItemsOrEmpty()))
	}
}

// VaultPageHandler 는 볼트 페이지를 서버에서 렌더링한다.
func VaultPageHandler(loader VaultLoader, meta views.PageMeta) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := loader.Load(c.Request.Context())
		c.HTML(http.StatusOK, views.TemplateVault, views.NewVaultPage(meta, res.ItemsOrEmpty()))
	}
}

// FeedDataHandler godoc
// @Summary      Feed page data
// @Description  Posts (limit 10) with their comments, exactly as embedded in the feed page. Upstream failures yield an empty list.
// @Tags         pages
// @Produce      json
// @Success      200  {object}  dto.FeedResponseDTO
// @Router       /feed [get]
func FeedDataHandler(loader FeedLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := loader.Load(c.Request.Context())
		c.JSON(http.StatusOK, dto.FeedResponseDTO{Posts: res.ItemsOrEmpty()})
	}
}

// VaultDataHandler godoc
// @Summary      Vault page data
// @Description  Photos (limit 40), exactly as embedded in the vault page. Upstream failures yield an empty list.
// @Tags         pages
// @Produce      json
// @Success      200  {object}  dto.VaultResponseDTO
// @Router       /vault [get]
func VaultDataHandler(loader VaultLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := loader.Load(c.Request.Context())
		c.JSON(http.StatusOK, dto.VaultResponseDTO{Photos: res.ItemsOrEmpty()})
	}
}

// HealthHandler 는 upstream 을 3초 안에 확인한다.
func HealthHandler(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := checker.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponseDTO{Status: "degraded", Upstream: "down", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
	}
}
