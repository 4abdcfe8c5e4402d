package views

import (
	"strings"

	"fanvue-front/config"
)

const (
	pageTitle       = "Fanvue: Connect, Create, Earn on the Leading Creator Subscription Platform"
	pageDescription = "Fanvue is the ultimate creator subscription platform, offering tools for creators to share exclusive content, connect with fans, and earn money. Sign up now to take home 85% for the first 3 months!"
	pageKeywords    = "Fanvue, creator platform, subscription platform, exclusive content, earn money, fan connection, AI features, messaging, pay-to-view, creator economy"
	ogTitle         = "Fanvue: The Future of Creator Subscription Platforms"
	ogDescription   = "Join the fastest growing creator subscription platform. Connect, create, and earn with exclusive tools and features. Sign up today!"
	twitterDesc     = "Fanvue empowers creators to share exclusive content, connect with fans, and earn. Sign up now and get 85% for the first 3 months!"
)

// PageMeta 는 <head> 에 들어가는 제목, 설명, OpenGraph/Twitter 태그 값이다.
type PageMeta struct {
	Title              string
	Description        string
	Keywords           string
	Author             string
	SiteName           string
	FaviconURL         string
	OGTitle            string
	OGDescription      string
	OGURL              string
	ImageURL           string
	TwitterDescription string
	TwitterHandle      string
	CanonicalURL       string
}

func baseMeta(site config.SiteConfig) PageMeta {
	return PageMeta{
		Title:              pageTitle,
		Description:        pageDescription,
		Keywords:           pageKeywords,
		Author:             site.Name,
		FaviconURL:         site.FaviconURL,
		OGTitle:            ogTitle,
		OGDescription:      ogDescription,
		ImageURL:           site.ImageURL,
		TwitterDescription: twitterDesc,
		TwitterHandle:      site.TwitterHandle,
	}
}

// FeedMeta 는 피드 페이지 메타데이터다. og:url 은 사이트 루트, canonical 은 /feed 를 가리킨다.
func FeedMeta(site config.SiteConfig) PageMeta {
	m := baseMeta(site)
	m.SiteName = site.Name
	m.OGURL = strings.TrimRight(site.BaseURL, "/")
	m.CanonicalURL = joinURL(site.BaseURL, "/feed")
	return m
}

func VaultMeta(site config.SiteConfig) PageMeta {
	m := baseMeta(site)
	m.OGURL = joinURL(site.BaseURL, "/vault")
	return m
}

func joinURL(base, p string) string {
	return strings.TrimRight(base, "/") + p
}
