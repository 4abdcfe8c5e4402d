package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Feed     FeedConfig     `yaml:"feed"`
	Vault    VaultConfig    `yaml:"vault"`
	Site     SiteConfig     `yaml:"site"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	ServiceName string `yaml:"service_name"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// CORSAllowedOrigins 는 /api 경로에만 적용된다.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// UpstreamConfig 는 placeholder REST API 접속 정보다.
// Timeout 은 아웃바운드 요청 하나에 적용되는 상한이다.
type UpstreamConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type FeedConfig struct {
	PostLimit int `yaml:"post_limit"`

	// EmptyCommentsPostID 에 해당하는 포스트는 조회된 댓글과 무관하게 항상 빈 댓글 목록을 가진다.
	// 0 이면 적용하지 않는다.
	EmptyCommentsPostID int `yaml:"empty_comments_post_id"`
}

type VaultConfig struct {
	PhotoLimit int `yaml:"photo_limit"`
}

// SiteConfig 는 페이지 <head> 메타데이터에 쓰이는 사이트 정보다.
type SiteConfig struct {
	Name          string `yaml:"name"`
	BaseURL       string `yaml:"base_url"`
	FaviconURL    string `yaml:"favicon_url"`
	ImageURL      string `yaml:"image_url"`
	TwitterHandle string `yaml:"twitter_handle"`
}

var config *AppConfig

// Default 는 config.yaml 이 없을 때 사용하는 기본 설정이다.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info", ServiceName: "fanvue-front"},
		Server: ServerConfig{
			Addr:               ":8080",
			ShutdownTimeout:    10 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Upstream: UpstreamConfig{
			BaseURL: "https://jsonplaceholder.typicode.com",
			Timeout: 10 * time.Second,
		},
		Feed: FeedConfig{
			PostLimit:           10,
			EmptyCommentsPostID: 1,
		},
		Vault: VaultConfig{PhotoLimit: 40},
		Site: SiteConfig{
			Name:          "Fanvue",
			BaseURL:       "https://www.fanvue.com",
			FaviconURL:    "https://www.fanvue.com/favicon.ico",
			ImageURL:      "https://www.fanvue.com/path/to/featured-image.jpg",
			TwitterHandle: "@FanvueOfficial",
		},
	}
}

// InitApp 은 .env 와 config.yaml 을 읽어 전역 설정을 초기화한다.
// config.yaml 이 없으면 Default() 값에 환경변수만 덮어쓴다.
func InitApp() error {
	basePath := GetBasePath()

	// load environment variables
	_ = godotenv.Load(filepath.Join(basePath, ENV_FILE))

	c := Default()

	// load configuration file
	data, err := os.ReadFile(filepath.Join(basePath, CONFIG_FILE))
	switch {
	case err == nil:
		if err := Parse(data, &c); err != nil {
			return err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("config: read %s: %w", CONFIG_FILE, err)
	}

	applyEnv(&c)
	config = &c
	return nil
}

// Parse 는 YAML 바이트를 c 위에 덮어쓴다. c 에 이미 채워진 값은 기본값 역할을 한다.
func Parse(data []byte, c *AppConfig) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", CONFIG_FILE, err)
	}
	return nil
}

func applyEnv(c *AppConfig) {
	if v := os.Getenv("UPSTREAM_BASE_URL"); v != "" {
		c.Upstream.BaseURL = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		c.Logging.ServiceName = v
	}
}

func GetConfig() AppConfig {
	if config == nil {
		if err := InitApp(); err != nil {
			panic(err)
		}
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
