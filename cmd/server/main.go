package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/aniruddha-beep/movie-suggestion/catalog"
	"github.com/aniruddha-beep/movie-suggestion/config"
	"github.com/aniruddha-beep/movie-suggestion/core"
	"github.com/aniruddha-beep/movie-suggestion/engine"
	"github.com/aniruddha-beep/movie-suggestion/filter"
	"github.com/aniruddha-beep/movie-suggestion/poster"
	"github.com/aniruddha-beep/movie-suggestion/server"
	"github.com/aniruddha-beep/movie-suggestion/store"
	"github.com/aniruddha-beep/movie-suggestion/textsim"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to service config")
	flag.Parse()

	// .env 可选，覆盖走环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 启动期构建两个不可变工件：目录与相似度矩阵。
	// 数据集不可读/不可解析是致命错误，无法构建有效状态。
	cat, err := catalog.Load(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("catalog loaded: %d movies", cat.Len())

	matrix := textsim.Build(cat.Overviews())
	log.Printf("similarity matrix built: %dx%d", matrix.Dim(), matrix.Dim())

	rules, err := filter.NewRuleFilter(cfg.Recommend.Rules)
	if err != nil {
		log.Fatalf("compile rules: %v", err)
	}

	posterClient := &poster.Client{
		APIKey:      cfg.Poster.APIKey,
		Endpoint:    cfg.Poster.Endpoint,
		Placeholder: cfg.Poster.Placeholder,
		Timeout:     cfg.PosterTimeout(),
		CacheTTL:    cfg.Poster.Cache.TTL,
	}
	if cache := buildCache(cfg); cache != nil {
		log.Printf("poster cache enabled: %s", cache.Name())
		posterClient.Cache = cache
		defer cache.Close()
	}

	e := &engine.Engine{
		Catalog: cat,
		Matrix:  matrix,
		Poster:  posterClient,
		Rules:   rules,
		TopN:    cfg.Recommend.TopN,
	}

	router := server.NewRouter(server.NewHandler(e))
	log.Printf("listening on %s", cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// buildCache 按配置构建可选的海报缓存后端，默认不启用。
func buildCache(cfg *config.Config) core.Store {
	switch cfg.Poster.Cache.Backend {
	case "memory":
		return store.NewMemoryStore()
	case "redis":
		s, err := store.NewRedisStore(cfg.Poster.Cache.Addr, cfg.Poster.Cache.DB)
		if err != nil {
			log.Fatalf("redis cache: %v", err)
		}
		return s
	default:
		return nil
	}
}
