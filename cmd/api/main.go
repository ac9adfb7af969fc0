package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/LJTian/NewsPulse/internal/api"
	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/config"
	"github.com/LJTian/NewsPulse/internal/scheduler"
	"github.com/LJTian/NewsPulse/internal/storage"
	"github.com/LJTian/NewsPulse/internal/translator"
)

func main() {
	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	col := collector.New(cfg.FetchTimeout)
	tr := translator.New(cfg.GoogleAPIKey, cfg.OpenRouterKeys, cfg.SiteURL)

	// 定时预热标题缓存，用户请求尽量走缓存
	s, err := scheduler.New(cfg.CronSpec, col, store)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()

	r := gin.Default()
	apiServer := api.NewServer(store, col, tr)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
