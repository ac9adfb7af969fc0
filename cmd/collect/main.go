package main

import (
	"log"

	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/config"
	"github.com/LJTian/NewsPulse/internal/scheduler"
	"github.com/LJTian/NewsPulse/internal/storage"
)

// 一个仅执行一轮采集的命令行入口：把全部类别的标题抓一遍并写入缓存，
// 适合手动预热或在部署后验证来源可用性
func main() {
	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	col := collector.New(cfg.FetchTimeout)

	s, err := scheduler.New(cfg.CronSpec, col, store)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}

	// 只执行一轮预热后退出
	s.RunOnce()
}
