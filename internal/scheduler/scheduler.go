package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/storage"
)

// Scheduler 定时预热各类别的标题缓存，让用户请求大概率命中缓存，
// 而不是每次都现场打几十个第三方站点
type Scheduler struct {
	cron      *cron.Cron
	collector *collector.Collector
	store     *storage.Store
}

func New(spec string, col *collector.Collector, store *storage.Store) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:      c,
		collector: col,
		store:     store,
	}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// 延迟执行首轮预热，避免与服务启动后的首批请求争抢资源
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.runOnce()
	})
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce 对外暴露的单次执行入口，方便手动触发预热
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	log.Println("start headlines warmup...")

	var wg sync.WaitGroup
	for _, category := range collector.Categories() {
		cat := category
		wg.Add(1)
		go func() {
			defer wg.Done()
			items := s.collector.Headlines(cat)
			if len(items) == 0 {
				log.Printf("warmup %s got 0 items", cat)
				return
			}
			s.store.SaveHeadlinesCache(cat, items)
			log.Printf("warmup %s done, cached %d items", cat, len(items))
		}()
	}

	wg.Wait()
	log.Println("headlines warmup done (all categories)")
}
