package storage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/processor"
)

// 统计计数器的固定 key
const (
	CounterTotalRequests = "total_requests"
	CounterTelegramPosts = "telegram_posts"
	CounterAnalytics     = "analytics"
	CounterHeadlines     = "headlines"
)

// 历史记录只保留最近几条，新记录插入后裁掉更旧的
const historyKeep = 5

// 标题缓存 TTL：采集一轮要打几十个第三方站点，短缓存既减轻上游压力
// 也让前端刷新足够快
const headlinesCacheTTL = 5 * time.Minute

// StatCounter 单个使用量计数器
type StatCounter struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Count     int64     `json:"count"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HistoryEntry 一次摘要/解析操作的记录，Entry 为调用方自定义的 JSON 负载
type HistoryEntry struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Entry     datatypes.JSONMap `gorm:"type:jsonb" json:"entry"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Stats 对外暴露的统计快照，字段名与前端约定保持一致
type Stats struct {
	TotalRequests int64            `json:"total_requests"`
	TelegramPosts int64            `json:"telegram_posts"`
	Analytics     int64            `json:"analytics"`
	Headlines     int64            `json:"headlines"`
	History       []map[string]any `json:"history"`
}

type Store struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewStore(dsn, redisAddr string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&StatCounter{}, &HistoryEntry{}); err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	return &Store{DB: db, Redis: rdb}, nil
}

// counterKeyForType 将请求里的 type 映射到计数器 key；未知类型只计入总数
func counterKeyForType(statType string) string {
	switch statType {
	case "telegram":
		return CounterTelegramPosts
	case "analytics":
		return CounterAnalytics
	case "headlines":
		return CounterHeadlines
	default:
		return ""
	}
}

// RecordStat 递增计数器并（可选）写入一条历史记录，随后返回最新快照。
// total_requests 无条件加一，与具体 type 的计数器互不影响
func (s *Store) RecordStat(statType string, entry map[string]any) (Stats, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := incrementCounter(tx, CounterTotalRequests); err != nil {
			return err
		}
		if key := counterKeyForType(statType); key != "" {
			if err := incrementCounter(tx, key); err != nil {
				return err
			}
		}

		if len(entry) > 0 {
			sanitized := make(map[string]any, len(entry))
			for k, v := range entry {
				if sv, ok := v.(string); ok {
					v = processor.ValidUTF8(sv)
				}
				sanitized[k] = v
			}
			if err := tx.Create(&HistoryEntry{Entry: datatypes.JSONMap(sanitized)}).Error; err != nil {
				return err
			}
			if err := trimHistory(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	return s.Stats()
}

func incrementCounter(tx *gorm.DB, key string) error {
	counter := &StatCounter{Key: key}
	if err := tx.FirstOrCreate(counter, StatCounter{Key: key}).Error; err != nil {
		return err
	}
	return tx.Model(counter).UpdateColumn("count", gorm.Expr("count + 1")).Error
}

// trimHistory 超出保留窗口的旧记录直接删除
func trimHistory(tx *gorm.DB) error {
	var ids []uint
	if err := tx.Model(&HistoryEntry{}).Order("id DESC").Limit(historyKeep).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) < historyKeep {
		return nil
	}
	return tx.Where("id < ?", ids[len(ids)-1]).Delete(&HistoryEntry{}).Error
}

// Stats 返回全部计数器与最近的历史记录（新的在前）
func (s *Store) Stats() (Stats, error) {
	var counters []StatCounter
	if err := s.DB.Find(&counters).Error; err != nil {
		return Stats{}, err
	}

	out := Stats{History: []map[string]any{}}
	for _, c := range counters {
		switch c.Key {
		case CounterTotalRequests:
			out.TotalRequests = c.Count
		case CounterTelegramPosts:
			out.TelegramPosts = c.Count
		case CounterAnalytics:
			out.Analytics = c.Count
		case CounterHeadlines:
			out.Headlines = c.Count
		}
	}

	var history []HistoryEntry
	if err := s.DB.Order("id DESC").Limit(historyKeep).Find(&history).Error; err != nil {
		return Stats{}, err
	}
	for _, h := range history {
		out.History = append(out.History, map[string]any(h.Entry))
	}

	return out, nil
}

// CachedHeadlines 读取某类别的标题缓存；未命中或反序列化失败都按未命中处理
func (s *Store) CachedHeadlines(category string) ([]collector.Headline, bool) {
	if s.Redis == nil {
		return nil, false
	}
	ctx := context.Background()
	bs, err := s.Redis.Get(ctx, headlinesCacheKey(category)).Bytes()
	if err != nil {
		return nil, false
	}
	var cached []collector.Headline
	if err := json.Unmarshal(bs, &cached); err != nil {
		return nil, false
	}
	return cached, true
}

// SaveHeadlinesCache 回写标题缓存。缓存只是加速手段，
// 失败只记日志不上抛
func (s *Store) SaveHeadlinesCache(category string, items []collector.Headline) {
	if s.Redis == nil || len(items) == 0 {
		return
	}
	bs, err := json.Marshal(items)
	if err != nil {
		return
	}
	ctx := context.Background()
	if err := s.Redis.Set(ctx, headlinesCacheKey(category), bs, headlinesCacheTTL).Err(); err != nil {
		log.Printf("warn: cache headlines %s: %v", category, err)
	}
}

func headlinesCacheKey(category string) string {
	return "headlines:" + category
}
