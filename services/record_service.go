package services

import (
	"context"
	"fmt"
	"time"

	"EmoGoBackend/config"
	"EmoGoBackend/models"
	"EmoGoBackend/utils"
)

var nowFunc = time.Now

// RecordService 记录的写入、查询和计数
type RecordService struct {
	store RecordStore
	cache StatsCache
	newID func(models.RecordKind) string
}

func NewRecordService(store RecordStore, cache StatsCache) *RecordService {
	if cache == nil {
		cache = NoopStatsCache{}
	}
	return &RecordService{
		store: store,
		cache: cache,
		newID: utils.GenerateRecordID,
	}
}

// Store 返回底层存储
func (s *RecordService) Store() RecordStore { return s.store }

// Create 把已通过校验的请求转成记录并写入，返回存储层 _id
func (s *RecordService) Create(ctx context.Context, req models.RecordRequest) (string, models.Record, error) {
	kind := req.Kind()
	record := req.ToRecord(s.newID(kind), nowFunc())

	id, err := s.store.Insert(ctx, kind, record)
	if err != nil {
		return "", nil, fmt.Errorf("create %s: %w", kind, err)
	}

	if err := s.cache.Invalidate(ctx, kind); err != nil {
		config.Logger.Warnw("清除统计缓存失败", "kind", kind, "error", err)
	}
	return id, record, nil
}

// List 返回一页记录以及集合总数
func (s *RecordService) List(ctx context.Context, kind models.RecordKind, opts FindOptions) ([]models.Record, int64, error) {
	records, err := s.store.FindAll(ctx, kind, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", kind, err)
	}

	// 不分页时总数就是结果长度，省一次计数
	if opts.Skip == 0 && opts.Limit == 0 {
		return records, int64(len(records)), nil
	}
	total, err := s.Count(ctx, kind)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Count 优先读取缓存的计数。未命中时按计数前读到的版本回填，
// 计数期间发生的写入会让这次回填失效。
func (s *RecordService) Count(ctx context.Context, kind models.RecordKind) (int64, error) {
	n, version, ok, err := s.cache.GetCount(ctx, kind)
	if err != nil {
		config.Logger.Warnw("读取统计缓存失败", "kind", kind, "error", err)
	} else if ok {
		return n, nil
	}

	n, countErr := s.store.Count(ctx, kind)
	if countErr != nil {
		return 0, fmt.Errorf("count %s: %w", kind, countErr)
	}
	if err != nil {
		// 版本未知，不回填
		return n, nil
	}
	if err := s.cache.SetCount(ctx, kind, version, n); err != nil {
		config.Logger.Warnw("写入统计缓存失败", "kind", kind, "error", err)
	}
	return n, nil
}

// Stats 返回全部类型的计数，前端格式在前
func (s *RecordService) Stats(ctx context.Context) ([]models.KindStats, error) {
	stats := make([]models.KindStats, 0, len(models.AllKinds()))
	for _, kind := range models.AllKinds() {
		n, err := s.Count(ctx, kind)
		if err != nil {
			return nil, err
		}
		stats = append(stats, models.KindStats{
			Kind:       kind,
			Label:      kind.Label(),
			Schema:     kind.Schema(),
			Collection: kind.Collection(),
			Count:      n,
		})
	}
	return stats, nil
}

// Ping 检查存储连通性
func (s *RecordService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
