package cli

import (
	"context"
	"fmt"

	"EmoGoBackend/config"
	"EmoGoBackend/services"

	"github.com/go-redis/redis/v8"
)

// app 各子命令共用的依赖
type app struct {
	conf     config.Config
	store    services.RecordStore
	redis    *redis.Client
	records  *services.RecordService
	exporter *services.ExportService
}

func newApp(ctx context.Context, configDir string) (*app, error) {
	conf, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("无法加载配置: %w", err)
	}

	if err := config.InitLogger(conf.LogDir); err != nil {
		return nil, fmt.Errorf("无法初始化日志: %w", err)
	}

	a := &app{conf: conf}

	// 初始化存储
	switch conf.StoreDriver {
	case config.StoreDriverMemory:
		config.Logger.Warnw("使用内存存储，重启后数据会丢失")
		a.store = services.NewMemoryStore()
	default:
		db, err := config.InitMongo(ctx, conf)
		if err != nil {
			return nil, err
		}
		a.store = services.NewMongoStore(db)
	}

	// 初始化Redis，失败时不启用缓存
	var cache services.StatsCache = services.NoopStatsCache{}
	client, err := config.InitRedis(ctx, conf)
	if err != nil {
		config.Logger.Warnw("Redis不可用，统计缓存已禁用", "error", err)
	} else if client != nil {
		a.redis = client
		cache = services.NewRedisStatsCache(client, conf.StatsCacheTTL())
	}

	a.records = services.NewRecordService(a.store, cache)
	a.exporter = services.NewExportService(a.store)
	return a, nil
}

func (a *app) Close(ctx context.Context) {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			config.Logger.Warnw("关闭Redis失败", "error", err)
		}
	}
	if err := a.store.Close(ctx); err != nil {
		config.Logger.Warnw("关闭存储失败", "error", err)
	}
	config.Logger.Sync()
}
