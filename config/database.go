package config

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// InitMongo 初始化 MongoDB 连接。
// 只有连接串无效时才返回错误；数据库暂时不可达时仍返回客户端，
// 由各请求自行报告不可用，服务照常启动。
func InitMongo(ctx context.Context, config Config) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(config.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(config.MongoTimeout()).
		SetServerSelectionTimeout(config.MongoTimeout()).
		SetAppName("emogo-backend")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("MongoDB连接失败: %w", err)
	}

	// 测试连接
	pingCtx, cancel := context.WithTimeout(ctx, config.MongoTimeout())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		Logger.Warnw("MongoDB连接测试失败，服务将以不可用状态启动",
			"error", err,
			"database", config.DatabaseName,
		)
	} else {
		Logger.Infow("已连接MongoDB", "database", config.DatabaseName)
	}

	return client.Database(config.DatabaseName), nil
}
