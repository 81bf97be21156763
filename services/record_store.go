package services

import (
	"context"

	"EmoGoBackend/models"
)

// FindOptions 列表查询参数，Limit 为 0 表示不限制
type FindOptions struct {
	Skip  int64
	Limit int64
}

// RecordStore 持久化适配层：每种记录类型对应一个集合
type RecordStore interface {
	// Insert 写入一条记录，返回存储层的 _id
	Insert(ctx context.Context, kind models.RecordKind, record models.Record) (string, error)
	// FindAll 按插入顺序返回记录
	FindAll(ctx context.Context, kind models.RecordKind, opts FindOptions) ([]models.Record, error)
	Count(ctx context.Context, kind models.RecordKind) (int64, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	// Driver 返回存储实现名称，用于状态接口
	Driver() string
}
