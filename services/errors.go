package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// ErrStoreUnavailable 存储不可达，调用方应返回 503
var ErrStoreUnavailable = errors.New("database unavailable")

// SelectorError 导出参数不受支持
type SelectorError struct {
	Param  string // data_type 或 format
	Value  string
	Reason string
}

func (e *SelectorError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s %q: %s", e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("unsupported %s %q", e.Param, e.Value)
}

// classifyMongoError 把驱动的连接类错误归为 ErrStoreUnavailable，保留原始错误
func classifyMongoError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	var selErr topology.ServerSelectionError
	if mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &selErr) {
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
