package services

import (
	"context"
	"sync/atomic"

	"EmoGoBackend/models"

	"github.com/stretchr/testify/mock"
)

var _ RecordStore = (*MockRecordStore)(nil)

// MockRecordStore 按需覆盖函数的存储桩，未设置的方法委托给内存存储
type MockRecordStore struct {
	*MemoryStore
	InsertFunc  func(ctx context.Context, kind models.RecordKind, record models.Record) (string, error)
	FindAllFunc func(ctx context.Context, kind models.RecordKind, opts FindOptions) ([]models.Record, error)
	CountFunc   func(ctx context.Context, kind models.RecordKind) (int64, error)

	CountCallCount int32
}

func newMockRecordStore() *MockRecordStore {
	return &MockRecordStore{MemoryStore: NewMemoryStore()}
}

func (m *MockRecordStore) Insert(ctx context.Context, kind models.RecordKind, record models.Record) (string, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, kind, record)
	}
	return m.MemoryStore.Insert(ctx, kind, record)
}

func (m *MockRecordStore) FindAll(ctx context.Context, kind models.RecordKind, opts FindOptions) ([]models.Record, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, kind, opts)
	}
	return m.MemoryStore.FindAll(ctx, kind, opts)
}

func (m *MockRecordStore) Count(ctx context.Context, kind models.RecordKind) (int64, error) {
	atomic.AddInt32(&m.CountCallCount, 1)
	if m.CountFunc != nil {
		return m.CountFunc(ctx, kind)
	}
	return m.MemoryStore.Count(ctx, kind)
}

// MockStatsCache testify 的缓存桩
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetCount(ctx context.Context, kind models.RecordKind) (int64, int64, bool, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Get(1).(int64), args.Bool(2), args.Error(3)
}

func (m *MockStatsCache) SetCount(ctx context.Context, kind models.RecordKind, version, count int64) error {
	return m.Called(ctx, kind, version, count).Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, kind models.RecordKind) error {
	return m.Called(ctx, kind).Error(0)
}
