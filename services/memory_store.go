package services

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"EmoGoBackend/config"
	"EmoGoBackend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore 内存记录存储，STORE_DRIVER=memory 时使用，重启后数据丢失
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[models.RecordKind][]models.Record
	closed      bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[models.RecordKind][]models.Record)}
}

func (s *MemoryStore) Driver() string { return config.StoreDriverMemory }

func (s *MemoryStore) Insert(ctx context.Context, kind models.RecordKind, record models.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !kind.Valid() {
		return "", fmt.Errorf("unknown record kind %q", kind)
	}
	if record.Kind() != kind {
		return "", fmt.Errorf("record of kind %q cannot be stored as %q", record.Kind(), kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", fmt.Errorf("insert %s: %w", kind.Collection(), ErrStoreUnavailable)
	}
	if record.StoredID() == "" {
		record.Stamp(primitive.NewObjectID(), nowFunc())
	}
	s.collections[kind] = append(s.collections[kind], cloneRecord(record))
	return record.StoredID(), nil
}

func (s *MemoryStore) FindAll(ctx context.Context, kind models.RecordKind, opts FindOptions) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("find %s: %w", kind.Collection(), ErrStoreUnavailable)
	}

	docs := s.collections[kind]
	if opts.Skip > 0 {
		if opts.Skip >= int64(len(docs)) {
			docs = nil
		} else {
			docs = docs[opts.Skip:]
		}
	}
	if opts.Limit > 0 && opts.Limit < int64(len(docs)) {
		docs = docs[:opts.Limit]
	}

	records := make([]models.Record, 0, len(docs))
	for _, rec := range docs {
		records = append(records, cloneRecord(rec))
	}
	return records, nil
}

func (s *MemoryStore) Count(ctx context.Context, kind models.RecordKind) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, fmt.Errorf("count %s: %w", kind.Collection(), ErrStoreUnavailable)
	}
	return int64(len(s.collections[kind])), nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("ping: %w", ErrStoreUnavailable)
	}
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// cloneRecord 浅拷贝，调用方修改返回值不会影响已存储的记录
func cloneRecord(rec models.Record) models.Record {
	v := reflect.ValueOf(rec)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return rec
	}
	cp := reflect.New(v.Elem().Type())
	cp.Elem().Set(v.Elem())
	return cp.Interface().(models.Record)
}
