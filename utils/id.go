package utils

import (
	"EmoGoBackend/config"
	"EmoGoBackend/models"

	"github.com/google/uuid"
)

// GenerateRecordID 客户端没有提供 id 时为记录生成 UUID
func GenerateRecordID(kind models.RecordKind) string {
	id := uuid.NewString()
	config.Logger.Debugw("生成记录ID", "kind", kind, "collection", kind.Collection(), "id", id)
	return id
}
