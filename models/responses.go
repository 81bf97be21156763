package models

// APIResponse 除导出外所有 JSON 接口的统一响应结构
type APIResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data,omitempty"`
	Count   *int64       `json:"count,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError 字段级校验错误，Field 为 JSON 路径，如 location.latitude
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// CreatedResponse 新增记录成功后的 data 字段
type CreatedResponse struct {
	ID   string     `json:"id"`
	Kind RecordKind `json:"kind"`
}

// KindStats 单个类型的统计，用于状态接口和页面
type KindStats struct {
	Kind       RecordKind    `json:"kind"`
	Label      string        `json:"label"`
	Schema     SchemaVersion `json:"schema"`
	Collection string        `json:"collection"`
	Count      int64         `json:"count"`
}

// StatusResponse GET /status 的 data 字段
type StatusResponse struct {
	Database    string      `json:"database"` // connected / disconnected
	Driver      string      `json:"driver"`
	Name        string      `json:"name"`
	Collections []KindStats `json:"collections,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// Int64Ptr 便于构造 APIResponse.Count
func Int64Ptr(v int64) *int64 { return &v }
