package models

import "strings"

// SchemaVersion 记录所属的格式世代
type SchemaVersion string

const (
	SchemaFrontend SchemaVersion = "frontend"
	SchemaLegacy   SchemaVersion = "legacy"
)

// RecordKind 记录类型，决定校验规则、集合和导出列
type RecordKind string

const (
	KindEmotion  RecordKind = "emotions"
	KindVlogData RecordKind = "vlogs-data"
	KindLocation RecordKind = "locations"

	KindLegacyVlog      RecordKind = "vlogs"
	KindLegacySentiment RecordKind = "sentiments"
	KindLegacyGPS       RecordKind = "gps"
)

type kindInfo struct {
	schema     SchemaVersion
	collection string
	listKey    string
	label      string
}

var kinds = map[RecordKind]kindInfo{
	KindEmotion:         {SchemaFrontend, "emotion_data", "emotions", "Emotions"},
	KindVlogData:        {SchemaFrontend, "vlog_data", "vlogs_data", "Vlog Data"},
	KindLocation:        {SchemaFrontend, "location_data", "locations", "Locations"},
	KindLegacyVlog:      {SchemaLegacy, "vlogs", "vlogs", "Vlogs (legacy)"},
	KindLegacySentiment: {SchemaLegacy, "sentiments", "sentiments", "Sentiments (legacy)"},
	KindLegacyGPS:       {SchemaLegacy, "gps_coordinates", "gps_coordinates", "GPS Coordinates (legacy)"},
}

// FrontendKinds 前端格式的记录类型，按展示顺序排列
var FrontendKinds = []RecordKind{KindEmotion, KindVlogData, KindLocation}

// LegacyKinds 旧格式的记录类型
var LegacyKinds = []RecordKind{KindLegacyVlog, KindLegacySentiment, KindLegacyGPS}

// AllKinds 返回全部记录类型，前端格式在前
func AllKinds() []RecordKind {
	all := make([]RecordKind, 0, len(FrontendKinds)+len(LegacyKinds))
	all = append(all, FrontendKinds...)
	return append(all, LegacyKinds...)
}

func (k RecordKind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

func (k RecordKind) Schema() SchemaVersion { return kinds[k].schema }

// Collection 返回存储该类型的集合名
func (k RecordKind) Collection() string { return kinds[k].collection }

// ListKey 返回列表和导出响应中使用的键名
func (k RecordKind) ListKey() string { return kinds[k].listKey }

func (k RecordKind) Label() string { return kinds[k].label }

// Route 返回该类型的 HTTP 路径
func (k RecordKind) Route() string { return "/" + string(k) }

func (k RecordKind) String() string { return string(k) }

// kindAliases 集合名也可以作为类型选择器使用
var kindAliases = map[string]RecordKind{
	"emotion_data":    KindEmotion,
	"vlog_data":       KindVlogData,
	"location_data":   KindLocation,
	"gps_coordinates": KindLegacyGPS,
}

// ParseKind 解析单个记录类型名称（大小写不敏感）
func ParseKind(name string) (RecordKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if k := RecordKind(name); k.Valid() {
		return k, true
	}
	k, ok := kindAliases[name]
	return k, ok
}

// ResolveDataType 把 data_type 选择器展开为记录类型列表。
// 支持单个类型名、集合名别名以及 frontend / legacy / all 三个分组别名。
func ResolveDataType(selector string) ([]RecordKind, bool) {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "all":
		return AllKinds(), true
	case string(SchemaFrontend):
		return append([]RecordKind(nil), FrontendKinds...), true
	case string(SchemaLegacy):
		return append([]RecordKind(nil), LegacyKinds...), true
	}
	if k, ok := ParseKind(selector); ok {
		return []RecordKind{k}, true
	}
	return nil, false
}
