package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record 已存储记录的统一接口，按 Kind() 区分具体格式
type Record interface {
	Kind() RecordKind
	// StoredID 返回存储层分配的 _id
	StoredID() string
	// Stamp 写入服务端字段，插入前调用
	Stamp(oid primitive.ObjectID, now time.Time)
	// CSVRow 按 CSVHeader(Kind()) 的列顺序输出一行
	CSVRow() []string
}

// StoredMeta 所有记录共有的服务端字段
type StoredMeta struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (m *StoredMeta) StoredID() string {
	if m.ObjectID.IsZero() {
		return ""
	}
	return m.ObjectID.Hex()
}

func (m *StoredMeta) Stamp(oid primitive.ObjectID, now time.Time) {
	m.ObjectID = oid
	m.CreatedAt = now.UTC()
}

func (m *StoredMeta) metaColumns() []string {
	return []string{m.StoredID(), formatTime(m.CreatedAt)}
}

var metaHeader = []string{"_id", "created_at"}

// NewRecord 返回指定类型的空记录，用于从存储层解码
func NewRecord(kind RecordKind) Record {
	switch kind {
	case KindEmotion:
		return &EmotionRecord{}
	case KindVlogData:
		return &VlogRecord{}
	case KindLocation:
		return &LocationRecord{}
	case KindLegacyVlog:
		return &LegacyVlogRecord{}
	case KindLegacySentiment:
		return &LegacySentimentRecord{}
	case KindLegacyGPS:
		return &LegacyGPSRecord{}
	}
	return nil
}

// CSVHeader 返回该类型固定的 CSV 列，与数据内容无关。
// 嵌套对象用 "前缀.字段" 展开，缺失时为空。
func CSVHeader(kind RecordKind) []string {
	var cols []string
	switch kind {
	case KindEmotion:
		cols = []string{"id", "mood", "emotion", "timestamp", "hasVlog", "userId"}
		cols = append(cols, locationHeader("location")...)
	case KindVlogData:
		cols = []string{"id", "mood", "moodLabel", "moodEmoji", "timestamp", "date", "videoUri", "hasVideo", "userId"}
		cols = append(cols, locationHeader("location")...)
	case KindLocation:
		cols = []string{"id", "latitude", "longitude", "accuracy", "hasGps", "timestamp", "userId"}
	case KindLegacyVlog:
		cols = []string{"id", "title", "description", "video_url", "video_path", "thumbnail_url",
			"duration", "timestamp", "upload_time", "user_id", "mood", "tags"}
		cols = append(cols, locationHeader("location")...)
		cols = append(cols, "sentiment_analysis.text", "sentiment_analysis.mood", "sentiment_analysis.sentiment_score")
	case KindLegacySentiment:
		cols = legacySentimentHeader
	case KindLegacyGPS:
		cols = legacyGPSHeader
	default:
		return nil
	}
	return append(append([]string(nil), metaHeader...), cols...)
}

var legacySentimentHeader = []string{"id", "text", "mood", "mood_score", "sentiment_score",
	"confidence", "timestamp", "upload_time", "user_id", "emotions"}

var legacyGPSHeader = []string{"id", "latitude", "longitude", "accuracy", "address",
	"timestamp", "upload_time", "user_id"}

func locationHeader(prefix string) []string {
	return []string{prefix + ".latitude", prefix + ".longitude", prefix + ".accuracy", prefix + ".address"}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatTags(tags []string) string {
	return strings.Join(tags, ";")
}

func formatScores(m map[string]float64) string {
	if len(m) == 0 {
		return ""
	}
	// map 的键按字母序输出，列值稳定
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}
