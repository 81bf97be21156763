package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// epochMillisThreshold 超过该值的数字按毫秒处理
const epochMillisThreshold = 2e10

// 不带时区的时间按 UTC 解析
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Timestamp 请求中的时间字段。
// 接受 RFC3339、不带时区的 ISO 8601 时间（按 UTC）以及 Unix 秒或毫秒数字。
// 解析失败不会中断 JSON 绑定，而是交给 time 校验规则按字段报告。
type Timestamp struct {
	time.Time
	raw string
	err error
}

// NewTimestamp 由已知时间构造
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	t.raw = string(data)
	t.Time, t.err = parseTimestampJSON(data)
	return nil
}

// Err 返回解析错误，合法时为 nil
func (t Timestamp) Err() error { return t.err }

// Raw 请求中的原始 JSON 文本
func (t Timestamp) Raw() string { return t.raw }

func parseTimestampJSON(data []byte) (time.Time, error) {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return time.Time{}, err
		}
		return ParseTimestamp(s)
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp must be a string or a number, got %s", data)
	}
	return fromEpoch(f), nil
}

// ParseTimestamp 解析字符串形式的时间，数字字符串按 Unix 时间处理
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return fromEpoch(f), nil
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", s)
}

func fromEpoch(f float64) time.Time {
	if math.Abs(f) > epochMillisThreshold {
		f /= 1000
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
}

func (t *Timestamp) timePtr() *time.Time {
	if t == nil {
		return nil
	}
	u := t.Time.UTC()
	return &u
}
