package models

import "time"

// Location 情绪和 vlog 记录中可选的嵌套位置
type Location struct {
	Latitude  float64  `bson:"latitude" json:"latitude"`
	Longitude float64  `bson:"longitude" json:"longitude"`
	Accuracy  *float64 `bson:"accuracy,omitempty" json:"accuracy,omitempty"`
	Address   string   `bson:"address,omitempty" json:"address,omitempty"`
}

// csvColumns 与 locationHeader 对应；nil 时输出空列
func (l *Location) csvColumns() []string {
	if l == nil {
		return []string{"", "", "", ""}
	}
	return []string{formatFloat(l.Latitude), formatFloat(l.Longitude), formatFloatPtr(l.Accuracy), l.Address}
}

// LocationRecord 前端格式的定位记录
type LocationRecord struct {
	StoredMeta `bson:",inline"`
	ID         string    `bson:"id" json:"id"`
	Latitude   float64   `bson:"latitude" json:"latitude"`
	Longitude  float64   `bson:"longitude" json:"longitude"`
	Accuracy   *float64  `bson:"accuracy,omitempty" json:"accuracy,omitempty"`
	HasGPS     bool      `bson:"hasGps" json:"hasGps"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	UserID     string    `bson:"userId,omitempty" json:"userId,omitempty"`
}

func (r *LocationRecord) Kind() RecordKind { return KindLocation }

func (r *LocationRecord) CSVRow() []string {
	return append(r.metaColumns(),
		r.ID,
		formatFloat(r.Latitude),
		formatFloat(r.Longitude),
		formatFloatPtr(r.Accuracy),
		formatBool(r.HasGPS),
		formatTime(r.Timestamp),
		r.UserID,
	)
}
