package models

import "strconv"

// VlogDateLayout 服务端补全 date 字段时使用的格式
const VlogDateLayout = "2006-01-02 15:04:05"

// VlogRecord vlog 记录模型（前端格式），timestamp 为毫秒时间戳
type VlogRecord struct {
	StoredMeta `bson:",inline"`
	ID         string    `bson:"id" json:"id"`
	Mood       int       `bson:"mood" json:"mood"`
	MoodLabel  string    `bson:"moodLabel" json:"moodLabel"`
	MoodEmoji  string    `bson:"moodEmoji,omitempty" json:"moodEmoji,omitempty"`
	Timestamp  int64     `bson:"timestamp" json:"timestamp"`
	Date       string    `bson:"date" json:"date"`
	VideoURI   string    `bson:"videoUri,omitempty" json:"videoUri,omitempty"`
	HasVideo   bool      `bson:"hasVideo" json:"hasVideo"`
	Location   *Location `bson:"location,omitempty" json:"location,omitempty"`
	UserID     string    `bson:"userId,omitempty" json:"userId,omitempty"`
}

func (r *VlogRecord) Kind() RecordKind { return KindVlogData }

func (r *VlogRecord) CSVRow() []string {
	row := append(r.metaColumns(),
		r.ID,
		itoa(r.Mood),
		r.MoodLabel,
		r.MoodEmoji,
		strconv.FormatInt(r.Timestamp, 10),
		r.Date,
		r.VideoURI,
		formatBool(r.HasVideo),
		r.UserID,
	)
	return append(row, r.Location.csvColumns()...)
}

func itoa(i int) string { return strconv.Itoa(i) }
