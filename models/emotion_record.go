package models

import "time"

// EmotionRecord 情绪记录模型（前端格式）
type EmotionRecord struct {
	StoredMeta `bson:",inline"`
	ID         string    `bson:"id" json:"id"`
	Mood       int       `bson:"mood" json:"mood"`       // 1-5
	Emotion    string    `bson:"emotion" json:"emotion"` // 心情文字
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	HasVlog    bool      `bson:"hasVlog" json:"hasVlog"`
	Location   *Location `bson:"location,omitempty" json:"location,omitempty"`
	UserID     string    `bson:"userId,omitempty" json:"userId,omitempty"`
}

func (r *EmotionRecord) Kind() RecordKind { return KindEmotion }

func (r *EmotionRecord) CSVRow() []string {
	row := append(r.metaColumns(),
		r.ID,
		itoa(r.Mood),
		r.Emotion,
		formatTime(r.Timestamp),
		formatBool(r.HasVlog),
		r.UserID,
	)
	return append(row, r.Location.csvColumns()...)
}
