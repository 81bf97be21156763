package models

import "time"

// LegacyGPSPoint 旧格式的 GPS 坐标
type LegacyGPSPoint struct {
	ID         string     `bson:"id,omitempty" json:"id,omitempty"`
	Latitude   float64    `bson:"latitude" json:"latitude"`
	Longitude  float64    `bson:"longitude" json:"longitude"`
	Timestamp  time.Time  `bson:"timestamp" json:"timestamp"`
	UploadTime *time.Time `bson:"upload_time,omitempty" json:"upload_time,omitempty"`
	Accuracy   *float64   `bson:"accuracy,omitempty" json:"accuracy,omitempty"`
	Address    string     `bson:"address,omitempty" json:"address,omitempty"` // 自由文本地址
	UserID     string     `bson:"user_id,omitempty" json:"user_id,omitempty"`
}

// LegacySentiment 旧格式的情感分析结果
type LegacySentiment struct {
	ID             string             `bson:"id,omitempty" json:"id,omitempty"`
	Text           string             `bson:"text" json:"text"`
	Mood           string             `bson:"mood,omitempty" json:"mood,omitempty"`             // 心情 (如: 非常好)
	MoodScore      string             `bson:"mood_score,omitempty" json:"mood_score,omitempty"` // 心情值 (如: 5/5)
	SentimentScore float64            `bson:"sentiment_score" json:"sentiment_score"`           // -1 ~ 1
	Confidence     *float64           `bson:"confidence,omitempty" json:"confidence,omitempty"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
	UploadTime     *time.Time         `bson:"upload_time,omitempty" json:"upload_time,omitempty"`
	UserID         string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Emotions       map[string]float64 `bson:"emotions,omitempty" json:"emotions,omitempty"`
}

// LegacyGPSRecord gps_coordinates 集合中的记录
type LegacyGPSRecord struct {
	StoredMeta     `bson:",inline"`
	LegacyGPSPoint `bson:",inline"`
}

func (r *LegacyGPSRecord) Kind() RecordKind { return KindLegacyGPS }

func (r *LegacyGPSRecord) CSVRow() []string {
	return append(r.metaColumns(),
		r.ID,
		formatFloat(r.Latitude),
		formatFloat(r.Longitude),
		formatFloatPtr(r.Accuracy),
		r.Address,
		formatTime(r.Timestamp),
		formatTimePtr(r.UploadTime),
		r.UserID,
	)
}

// LegacySentimentRecord sentiments 集合中的记录
type LegacySentimentRecord struct {
	StoredMeta      `bson:",inline"`
	LegacySentiment `bson:",inline"`
}

func (r *LegacySentimentRecord) Kind() RecordKind { return KindLegacySentiment }

func (r *LegacySentimentRecord) CSVRow() []string {
	return append(r.metaColumns(),
		r.ID,
		r.Text,
		r.Mood,
		r.MoodScore,
		formatFloat(r.SentimentScore),
		formatFloatPtr(r.Confidence),
		formatTime(r.Timestamp),
		formatTimePtr(r.UploadTime),
		r.UserID,
		formatScores(r.Emotions),
	)
}

// LegacyVlogRecord vlogs 集合中的记录。
// video_data 可能是很大的 base64 内容，不进入 CSV。
type LegacyVlogRecord struct {
	StoredMeta        `bson:",inline"`
	ID                string           `bson:"id,omitempty" json:"id,omitempty"`
	Title             string           `bson:"title" json:"title"`
	Description       string           `bson:"description,omitempty" json:"description,omitempty"`
	VideoURL          string           `bson:"video_url,omitempty" json:"video_url,omitempty"`
	VideoPath         string           `bson:"video_path,omitempty" json:"video_path,omitempty"`
	VideoData         string           `bson:"video_data,omitempty" json:"video_data,omitempty"`
	ThumbnailURL      string           `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	Duration          *float64         `bson:"duration,omitempty" json:"duration,omitempty"`
	Timestamp         time.Time        `bson:"timestamp" json:"timestamp"`
	UploadTime        *time.Time       `bson:"upload_time,omitempty" json:"upload_time,omitempty"`
	UserID            string           `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Mood              string           `bson:"mood,omitempty" json:"mood,omitempty"`
	Tags              []string         `bson:"tags,omitempty" json:"tags,omitempty"`
	Location          *LegacyGPSPoint  `bson:"location,omitempty" json:"location,omitempty"`
	SentimentAnalysis *LegacySentiment `bson:"sentiment_analysis,omitempty" json:"sentiment_analysis,omitempty"`
}

func (r *LegacyVlogRecord) Kind() RecordKind { return KindLegacyVlog }

func (r *LegacyVlogRecord) CSVRow() []string {
	row := append(r.metaColumns(),
		r.ID,
		r.Title,
		r.Description,
		r.VideoURL,
		r.VideoPath,
		r.ThumbnailURL,
		formatFloatPtr(r.Duration),
		formatTime(r.Timestamp),
		formatTimePtr(r.UploadTime),
		r.UserID,
		r.Mood,
		formatTags(r.Tags),
	)
	if loc := r.Location; loc != nil {
		row = append(row, formatFloat(loc.Latitude), formatFloat(loc.Longitude), formatFloatPtr(loc.Accuracy), loc.Address)
	} else {
		row = append(row, "", "", "", "")
	}
	if s := r.SentimentAnalysis; s != nil {
		row = append(row, s.Text, s.Mood, formatFloat(s.SentimentScore))
	} else {
		row = append(row, "", "", "")
	}
	return row
}
