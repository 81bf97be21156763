package models

import (
	"time"
)

// RecordRequest 新增记录的请求体。校验规则写在 binding 标签里，
// 绑定成功后通过 ToRecord 转成待存储的记录。
type RecordRequest interface {
	Kind() RecordKind
	// ToRecord 转换为存储记录；客户端没有提供 id 时使用 fallbackID
	ToRecord(fallbackID string, now time.Time) Record
}

// NewRequest 返回指定类型的空请求体，用于绑定 JSON
func NewRequest(kind RecordKind) RecordRequest {
	switch kind {
	case KindEmotion:
		return &CreateEmotionRequest{}
	case KindVlogData:
		return &CreateVlogRequest{}
	case KindLocation:
		return &CreateLocationRequest{}
	case KindLegacyVlog:
		return &LegacyVlogRequest{}
	case KindLegacySentiment:
		return &LegacySentimentRequest{}
	case KindLegacyGPS:
		return &LegacyGPSRequest{}
	}
	return nil
}

func pick(id, fallback string) string {
	if id != "" {
		return id
	}
	return fallback
}

// LocationInput 嵌套位置，必填字段用指针区分 0 和缺失
type LocationInput struct {
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Accuracy  *float64 `json:"accuracy" binding:"omitempty,gte=0"`
	Address   string   `json:"address" binding:"max=500"`
}

func (l *LocationInput) toLocation() *Location {
	if l == nil {
		return nil
	}
	return &Location{
		Latitude:  *l.Latitude,
		Longitude: *l.Longitude,
		Accuracy:  l.Accuracy,
		Address:   l.Address,
	}
}

// CreateEmotionRequest POST /emotions
type CreateEmotionRequest struct {
	ID        string         `json:"id" binding:"max=100"`
	Mood      *int           `json:"mood" binding:"required,min=1,max=5"`
	Emotion   string         `json:"emotion" binding:"required,max=100"`
	Timestamp *Timestamp     `json:"timestamp" binding:"omitempty,time"`
	HasVlog   bool           `json:"hasVlog"`
	Location  *LocationInput `json:"location"`
	UserID    string         `json:"userId" binding:"max=100"`
}

func (r *CreateEmotionRequest) Kind() RecordKind { return KindEmotion }

func (r *CreateEmotionRequest) ToRecord(fallbackID string, now time.Time) Record {
	ts := now.UTC()
	if r.Timestamp != nil {
		ts = r.Timestamp.UTC()
	}
	return &EmotionRecord{
		ID:        pick(r.ID, fallbackID),
		Mood:      *r.Mood,
		Emotion:   r.Emotion,
		Timestamp: ts,
		HasVlog:   r.HasVlog,
		Location:  r.Location.toLocation(),
		UserID:    r.UserID,
	}
}

// CreateVlogRequest POST /vlogs-data，timestamp 为毫秒时间戳
type CreateVlogRequest struct {
	ID        string         `json:"id" binding:"max=100"`
	Mood      *int           `json:"mood" binding:"required,min=1,max=5"`
	MoodLabel string         `json:"moodLabel" binding:"required,max=100"`
	MoodEmoji string         `json:"moodEmoji" binding:"max=32"`
	Timestamp *int64         `json:"timestamp" binding:"omitempty,gt=0"`
	Date      string         `json:"date" binding:"max=64"`
	VideoURI  string         `json:"videoUri" binding:"max=2048"`
	HasVideo  *bool          `json:"hasVideo"`
	Location  *LocationInput `json:"location"`
	UserID    string         `json:"userId" binding:"max=100"`
}

func (r *CreateVlogRequest) Kind() RecordKind { return KindVlogData }

func (r *CreateVlogRequest) ToRecord(fallbackID string, now time.Time) Record {
	ms := now.UnixMilli()
	if r.Timestamp != nil {
		ms = *r.Timestamp
	}
	date := r.Date
	if date == "" {
		date = time.UnixMilli(ms).UTC().Format(VlogDateLayout)
	}
	hasVideo := r.VideoURI != ""
	if r.HasVideo != nil {
		hasVideo = *r.HasVideo
	}
	return &VlogRecord{
		ID:        pick(r.ID, fallbackID),
		Mood:      *r.Mood,
		MoodLabel: r.MoodLabel,
		MoodEmoji: r.MoodEmoji,
		Timestamp: ms,
		Date:      date,
		VideoURI:  r.VideoURI,
		HasVideo:  hasVideo,
		Location:  r.Location.toLocation(),
		UserID:    r.UserID,
	}
}

// CreateLocationRequest POST /locations
type CreateLocationRequest struct {
	ID        string     `json:"id" binding:"max=100"`
	Latitude  *float64   `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64   `json:"longitude" binding:"required,gte=-180,lte=180"`
	Accuracy  *float64   `json:"accuracy" binding:"omitempty,gte=0"`
	HasGPS    *bool      `json:"hasGps"`
	Timestamp *Timestamp `json:"timestamp" binding:"omitempty,time"`
	UserID    string     `json:"userId" binding:"max=100"`
}

func (r *CreateLocationRequest) Kind() RecordKind { return KindLocation }

func (r *CreateLocationRequest) ToRecord(fallbackID string, now time.Time) Record {
	ts := now.UTC()
	if r.Timestamp != nil {
		ts = r.Timestamp.UTC()
	}
	hasGPS := true
	if r.HasGPS != nil {
		hasGPS = *r.HasGPS
	}
	return &LocationRecord{
		ID:        pick(r.ID, fallbackID),
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
		Accuracy:  r.Accuracy,
		HasGPS:    hasGPS,
		Timestamp: ts,
		UserID:    r.UserID,
	}
}

// LegacyGPSRequest POST /gps，也作为旧格式 vlog 的嵌套位置
type LegacyGPSRequest struct {
	ID         string     `json:"id"`
	Latitude   *float64   `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude  *float64   `json:"longitude" binding:"required,gte=-180,lte=180"`
	Timestamp  *Timestamp `json:"timestamp" binding:"required,time"`
	UploadTime *Timestamp `json:"upload_time" binding:"omitempty,time"`
	Accuracy   *float64   `json:"accuracy" binding:"omitempty,gte=0"`
	Address    string     `json:"address" binding:"max=500"`
	UserID     string     `json:"user_id"`
}

func (r *LegacyGPSRequest) Kind() RecordKind { return KindLegacyGPS }

func (r *LegacyGPSRequest) point() LegacyGPSPoint {
	return LegacyGPSPoint{
		ID:         r.ID,
		Latitude:   *r.Latitude,
		Longitude:  *r.Longitude,
		Timestamp:  r.Timestamp.UTC(),
		UploadTime: r.UploadTime.timePtr(),
		Accuracy:   r.Accuracy,
		Address:    r.Address,
		UserID:     r.UserID,
	}
}

func (r *LegacyGPSRequest) ToRecord(fallbackID string, now time.Time) Record {
	p := r.point()
	p.ID = pick(p.ID, fallbackID)
	p.UploadTime = uploadTime(p.UploadTime, now)
	return &LegacyGPSRecord{LegacyGPSPoint: p}
}

// LegacySentimentRequest POST /sentiments
type LegacySentimentRequest struct {
	ID             string             `json:"id"`
	Text           string             `json:"text" binding:"required"`
	Mood           string             `json:"mood"`
	MoodScore      string             `json:"mood_score"`
	SentimentScore *float64           `json:"sentiment_score" binding:"required,gte=-1,lte=1"`
	Confidence     *float64           `json:"confidence" binding:"omitempty,gte=0,lte=1"`
	Timestamp      *Timestamp         `json:"timestamp" binding:"required,time"`
	UploadTime     *Timestamp         `json:"upload_time" binding:"omitempty,time"`
	UserID         string             `json:"user_id"`
	Emotions       map[string]float64 `json:"emotions"`
}

func (r *LegacySentimentRequest) Kind() RecordKind { return KindLegacySentiment }

func (r *LegacySentimentRequest) sentiment() LegacySentiment {
	return LegacySentiment{
		ID:             r.ID,
		Text:           r.Text,
		Mood:           r.Mood,
		MoodScore:      r.MoodScore,
		SentimentScore: *r.SentimentScore,
		Confidence:     r.Confidence,
		Timestamp:      r.Timestamp.UTC(),
		UploadTime:     r.UploadTime.timePtr(),
		UserID:         r.UserID,
		Emotions:       r.Emotions,
	}
}

func (r *LegacySentimentRequest) ToRecord(fallbackID string, now time.Time) Record {
	s := r.sentiment()
	s.ID = pick(s.ID, fallbackID)
	s.UploadTime = uploadTime(s.UploadTime, now)
	return &LegacySentimentRecord{LegacySentiment: s}
}

// LegacyVlogRequest POST /vlogs
type LegacyVlogRequest struct {
	ID                string                  `json:"id"`
	Title             string                  `json:"title" binding:"required"`
	Description       string                  `json:"description"`
	VideoURL          string                  `json:"video_url"`
	VideoPath         string                  `json:"video_path"`
	VideoData         string                  `json:"video_data"`
	ThumbnailURL      string                  `json:"thumbnail_url"`
	Duration          *float64                `json:"duration" binding:"omitempty,gte=0"`
	Timestamp         *Timestamp              `json:"timestamp" binding:"required,time"`
	UploadTime        *Timestamp              `json:"upload_time" binding:"omitempty,time"`
	UserID            string                  `json:"user_id"`
	Mood              string                  `json:"mood"`
	Tags              []string                `json:"tags"`
	Location          *LegacyGPSRequest       `json:"location"`
	SentimentAnalysis *LegacySentimentRequest `json:"sentiment_analysis"`
}

func (r *LegacyVlogRequest) Kind() RecordKind { return KindLegacyVlog }

func (r *LegacyVlogRequest) ToRecord(fallbackID string, now time.Time) Record {
	rec := &LegacyVlogRecord{
		ID:           pick(r.ID, fallbackID),
		Title:        r.Title,
		Description:  r.Description,
		VideoURL:     r.VideoURL,
		VideoPath:    r.VideoPath,
		VideoData:    r.VideoData,
		ThumbnailURL: r.ThumbnailURL,
		Duration:     r.Duration,
		Timestamp:    r.Timestamp.UTC(),
		UploadTime:   uploadTime(r.UploadTime.timePtr(), now),
		UserID:       r.UserID,
		Mood:         r.Mood,
		Tags:         r.Tags,
	}
	if r.Location != nil {
		p := r.Location.point()
		rec.Location = &p
	}
	if r.SentimentAnalysis != nil {
		s := r.SentimentAnalysis.sentiment()
		rec.SentimentAnalysis = &s
	}
	return rec
}

// 旧格式没有上传时间时用服务端时间补全
func uploadTime(t *time.Time, now time.Time) *time.Time {
	if t != nil {
		u := t.UTC()
		return &u
	}
	u := now.UTC()
	return &u
}
