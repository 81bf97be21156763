package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 11, 20, 8, 30, 0, 0, time.UTC)

func intPtr(i int) *int { return &i }

func TestEmotionRequestDefaults(t *testing.T) {
	req := &CreateEmotionRequest{Mood: intPtr(3), Emotion: "平靜"}
	rec, ok := req.ToRecord("generated", fixedNow).(*EmotionRecord)
	require.True(t, ok)

	assert.Equal(t, "generated", rec.ID)
	assert.Equal(t, 3, rec.Mood)
	assert.Equal(t, fixedNow, rec.Timestamp)
	assert.False(t, rec.HasVlog)
	assert.Nil(t, rec.Location)
}

func TestEmotionRequestKeepsClientValues(t *testing.T) {
	ts := time.Date(2025, 11, 19, 22, 0, 0, 0, time.FixedZone("CST", 8*3600))
	req := &CreateEmotionRequest{
		ID:        "client-id",
		Mood:      intPtr(5),
		Emotion:   "開心",
		Timestamp: NewTimestamp(ts),
		HasVlog:   true,
		Location:  &LocationInput{Latitude: float64Ptr(25.0338), Longitude: float64Ptr(121.5646)},
		UserID:    "u1",
	}
	rec := req.ToRecord("generated", fixedNow).(*EmotionRecord)

	assert.Equal(t, "client-id", rec.ID)
	assert.True(t, rec.Timestamp.Equal(ts))
	assert.Equal(t, time.UTC, rec.Timestamp.Location())
	require.NotNil(t, rec.Location)
	assert.Equal(t, 25.0338, rec.Location.Latitude)
	assert.Nil(t, rec.Location.Accuracy)
	assert.Equal(t, "u1", rec.UserID)
}

func TestVlogRequestDefaults(t *testing.T) {
	req := &CreateVlogRequest{Mood: intPtr(4), MoodLabel: "好", VideoURI: "file:///video.mp4"}
	rec := req.ToRecord("id", fixedNow).(*VlogRecord)

	assert.Equal(t, fixedNow.UnixMilli(), rec.Timestamp)
	assert.Equal(t, "2025-11-20 08:30:00", rec.Date)
	assert.True(t, rec.HasVideo)

	noVideo := false
	req = &CreateVlogRequest{Mood: intPtr(4), MoodLabel: "好", VideoURI: "file:///video.mp4", HasVideo: &noVideo, Date: "11/20"}
	rec = req.ToRecord("id", fixedNow).(*VlogRecord)
	assert.False(t, rec.HasVideo)
	assert.Equal(t, "11/20", rec.Date)

	req = &CreateVlogRequest{Mood: intPtr(1), MoodLabel: "差"}
	rec = req.ToRecord("id", fixedNow).(*VlogRecord)
	assert.False(t, rec.HasVideo)
}

func TestLocationRequestDefaults(t *testing.T) {
	req := &CreateLocationRequest{Latitude: float64Ptr(25.0338), Longitude: float64Ptr(121.5646), Accuracy: float64Ptr(5)}
	rec := req.ToRecord("id", fixedNow).(*LocationRecord)

	assert.True(t, rec.HasGPS)
	assert.Equal(t, fixedNow, rec.Timestamp)
	require.NotNil(t, rec.Accuracy)
	assert.Equal(t, 5.0, *rec.Accuracy)
}

func TestLegacyRequestsFillUploadTime(t *testing.T) {
	ts := fixedNow.Add(-time.Hour)
	gps := &LegacyGPSRequest{Latitude: float64Ptr(1), Longitude: float64Ptr(2), Timestamp: NewTimestamp(ts)}
	gpsRec := gps.ToRecord("g", fixedNow).(*LegacyGPSRecord)
	require.NotNil(t, gpsRec.UploadTime)
	assert.Equal(t, fixedNow, *gpsRec.UploadTime)
	assert.Equal(t, "g", gpsRec.ID)

	score := 0.7
	vlog := &LegacyVlogRequest{
		Title:      "t",
		Timestamp:  NewTimestamp(ts),
		UploadTime: NewTimestamp(fixedNow),
		Location:   gps,
		SentimentAnalysis: &LegacySentimentRequest{
			Text: "nice", SentimentScore: &score, Timestamp: NewTimestamp(ts),
		},
	}
	vlogRec := vlog.ToRecord("v", fixedNow).(*LegacyVlogRecord)
	require.NotNil(t, vlogRec.Location)
	assert.Equal(t, 1.0, vlogRec.Location.Latitude)
	// 嵌套记录不补 id 和上传时间
	assert.Empty(t, vlogRec.Location.ID)
	assert.Nil(t, vlogRec.Location.UploadTime)
	require.NotNil(t, vlogRec.SentimentAnalysis)
	assert.Equal(t, 0.7, vlogRec.SentimentAnalysis.SentimentScore)
}
