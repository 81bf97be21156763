package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func float64Ptr(f float64) *float64 { return &f }

func sampleRecords() []Record {
	ts := time.Date(2025, 11, 20, 8, 30, 0, 0, time.UTC)
	return []Record{
		&EmotionRecord{ID: "e1", Mood: 4, Emotion: "開心", Timestamp: ts},
		&EmotionRecord{ID: "e2", Mood: 2, Emotion: "低落", Timestamp: ts, HasVlog: true,
			Location: &Location{Latitude: 25.0338, Longitude: 121.5646, Accuracy: float64Ptr(5)}},
		&VlogRecord{ID: "v1", Mood: 5, MoodLabel: "很好", MoodEmoji: "😄", Timestamp: ts.UnixMilli(), Date: "2025-11-20 08:30:00"},
		&LocationRecord{ID: "l1", Latitude: 25.0338, Longitude: 121.5646, HasGPS: true, Timestamp: ts},
		&LegacyVlogRecord{ID: "lv1", Title: "day one", Timestamp: ts, Tags: []string{"a", "b"},
			Location:          &LegacyGPSPoint{Latitude: 1, Longitude: 2, Timestamp: ts},
			SentimentAnalysis: &LegacySentiment{Text: "good", SentimentScore: 0.5, Timestamp: ts}},
		&LegacyVlogRecord{ID: "lv2", Title: "day two", Timestamp: ts},
		&LegacySentimentRecord{LegacySentiment: LegacySentiment{ID: "s1", Text: "meh", SentimentScore: -0.2,
			Timestamp: ts, Emotions: map[string]float64{"sadness": 0.2, "joy": 0.8}}},
		&LegacyGPSRecord{LegacyGPSPoint: LegacyGPSPoint{ID: "g1", Latitude: 1, Longitude: 2, Timestamp: ts, Address: "Taipei"}},
	}
}

func TestCSVRowMatchesHeader(t *testing.T) {
	for _, rec := range sampleRecords() {
		header := CSVHeader(rec.Kind())
		require.NotEmpty(t, header)
		assert.Len(t, rec.CSVRow(), len(header), "kind %s", rec.Kind())
	}
}

func TestCSVHeaderHasNoDuplicates(t *testing.T) {
	for _, kind := range AllKinds() {
		seen := map[string]bool{}
		for _, col := range CSVHeader(kind) {
			assert.False(t, seen[col], "duplicate column %s in %s", col, kind)
			seen[col] = true
		}
		assert.Equal(t, []string{"_id", "created_at"}, CSVHeader(kind)[:2])
	}
	assert.Nil(t, CSVHeader(RecordKind("bogus")))
}

func TestNestedLocationFlattening(t *testing.T) {
	header := CSVHeader(KindEmotion)
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %s missing", name)
		return -1
	}

	recs := sampleRecords()
	without := recs[0].CSVRow()
	with := recs[1].CSVRow()

	assert.Equal(t, "", without[col("location.latitude")])
	assert.Equal(t, "", without[col("location.accuracy")])
	assert.Equal(t, "25.0338", with[col("location.latitude")])
	assert.Equal(t, "121.5646", with[col("location.longitude")])
	assert.Equal(t, "5", with[col("location.accuracy")])
	assert.Equal(t, "true", with[col("hasVlog")])
	assert.Equal(t, "2025-11-20T08:30:00Z", with[col("timestamp")])
}

func TestLegacyCSVFormatting(t *testing.T) {
	recs := sampleRecords()

	vlogRow := recs[4].CSVRow()
	header := CSVHeader(KindLegacyVlog)
	byName := map[string]string{}
	for i, h := range header {
		byName[h] = vlogRow[i]
	}
	assert.Equal(t, "a;b", byName["tags"])
	assert.Equal(t, "good", byName["sentiment_analysis.text"])
	assert.Equal(t, "0.5", byName["sentiment_analysis.sentiment_score"])
	assert.Equal(t, "1", byName["location.latitude"])

	sentRow := recs[6].CSVRow()
	assert.Equal(t, `{"joy":0.8,"sadness":0.2}`, sentRow[len(sentRow)-1])
}

func TestStampAndStoredID(t *testing.T) {
	rec := &EmotionRecord{ID: "e1", Mood: 3, Emotion: "ok"}
	assert.Equal(t, "", rec.StoredID())
	assert.Equal(t, "", rec.CSVRow()[0])

	oid := primitive.NewObjectID()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.FixedZone("CST", 8*3600))
	rec.Stamp(oid, now)

	assert.Equal(t, oid.Hex(), rec.StoredID())
	assert.Equal(t, time.UTC, rec.CreatedAt.Location())
	assert.Equal(t, "2025-01-01T04:00:00Z", rec.CSVRow()[1])
}

func TestNewRecordAndRequestCoverAllKinds(t *testing.T) {
	for _, kind := range AllKinds() {
		rec := NewRecord(kind)
		require.NotNil(t, rec, "record for %s", kind)
		assert.Equal(t, kind, rec.Kind())

		req := NewRequest(kind)
		require.NotNil(t, req, "request for %s", kind)
		assert.Equal(t, kind, req.Kind())
	}
	assert.Nil(t, NewRecord("bogus"))
	assert.Nil(t, NewRequest("bogus"))
}
