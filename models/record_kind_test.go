package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDataType(t *testing.T) {
	tests := []struct {
		selector string
		want     []RecordKind
		ok       bool
	}{
		{"emotions", []RecordKind{KindEmotion}, true},
		{"vlogs-data", []RecordKind{KindVlogData}, true},
		{"vlog_data", []RecordKind{KindVlogData}, true},
		{" Locations ", []RecordKind{KindLocation}, true},
		{"gps", []RecordKind{KindLegacyGPS}, true},
		{"gps_coordinates", []RecordKind{KindLegacyGPS}, true},
		{"frontend", FrontendKinds, true},
		{"legacy", LegacyKinds, true},
		{"all", AllKinds(), true},
		{"bogus", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got, ok := ResolveDataType(tt.selector)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDataTypeReturnsCopy(t *testing.T) {
	got, ok := ResolveDataType("frontend")
	assert.True(t, ok)
	got[0] = KindLegacyGPS
	assert.Equal(t, KindEmotion, FrontendKinds[0])
}

func TestKindMetadata(t *testing.T) {
	collections := map[string]bool{}
	for _, kind := range AllKinds() {
		assert.True(t, kind.Valid())
		assert.NotEmpty(t, kind.Collection())
		assert.NotEmpty(t, kind.ListKey())
		assert.False(t, collections[kind.Collection()], "collection %s reused", kind.Collection())
		collections[kind.Collection()] = true
	}

	assert.Equal(t, "/vlogs-data", KindVlogData.Route())
	assert.Equal(t, "emotion_data", KindEmotion.Collection())
	assert.Equal(t, "gps_coordinates", KindLegacyGPS.Collection())
	assert.Equal(t, SchemaFrontend, KindLocation.Schema())
	assert.Equal(t, SchemaLegacy, KindLegacySentiment.Schema())
	assert.False(t, RecordKind("bogus").Valid())
}
