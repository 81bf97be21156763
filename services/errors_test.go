package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

func TestClassifyMongoError(t *testing.T) {
	cause := errors.New("no reachable servers")
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{"server selection", topology.ServerSelectionError{Wrapped: cause}, true},
		{"disconnected", mongo.ErrClientDisconnected, true},
		{"deadline", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, false},
		{"other", errors.New("duplicate key"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyMongoError("insert emotion_data", tt.err)
			assert.Equal(t, tt.unavailable, errors.Is(err, ErrStoreUnavailable))
			var selErr topology.ServerSelectionError
			if errors.As(tt.err, &selErr) {
				assert.True(t, errors.As(err, &selErr))
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
			assert.Contains(t, err.Error(), "insert emotion_data")
		})
	}

	assert.NoError(t, classifyMongoError("ping", nil))
}

func TestSelectorError(t *testing.T) {
	err := &SelectorError{Param: "data_type", Value: "bogus"}
	assert.Equal(t, `unsupported data_type "bogus"`, err.Error())

	err = &SelectorError{Param: "format", Value: "xml", Reason: "use json or csv"}
	assert.Equal(t, `unsupported format "xml": use json or csv`, err.Error())
}
