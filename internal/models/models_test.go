package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{`{"delta":10}`, 10, false},
		{`{"delta":"10"}`, 10, false},
		{`{"delta":" -3 "}`, -3, false},
		{`{"delta":"ten"}`, 0, true},
		{`{"delta":1.5}`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var req RewardRequest
			err := json.Unmarshal([]byte(tt.in), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, FlexInt(tt.want), req.Delta)
		})
	}
}

func TestNewTimeTable(t *testing.T) {
	tt := NewTimeTable()
	require.Len(t, tt, 6)
	for _, day := range []string{"0", "1", "2", "3", "4", "5"} {
		assert.Equal(t, []bool{false, false, false}, tt[day])
	}
}
