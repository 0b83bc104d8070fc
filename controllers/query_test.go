package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortKey(t *testing.T) {
	assert.Equal(t, "lease_end_date", sortKey("leaseEndDate"))
	assert.Equal(t, "lease_end_date", sortKey("lease_end_date"))
	assert.Equal(t, "created_at", sortKey(" createdAt "))
	assert.Equal(t, "", sortKey(""))
}

func TestUpdateConfigInputText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: `"14"`, want: "14", ok: true},
		{raw: `14`, want: "14", ok: true},
		{raw: `7.5`, want: "7.5", ok: true},
		{raw: `null`, ok: false},
		{raw: `true`, ok: false},
		{raw: `["7"]`, ok: false},
	}
	for _, tt := range tests {
		got, ok := UpdateConfigInput{Value: json.RawMessage(tt.raw)}.text()
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}
