package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-02-29", want: Date{2024, time.February, 29}},
		{in: " 2024-03-01 ", want: Date{2024, time.March, 1}},
		{in: "2024-03-01T23:30:00+08:00", want: Date{2024, time.March, 1}},
		{in: "2023-02-29", wantErr: true},
		{in: "03/01/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateAddDaysCrossesMonthAndYear(t *testing.T) {
	assert.Equal(t, MustParseDate("2025-01-03"), MustParseDate("2024-12-27").AddDays(7))
	assert.Equal(t, MustParseDate("2024-02-29"), MustParseDate("2024-03-01").AddDays(-1))
	assert.True(t, MustParseDate("2024-01-31").Before(MustParseDate("2024-02-01")))
	assert.True(t, MustParseDate("2024-02-01").After(MustParseDate("2024-01-31")))
	assert.False(t, MustParseDate("2024-02-01").Before(MustParseDate("2024-02-01")))
}

func TestDateOfUsesLocation(t *testing.T) {
	shanghai := time.FixedZone("UTC+8", 8*3600)
	instant := time.Date(2024, time.May, 31, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, MustParseDate("2024-05-31"), DateOf(instant))
	assert.Equal(t, MustParseDate("2024-06-01"), DateOf(instant.In(shanghai)))
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-01-15","end":null}`), &payload))
	assert.Equal(t, MustParseDate("2024-01-15"), payload.Start)
	assert.True(t, payload.End.IsZero())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-01-15","end":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":20240115}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"start":"15.01.2024"}`), &payload))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, MustParseDate("2024-07-04"), d)

	require.NoError(t, d.Scan("2024-07-05"))
	assert.Equal(t, MustParseDate("2024-07-05"), d)

	require.NoError(t, d.Scan([]byte("2024-07-06 00:00:00+00:00")))
	assert.Equal(t, MustParseDate("2024-07-06"), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("not a date"))
}

func TestDateValue(t *testing.T) {
	v, err := MustParseDate("2024-07-04").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-07-04", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestReminderStatusValid(t *testing.T) {
	for _, s := range []ReminderStatus{ReminderPending, ReminderSent, ReminderFailed, ReminderCanceled, ReminderPaid} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, ReminderStatus("archived").Valid())
	assert.False(t, ReminderStatus("").Valid())
}
