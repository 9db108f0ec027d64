package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTime_RoundTripMillisecondPrecision(t *testing.T) {
	orig := At(time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC))

	data, err := json.Marshal(orig)
	require.NoError(t, err)
	require.Equal(t, `"2026-03-14T09:26:53.589Z"`, string(data))

	var got Time
	require.NoError(t, json.Unmarshal(data, &got))
	require.True(t, orig.Equal(got))
}

func TestTime_SubMillisecondIsTruncated(t *testing.T) {
	precise := time.Date(2026, 3, 14, 9, 26, 53, 589_654_321, time.UTC)
	wrapped := At(precise)

	data, err := json.Marshal(wrapped)
	require.NoError(t, err)

	var got Time
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, int64(589), int64(got.Nanosecond())/int64(time.Millisecond))
}

func TestTime_AcceptsRFC3339Variants(t *testing.T) {
	var got Time
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-14T09:26:53Z"`), &got))
	require.Equal(t, 2026, got.Year())

	require.NoError(t, json.Unmarshal([]byte(`"2026-03-14T10:26:53.5+01:00"`), &got))
	require.Equal(t, 9, got.UTC().Hour())
}

func TestTime_RevivesLegacyEpochMillis(t *testing.T) {
	var got Time
	require.NoError(t, json.Unmarshal([]byte(`1773480413589`), &got))

	data, err := json.Marshal(got)
	require.NoError(t, err)
	require.Equal(t, `"2026-03-14T09:26:53.589Z"`, string(data))
}

func TestTime_RejectsGarbage(t *testing.T) {
	var got Time
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &got))
	require.Error(t, json.Unmarshal([]byte(`true`), &got))
}

func TestTime_NullLeavesZeroValue(t *testing.T) {
	var got Time
	require.NoError(t, json.Unmarshal([]byte(`null`), &got))
	require.True(t, got.IsZero())
}
