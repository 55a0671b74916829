package activities_test

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"testing"
	"time"

	"github.com/UTD-JLA/collection/pkg/activities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleActivities() []*activities.Activity {
	deleted := date("2023-08-05T00:00:00Z")

	return []*activities.Activity{
		{ID: 1, Name: "Frieren", PrimaryType: activities.ActivityImmersionTypeListening, Duration: 24 * time.Minute, Date: date("2023-08-01T10:00:00Z")},
		{ID: 2, Name: "Yotsuba&!", PrimaryType: activities.ActivityImmersionTypeReading, Duration: 30 * time.Minute, Date: date("2023-08-01T23:30:00Z")},
		{ID: 3, Name: "Podcast", PrimaryType: activities.ActivityImmersionTypeListening, Duration: 60 * time.Minute, Date: date("2023-07-31T12:00:00Z")},
		{ID: 4, Name: "Deleted", PrimaryType: activities.ActivityImmersionTypeReading, Duration: 90 * time.Minute, Date: date("2023-08-02T12:00:00Z"), DeletedAt: &deleted},
		{ID: 5, Name: "Novel", PrimaryType: activities.ActivityImmersionTypeReading, Duration: 15 * time.Minute, Date: date("2023-09-02T12:00:00Z")},
	}
}

func encodeJSONL(t *testing.T, as []*activities.Activity) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)

	for _, a := range as {
		require.NoError(t, encoder.Encode(a))
	}

	return &buf
}

func TestReadJSONL(t *testing.T) {
	as, err := activities.ReadJSONL(encodeJSONL(t, sampleActivities()))

	require.NoError(t, err)
	require.Len(t, as, 5)
	assert.Equal(t, "Frieren", as[0].Name)
	assert.Equal(t, 24*time.Minute, as[0].Duration)
	assert.NotNil(t, as[3].DeletedAt)
}

func TestReadCompressedJSONL(t *testing.T) {
	var compressed bytes.Buffer
	w := gzip.NewWriter(&compressed)
	_, err := w.Write(encodeJSONL(t, sampleActivities()).Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	as, err := activities.ReadCompressedJSONL(&compressed)

	require.NoError(t, err)
	assert.Len(t, as, 5)

	_, err = activities.ReadCompressedJSONL(bytes.NewBufferString("not gzip"))
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	index := activities.Index(sampleActivities())

	assert.Equal(t, []uint64{1, 2, 3, 5}, index.Keys())
	assert.False(t, index.Has(4))
}

func TestSplitByImmersionType(t *testing.T) {
	reading, listening := activities.SplitByImmersionType(activities.Index(sampleActivities()))

	assert.Equal(t, []uint64{2, 5}, reading.Keys())
	assert.Equal(t, []uint64{1, 3}, listening.Keys())
}
