package webinar

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDetailsViewerWritesOneRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	viewer := NewLogDetailsViewer(logger)

	viewer.ViewDetails(context.Background(), 2)

	var records []map[string]any
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}

	require.Len(t, records, 1)
	assert.Equal(t, "Viewing details for webinar ID: 2", records[0]["msg"])
	assert.Equal(t, "INFO", records[0]["level"])
	assert.EqualValues(t, 2, records[0]["webinar_id"])
}

func TestNewLogDetailsViewerDefaultsLogger(t *testing.T) {
	v := NewLogDetailsViewer(nil)
	assert.Same(t, slog.Default(), v.Logger)
}
