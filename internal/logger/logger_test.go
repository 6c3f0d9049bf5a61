package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorLog_AttachesLeadingError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	ErrorLog(context.Background(), "save records for %s", errors.New("disk full"), "2-2024-01-01")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "save records for 2-2024-01-01", entry["message"])
}

func TestWithLogger_CarriesFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	ctx := WithLogger(context.Background(), map[string]interface{}{"staff_id": "2"})
	InfoLog(ctx, "checked in")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "2", entry["staff_id"])
	assert.Equal(t, "checked in", entry["message"])
}
