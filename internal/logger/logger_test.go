package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey string

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevLevel := logrus.StandardLogger().Out, logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})
	Setup("debug", "")
	logrus.SetOutput(&buf)
	return &buf
}

func TestSetup_Level(t *testing.T) {
	capture(t)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("nonsense", "")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithContext_Fields(t *testing.T) {
	buf := capture(t)
	dept := uuid.New()

	//nolint:staticcheck // string keys mirror what gin stores
	ctx := context.WithValue(context.Background(), "email", "hod@uni.edu")
	ctx = context.WithValue(ctx, "request_id", "req-1")  //nolint:staticcheck
	ctx = context.WithValue(ctx, "department_id", dept) //nolint:staticcheck

	WithContext(ctx).WithField("groups", 3).Info("allocated")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hod@uni.edu", line["user"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, dept.String(), line["department_id"])
	assert.Equal(t, float64(3), line["groups"])
	assert.Equal(t, "allocated", line["msg"])
}

func TestWithContext_Anonymous(t *testing.T) {
	buf := capture(t)

	WithContext(context.WithValue(context.Background(), ctxKey("other"), 1)).Warn("no user")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "anonymous", line["user"])
	assert.NotContains(t, line, "request_id")
}
