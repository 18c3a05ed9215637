package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T) (*logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	return &logger{entry: logrus.NewEntry(base)}, buf
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "abc")
	assert.Equal(t, "abc", id)
	assert.Equal(t, "abc", GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_Development(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	l, buf := newBufferLogger(t)

	l.WithFields(Fields{"client": "Acme", "remote_addr": "1.2.3.4"}).Info("ok")

	assert.Contains(t, buf.String(), `"client":"Acme"`)
	assert.NotContains(t, buf.String(), "remote_addr")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	l, buf := newBufferLogger(t)

	ctx, _ := WithCorrelationID(context.Background(), "req-1")
	l.WithContext(ctx).WithFields(Fields{"remote_addr": "1.2.3.4"}).Info("ok")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"remote_addr":"1.2.3.4"`)
	assert.Contains(t, out, `"correlation_id":"req-1"`)
}
