package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithError(t *testing.T) {
	req := require.New(t)
	core, logs := observer.New(zapcore.DebugLevel)
	l := Logger{logger: zap.New(core).Sugar()}

	l.WithField("method", "mint").WithError(errors.New("reverted")).Error("submit failed")

	req.Equal(1, logs.Len())
	entry := logs.All()[0]
	req.Equal("submit failed", entry.Message)
	fields := entry.ContextMap()
	req.Equal("mint", fields["method"])
	req.Equal("reverted", fields["err"])
}
