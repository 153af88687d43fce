package slog

import (
	"bytes"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/scale/log"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))}

	l.Debug("debug", nil)
	l.Warn("checksum mismatch", log.Fields{"compression": "S2"})

	out := buf.String()
	require.Contains(t, out, "level=DEBUG msg=debug")
	require.Contains(t, out, `level=WARN msg="checksum mismatch" compression=S2`)
}
