package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/scale/log"
)

func TestLogrusLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(logger)}

	l.Debug("debug", nil)
	l.Info("info", nil)
	l.Warn("payload too large", log.Fields{"size": 10, "limit": 4})
	l.Error("error", nil)

	require.Len(t, hook.AllEntries(), 4)
	warn := hook.AllEntries()[2]
	require.Equal(t, logrus.WarnLevel, warn.Level)
	require.Equal(t, "payload too large", warn.Message)
	require.Equal(t, 10, warn.Data["size"])
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
