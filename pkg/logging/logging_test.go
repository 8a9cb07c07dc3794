package logging

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestGetFileWriter(t *testing.T) {
	baseDir := t.TempDir()

	writer, err := getFileWriter(baseDir, LogTypePrediction)
	require.NoError(t, err)

	lj, ok := writer.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(baseDir, "prediction", "prediction.log"), lj.Filename)
	assert.DirExists(t, filepath.Join(baseDir, "prediction"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("debug"))
	assert.Equal(t, logrus.InfoLevel, parseLevel("not-a-level"))
}

func TestGettersFallbackToSystemLogger(t *testing.T) {
	// 未初始化时统一回落到 logrus 标准 logger
	assert.Same(t, GetSystemLogger(), GetPredictionLogger())
	assert.Same(t, GetSystemLogger(), GetWebLogger())
	assert.Same(t, GetSystemLogger(), GetAccessLogger())
}
