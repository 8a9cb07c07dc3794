package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/narasux/perovskite/pkg/envs"
)

// 获取日志 Writer，这里返回双写 Writer（stderr & file）
func getWriter(logType string) (io.Writer, error) {
	fileWriter, err := getFileWriter(envs.LogFileBaseDir, logType)
	if err != nil {
		return nil, err
	}
	// CLI 的 stdout 用于输出预测结果，日志统一走 stderr
	return io.MultiWriter(os.Stderr, fileWriter), nil
}

func getFileWriter(baseDir, logType string) (io.Writer, error) {
	// 不同的日志类型分目录存储
	path := filepath.Join(baseDir, logType)
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return nil, err
	}

	// 使用 lumberjack 实现日志切割归档
	return &lumberjack.Logger{
		Filename: filepath.Join(path, logType+".log"),
		// megabytes
		MaxSize:    64,
		MaxBackups: 5,
		// days
		MaxAge:    7,
		LocalTime: true,
	}, nil
}
