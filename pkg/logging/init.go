package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/narasux/perovskite/pkg/envs"
)

var initOnce sync.Once

// 访问日志
var accessLogger *logrus.Logger

// web 页面日志（Handler...)
var webLogger *logrus.Logger

// 预测日志（请求构建 & 预测服务调用结果）
var predictionLogger *logrus.Logger

const (
	LogTypeSystem     = "system"
	LogTypeAccess     = "access"
	LogTypeWeb        = "web"
	LogTypePrediction = "prediction"
)

func InitLogger() {
	initOnce.Do(func() {
		initSystemLogger()

		accessLogger = newJsonLogger(LogTypeAccess)
		webLogger = newJsonLogger(LogTypeWeb)
		predictionLogger = newJsonLogger(LogTypePrediction)
	})
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetAccessLogger() *logrus.Logger {
	if accessLogger == nil {
		return GetSystemLogger()
	}
	return accessLogger
}

func GetWebLogger() *logrus.Logger {
	if webLogger == nil {
		return GetSystemLogger()
	}
	return webLogger
}

func GetPredictionLogger() *logrus.Logger {
	if predictionLogger == nil {
		return GetSystemLogger()
	}
	return predictionLogger
}

func initSystemLogger() {
	// 设置日志输出
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		panic(err)
	}
	logrus.SetOutput(writer)

	// 设置日志格式
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})
	logrus.SetLevel(parseLevel(envs.LogLevel))
}

func newJsonLogger(logType string) *logrus.Logger {
	logger := logrus.New()
	// 设置日志输出
	writer, err := getWriter(logType)
	if err != nil {
		panic(err)
	}
	logger.SetOutput(writer)

	// 设置日志格式
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})
	logger.SetLevel(parseLevel(envs.LogLevel))

	return logger
}

// 无法识别的日志等级按 info 处理
func parseLevel(raw string) logrus.Level {
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
