package envx

import (
	"os"
	"strconv"
)

// Get 读取环境变量，不存在或为空时返回默认值
func Get(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// GetInt 读取整型环境变量，无法解析时返回默认值
func GetInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
