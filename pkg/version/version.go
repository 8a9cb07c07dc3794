package version

import "fmt"

// 以下变量值可通过 --ldflags 的方式修改
var (
	Version   = "1.0.0"
	GitCommit = "--"
	BuildTime = "--"
	GoVersion = "--"
)

// GetVersion 获取版本信息
func GetVersion() string {
	return fmt.Sprintf(
		"Version: %s, GitCommit: %s, BuildTime: %s, GoVersion: %s",
		Version, GitCommit, BuildTime, GoVersion,
	)
}
