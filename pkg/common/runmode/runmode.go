package runmode

// 与 gin 的运行模式保持一致
const (
	Debug   = "debug"
	Test    = "test"
	Release = "release"
)
