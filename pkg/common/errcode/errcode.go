package errcode

const (
	// NoErr 无错误
	NoErr = 0

	// InvalidComposition 组成数据不合法（如占比无法解析）
	InvalidComposition = 40001

	// PredictionFailed 预测服务调用失败
	PredictionFailed = 50201
)
