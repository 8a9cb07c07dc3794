package form

import (
	"math"
	"strconv"
	"strings"
)

// ParseFraction 解析占比输入框中的文本，不接受 NaN / Inf / 负数
func ParseFraction(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		// 超出 float64 范围时 ParseFloat 返回 ±Inf 与 ErrRange
		if math.IsInf(value, 0) {
			return 0, ErrFractionNotFinite
		}
		return 0, ErrFractionNotNumber
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrFractionNotFinite
	}
	if value < 0 {
		return 0, ErrFractionNegative
	}
	return value, nil
}
