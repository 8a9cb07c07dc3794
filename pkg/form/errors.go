package form

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	// ErrContainerNotFound 容器不存在
	ErrContainerNotFound = errors.New("container not found")
	// ErrRowNotFound 行不存在（或已被移除）
	ErrRowNotFound = errors.New("row not found")
	// ErrElementNotAllowed 元素不能用于该容器对应的位点
	ErrElementNotAllowed = errors.New("element not allowed on site")

	// ErrFractionNotNumber 占比不是数字
	ErrFractionNotNumber = errors.New("fraction is not a number")
	// ErrFractionNotFinite 占比为 NaN 或无穷大
	ErrFractionNotFinite = errors.New("fraction is not finite")
	// ErrFractionNegative 占比为负数
	ErrFractionNegative = errors.New("fraction is negative")

	// ErrInvalidComposition 组成中存在无法解析的行
	ErrInvalidComposition = errors.New("invalid composition")
)

// FractionError 某一行的占比解析失败
type FractionError struct {
	RowID string
	Text  string
	Err   error
}

func (e *FractionError) Error() string {
	return fmt.Sprintf("row %s: fraction %q: %s", e.RowID, e.Text, e.Err)
}

func (e *FractionError) Unwrap() error {
	return e.Err
}

// CompositionError 汇总一个容器内所有解析失败的行
type CompositionError struct {
	ContainerID string
	Fractions   []*FractionError
}

func (e *CompositionError) Error() string {
	msgs := lo.Map(e.Fractions, func(fe *FractionError, _ int) string { return fe.Error() })
	return fmt.Sprintf("%s: %s: %s", ErrInvalidComposition, e.ContainerID, strings.Join(msgs, "; "))
}

func (e *CompositionError) Unwrap() error {
	return ErrInvalidComposition
}
