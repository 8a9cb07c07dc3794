package funcs

import (
	"html/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

// NewFuncMap 页面模板方法：sprig + 自定义方法
func NewFuncMap() template.FuncMap {
	funcMap := sprig.FuncMap()
	// 获取当前年份
	funcMap["curYear"] = func() int {
		return time.Now().Year()
	}
	return funcMap
}
