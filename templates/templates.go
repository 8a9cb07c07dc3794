// Package templates 页面模板与帮助文档，编译时嵌入二进制
package templates

import "embed"

// FS ...
//
//go:embed webfe/*.html help/*.md
var FS embed.FS
