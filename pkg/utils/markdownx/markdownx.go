package markdownx

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML 将帮助文档（markdown）渲染为带 tailwind 样式的 html
func ToHTML(content []byte) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(content)

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})

	return wrapTailwindClass(string(markdown.Render(doc, renderer)))
}

// 完全匹配的标签（无属性）
var fullMatchTagClassMap = map[string]string{
	"p":      "my-2 text-slate-300",
	"ul":     "pl-4 list-disc",
	"li":     "ml-4 my-1",
	"code":   "px-1 rounded bg-slate-700 text-amber-300",
	"strong": "text-slate-100",
	"table":  "my-4 text-sm",
	"th":     "px-3 py-1 text-left border-b border-slate-600",
	"td":     "px-3 py-1",
}

// 前缀匹配的标签（可能带 id 等属性）
var prefixMatchTagClassMap = map[string]string{
	"h1": "mt-6 mb-4 font-semibold text-2xl",
	"h2": "mt-6 mb-3 font-semibold text-xl",
	"h3": "mt-4 mb-2 font-semibold text-lg",
	"a ": "text-blue-400",
}

// wrapTailwindClass 为 markdown 转换成的 html 中的标签添加 tailwind css 类
func wrapTailwindClass(htmlContent string) string {
	for tagName, class := range fullMatchTagClassMap {
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+">", "<"+tagName+" class=\""+class+"\">")
	}
	for prefix, class := range prefixMatchTagClassMap {
		htmlContent = strings.ReplaceAll(htmlContent, "<"+prefix, "<"+strings.TrimSpace(prefix)+" class=\""+class+"\" ")
	}
	return htmlContent
}
