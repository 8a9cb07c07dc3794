package handler

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/narasux/perovskite/pkg/utils/markdownx"
	"github.com/narasux/perovskite/templates"
)

var (
	helpContent  template.HTML
	helpLoadOnce sync.Once
)

// Get404 ...
func Get404(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"title": "Not Found"})
}

// GetHelpPage 帮助 & 术语说明
func GetHelpPage(c *gin.Context) {
	helpLoadOnce.Do(func() {
		content, err := templates.FS.ReadFile("help/glossary.md")
		if err != nil {
			panic(err)
		}
		// 内容来自嵌入的文档，可以信任
		helpContent = template.HTML(markdownx.ToHTML(content))
	})
	c.HTML(http.StatusOK, "help.html", gin.H{"title": "Help", "content": helpContent})
}
