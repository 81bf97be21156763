// Package templates 内嵌的 HTML 页面
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Load 解析全部模板，模板名为文件名
func Load() *template.Template {
	return template.Must(template.ParseFS(files, "*.tmpl"))
}
