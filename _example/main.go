package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/hupe1980/hanfuzz"
)

type app struct {
	Name string
	Path string
}

func main() {
	apps := []app{
		{Name: "微信", Path: "/Applications/WeChat.app"},
		{Name: "网易云音乐", Path: "/Applications/NeteaseMusic.app"},
		{Name: "Windows相机", Path: "C:/Apps/Camera"},
		{Name: "Visual Studio Code", Path: "/Applications/VSCode.app"},
		{Name: "钉钉", Path: "/Applications/DingTalk.app"},
	}

	idx, err := hanfuzz.New(apps, func(a app) string { return a.Name })
	if err != nil {
		log.Fatal(err)
	}

	for _, query := range []string{"weixin", "wx", "wxj", "winxj", "vsc", "dd"} {
		fmt.Printf("%-8s", query)
		for _, r := range idx.Search(query) {
			fmt.Printf("  %s (%.3f)", highlight(r), r.Weight)
		}
		fmt.Println()
	}
}

// highlight wraps matched regions in brackets: [Win]dows[相机].
func highlight[T comparable](r hanfuzz.SearchResult[T]) string {
	runes := []rune(r.Text)
	var sb strings.Builder
	pos := 0
	for _, span := range r.Spans() {
		sb.WriteString(string(runes[pos:span.Start]))
		sb.WriteString("[")
		sb.WriteString(string(runes[span.Start:span.End]))
		sb.WriteString("]")
		pos = span.End
	}
	sb.WriteString(string(runes[pos:]))
	return sb.String()
}
