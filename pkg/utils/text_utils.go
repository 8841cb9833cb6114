package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// WrapText 将文本按终端列宽自动换行
// 参数:
//   - textStr: 要换行的文本
//   - maxCols: 最大列数（全角字符占两列）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 逐字符累加列宽，超宽时断行
//   - 单个字符就超宽时强制占一行
//   - 行首行尾空白被去掉
func WrapText(textStr string, maxCols int) []string {
	if textStr == "" || maxCols <= 0 || runewidth.StringWidth(textStr) <= maxCols {
		return []string{textStr}
	}

	var lines []string
	var current strings.Builder
	width := 0

	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		textStr = textStr[size:]
		w := runewidth.RuneWidth(r)

		if width+w > maxCols {
			if width == 0 {
				lines = append(lines, string(r))
				continue
			}
			lines = append(lines, strings.TrimSpace(current.String()))
			current.Reset()
			width = 0
		}
		current.WriteRune(r)
		width += w
	}

	if current.Len() > 0 {
		lines = append(lines, strings.TrimSpace(current.String()))
	}
	return lines
}

// FormatGameTime 把毫秒格式化为 mm:ss，负数按 0 处理
func FormatGameTime(ms float64) string {
	if ms < 0 {
		ms = 0
	}
	total := int(ms / 1000)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
