package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行（波兰语、英语等以空格分词的文本）
//   - 如果单词太长超过最大宽度，强制按字符断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if MeasureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	lastSpace := -1 // currentLine 中最后一个空格的字节位置

	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		char := string(r)
		textStr = textStr[size:]

		testLine := currentLine + char
		if MeasureTextWidth(testLine, font) <= maxWidth || currentLine == "" {
			if unicode.IsSpace(r) {
				lastSpace = len(currentLine)
			}
			currentLine = testLine
			continue
		}

		// 超宽：在最后一个空格处断开，否则强制断在当前字符前
		if unicode.IsSpace(r) {
			lines = append(lines, strings.TrimSpace(currentLine))
			currentLine = ""
			lastSpace = -1
			continue
		}
		if lastSpace > 0 {
			lines = append(lines, strings.TrimSpace(currentLine[:lastSpace]))
			currentLine = strings.TrimLeftFunc(currentLine[lastSpace:], unicode.IsSpace) + char
		} else {
			lines = append(lines, strings.TrimSpace(currentLine))
			currentLine = char
		}
		lastSpace = strings.LastIndexFunc(currentLine, unicode.IsSpace)
	}

	// 添加最后一行
	if strings.TrimSpace(currentLine) != "" {
		lines = append(lines, strings.TrimSpace(currentLine))
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// MeasureTextWidth 测量单行文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}

// MeasureText 测量单行文本的宽高
func MeasureText(textStr string, font *text.GoTextFace) (float64, float64) {
	if font == nil {
		return 0, 0
	}
	if textStr == "" {
		return 0, font.Size
	}
	return text.Measure(textStr, font, 0)
}

// ExtractEmoji 把文本中的表情符号取出
// 内置字体没有彩色表情字形，调用方用矢量图标代替绘制
//
// 返回:
//   - clean: 去掉表情（以及变体选择符、零宽连接符）后的文本，首尾空白已去除
//   - icons: 按出现顺序排列的表情
func ExtractEmoji(textStr string) (clean string, icons []rune) {
	var b strings.Builder
	for _, r := range textStr {
		switch {
		case r == 0xFE0F || r == 0x200D:
			continue
		case isEmoji(r):
			icons = append(icons, r)
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " "), icons
}

func isEmoji(r rune) bool {
	return (r >= 0x1F000 && r <= 0x1FAFF) ||
		(r >= 0x2600 && r <= 0x27BF) ||
		r == 0x2B50
}
