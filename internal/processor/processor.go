// Package processor 提供采集文本的清洗工具：CDATA 剥离、空白归一、
// 按 rune 截断与 UTF-8 规范化。管线各环节共用这一组纯函数
package processor

import (
	"regexp"
	"strings"
)

var (
	reHorizontalSpace = regexp.MustCompile(`[ \t]+`)
	reBlankLines      = regexp.MustCompile(`\n\s*\n`)
)

// StripCDATA 去掉 RSS 文本节点中的 <![CDATA[ ... ]]> 包裹标记。
// 规范的 XML 解析器本应消化掉它们，但畸形订阅源里标记可能残留在文本中
func StripCDATA(s string) string {
	s = strings.ReplaceAll(s, "<![CDATA[", "")
	s = strings.ReplaceAll(s, "]]>", "")
	return strings.TrimSpace(s)
}

// CollapseWhitespace 归一正文空白：连续空格/制表符合并为一个空格，
// 多个空行压成一个，首尾空白去除
func CollapseWhitespace(s string) string {
	s = reHorizontalSpace.ReplaceAllString(s, " ")
	s = reBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// TruncateRunes 按 rune 数截断并追加截断标记，避免把多字节字符切成半个。
// limit 大于等于文本长度时原样返回
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit]) + "..."
}

// ValidUTF8 将字符串规范为合法 UTF-8，混编来源（GBK/CP1251 等）的
// 非法字节序列替换为 U+FFFD，防止下游入库失败
func ValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}
