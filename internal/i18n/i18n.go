package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocaleFR      = "fr"
	LocaleEN      = "en"
	LocaleES      = "es"
	DefaultLocale = LocaleFR
)

// LocaleHeader 前端显式指定语言的请求头
const LocaleHeader = "X-Locale"

var supportedTags = []language.Tag{
	language.French, // 第一个为匹配失败时的回退
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supportedTags)

// NormalizeLocale 将任意语言标签归一到受支持的 locale，无法识别时返回空串
func NormalizeLocale(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	switch base.String() {
	case LocaleFR, LocaleEN, LocaleES:
		return base.String()
	}
	return ""
}

// MatchAcceptLanguage 解析 Accept-Language 头
func MatchAcceptLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	base, _ := supportedTags[idx].Base()
	return base.String()
}

// ResolveLocale 依次读取 lang 参数、X-Locale 头与 Accept-Language 头
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	if locale := NormalizeLocale(c.Query("lang")); locale != "" {
		return locale
	}
	if locale := NormalizeLocale(c.GetHeader(LocaleHeader)); locale != "" {
		return locale
	}
	return MatchAcceptLanguage(c.GetHeader("Accept-Language"))
}

// T 翻译消息，缺失时回退默认语言，仍缺失则返回 key
func T(locale, key string) string {
	if msg, ok := lookup(locale, key); ok {
		return msg
	}
	if msg, ok := lookup(DefaultLocale, key); ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func lookup(locale, key string) (string, bool) {
	table, ok := catalog[locale]
	if !ok {
		return "", false
	}
	msg, ok := table[key]
	return msg, ok
}
