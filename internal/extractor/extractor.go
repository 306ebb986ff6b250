// Package extractor 从多语言（英语/印地语/古吉拉特语）语音转写文本中提取病人记录
//
// 所有字段独立、尽力提取：匹配失败时字段保持默认值，提取本身永不失败。
// 提取基于正则和关键词子串匹配，不做语义理解。
package extractor

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"wisefido-triage/internal/models"
	"wisefido-triage/internal/reference"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 以下规则链按顺序尝试，第一个匹配成功即停止；顺序决定输出，不可调换
// 数字捕获使用 \p{Nd}，天城文与古吉拉特文数字同样可以识别
var (
	bulkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`patients?\s+(\p{Nd}+)\s*(?:to|-)\s*(\p{Nd}+)`),
		regexp.MustCompile(`(\p{Nd}+)\s*(?:to|-)\s*(\p{Nd}+)\s*patients?`),
	}

	// 姓名在保留大小写的原文上匹配
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:patient|name|naam|નામ|मरीज)\s+([a-zA-Z\x{0900}-\x{097F}\x{0A80}-\x{0AFF}]+)`),
		regexp.MustCompile(`(?i)^([A-Z][a-z]+)\s+(?:age|has|is)`),
	}

	agePatterns = []*regexp.Regexp{
		regexp.MustCompile(`age\s+(\p{Nd}+)`),
		regexp.MustCompile(`(\p{Nd}+)\s*(?:years?|yrs?|साल|વર્ષ)\s*old`),
		regexp.MustCompile(`उम्र\s+(\p{Nd}+)`),
		regexp.MustCompile(`ઉંમર\s+(\p{Nd}+)`),
	}

	bpPatterns = []*regexp.Regexp{
		regexp.MustCompile(`bp\s+(\p{Nd}+)[/\s]+(\p{Nd}+)`),
		regexp.MustCompile(`blood\s+pressure\s+(\p{Nd}+)[/\s]+(\p{Nd}+)`),
		regexp.MustCompile(`(\p{Nd}{2,3})/(\p{Nd}{2,3})`),
	}

	pulsePatterns = []*regexp.Regexp{
		regexp.MustCompile(`pulse\s+(?:rate\s+)?(\p{Nd}+)`),
		regexp.MustCompile(`heart\s+rate\s+(\p{Nd}+)`),
		regexp.MustCompile(`(\p{Nd}+)\s*bpm`),
	}
)

// 性别关键词：先检查男性，两者都出现时男性优先
var (
	maleKeywords   = []string{"male", "man", "पुरुष", "પુરુષ"}
	femaleKeywords = []string{"female", "woman", "महिला", "સ્ત્રી"}
)

// 血压正常的口语表达，覆盖正则结果
var normalBPPhrases = []string{"bp normal", "normal bp"}

const normalBP = "120/80"

// Extractor 语音文本提取器
// 构造后不可变，可并发调用
type Extractor struct {
	lexicons []models.Lexicon
	cities   []string
}

// NewExtractor 创建提取器
// lexicons 提供各语言症状词典；cities 为可识别的城市名（按顺序匹配，可为空）
func NewExtractor(lexicons reference.LexiconStore, cities []string) *Extractor {
	x := &Extractor{cities: append([]string(nil), cities...)}
	if lexicons != nil {
		x.lexicons = lexicons.Lexicons()
	}
	return x
}

// Extract 从转写文本中提取病人记录
// 症状扫描覆盖所有语言词典（不限于 lang 指定的语言），以支持混合语言的转写文本
func (x *Extractor) Extract(text string, lang string) models.PatientRecord {
	lower := strings.ToLower(text)
	record := models.PatientRecord{
		Gender:   models.GenderUnknown,
		Symptoms: models.NewSymptomSet(),
		Language: ResolveLanguage(lang),
	}

	if start, end, ok := extractBulkRange(lower); ok {
		record.BulkMode = true
		record.PatientRange = &models.PatientRange{Start: start, End: end}
	}
	record.Name = extractName(text)
	record.Age = firstInt(agePatterns, lower)
	record.Gender = extractGender(lower)
	record.BP = extractBP(lower)
	record.Pulse = firstInt(pulsePatterns, lower)
	record.City = x.extractCity(lower)
	record.Symptoms = x.extractSymptoms(text, lower)

	return record
}

// ResolveLanguage 根据语言提示解析语言，无法识别时为英语
func ResolveLanguage(hint string) models.Language {
	lowered := strings.ToLower(hint)
	switch {
	case strings.Contains(hint, "हिंदी") || strings.Contains(lowered, "hindi"):
		return models.LanguageHindi
	case strings.Contains(hint, "ગુજરાતી") || strings.Contains(lowered, "gujarati"):
		return models.LanguageGujarati
	default:
		return models.LanguageEnglish
	}
}

func extractBulkRange(lower string) (int, int, bool) {
	for _, pattern := range bulkPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		start, ok := parseNumber(match[1])
		if !ok {
			return 0, 0, false
		}
		end, ok := parseNumber(match[2])
		if !ok {
			return 0, 0, false
		}
		return start, end, true
	}
	return 0, 0, false
}

func extractName(text string) string {
	for _, pattern := range namePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		// cases.Caser 有状态，不能跨 goroutine 共享
		return cases.Title(language.Und).String(strings.TrimSpace(match[1]))
	}
	return ""
}

func extractGender(lower string) models.Gender {
	switch {
	case containsAny(lower, maleKeywords):
		return models.GenderMale
	case containsAny(lower, femaleKeywords):
		return models.GenderFemale
	default:
		return models.GenderUnknown
	}
}

// extractBP 血压统一输出为 ASCII 数字的 "S/D"
func extractBP(lower string) string {
	bp := ""
	for _, pattern := range bpPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		systolic, ok := parseNumber(match[1])
		if !ok {
			break
		}
		diastolic, ok := parseNumber(match[2])
		if !ok {
			break
		}
		bp = strconv.Itoa(systolic) + "/" + strconv.Itoa(diastolic)
		break
	}
	if containsAny(lower, normalBPPhrases) {
		bp = normalBP
	}
	return bp
}

func (x *Extractor) extractCity(lower string) string {
	for _, city := range x.cities {
		if city != "" && strings.Contains(lower, strings.ToLower(city)) {
			return city
		}
	}
	return ""
}

func (x *Extractor) extractSymptoms(text, lower string) models.SymptomSet {
	symptoms := models.NewSymptomSet()
	for _, lexicon := range x.lexicons {
		for _, entry := range lexicon.Entries {
			if strings.Contains(lower, entry.Keyword) || strings.Contains(text, entry.Keyword) {
				symptoms = symptoms.Add(entry.Symptom)
			}
		}
	}
	return symptoms
}

// firstInt 返回第一个匹配规则的整数捕获组，无匹配或溢出时返回 0
func firstInt(patterns []*regexp.Regexp, text string) int {
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value, ok := parseNumber(match[1])
		if !ok {
			return 0
		}
		return value
	}
	return 0
}

// parseNumber 解析任意 Unicode 十进制数字串（如 "45"、"४५"、"૬૦"），溢出时返回 false
func parseNumber(digits string) (int, bool) {
	if digits == "" {
		return 0, false
	}
	value := 0
	for _, r := range digits {
		d, ok := digitValue(r)
		if !ok {
			return 0, false
		}
		value = value*10 + d
		if value > math.MaxInt32 {
			return 0, false
		}
	}
	return value, true
}

// digitValue 返回十进制数字字符的值
// Unicode 的 Nd 字符按 0-9 连续编码，从所在区段的起点计算偏移
func digitValue(r rune) (int, bool) {
	if !unicode.IsDigit(r) {
		return 0, false
	}
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return int(r-zero) % 10, true
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
