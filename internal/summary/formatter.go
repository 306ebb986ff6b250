package summary

import (
	"fmt"
	"strconv"
	"strings"

	"wisefido-triage/internal/models"
)

// DefaultMaxFactors 报告中最多展示的风险因素数量
const DefaultMaxFactors = 5

const (
	noPrediction     = "Assessment Needed"
	notAvailable     = "N/A"
	noSymptoms       = "Not recorded"
	noFactors        = "None identified"
	factorBullet     = "  • "
	factorsSeparator = "\n"
)

// 风险分类对应的标识
var severityGlyphs = map[models.RiskCategory]string{
	models.RiskCategoryHigh:   "🔴",
	models.RiskCategoryMedium: "🟡",
	models.RiskCategoryLow:    "🟢",
}

// Formatter 病人摘要格式化器（用于 WhatsApp/SMS 通知）
type Formatter struct {
	maxFactors int
}

// NewFormatter 创建格式化器，maxFactors <= 0 时使用 DefaultMaxFactors
func NewFormatter(maxFactors int) *Formatter {
	if maxFactors <= 0 {
		maxFactors = DefaultMaxFactors
	}
	return &Formatter{maxFactors: maxFactors}
}

// Format 生成可读的病人摘要
func (f *Formatter) Format(record models.PatientRecord, predictions models.Predictions, risk models.RiskAssessment) string {
	topDisease, topProbability := noPrediction, 0
	if top, ok := predictions.Top(); ok {
		topDisease, topProbability = top.Disease, top.Probability
	}

	glyph, ok := severityGlyphs[risk.Category]
	if !ok {
		glyph = severityGlyphs[models.RiskCategoryLow]
	}

	symptoms := strings.Join(record.Symptoms, ", ")
	if symptoms == "" {
		symptoms = noSymptoms
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏥 *PATIENT ALERT - %s RISK* %s\n\n", risk.Category, glyph)
	fmt.Fprintf(&b, "👤 *Patient:* %s\n", orNA(record.Name))
	fmt.Fprintf(&b, "📅 *Age/Gender:* %s / %s\n", intOrNA(record.Age), orNA(string(record.Gender)))
	fmt.Fprintf(&b, "📍 *City:* %s\n\n", orNA(record.City))
	fmt.Fprintf(&b, "🩺 *Symptoms:* %s\n", symptoms)
	fmt.Fprintf(&b, "💓 *Vitals:* BP %s | Pulse %s bpm\n\n", orNA(record.BP), intOrNA(record.Pulse))
	fmt.Fprintf(&b, "⚠️ *Predicted Condition:*\n   %s (%d%% probability)\n\n", topDisease, topProbability)
	fmt.Fprintf(&b, "📊 *Risk Score:* %d/100 (%s)\n\n", risk.Score, risk.Category)
	fmt.Fprintf(&b, "🚨 *Risk Factors:*\n%s\n\n", f.formatFactors(risk.Factors))
	b.WriteString("📞 *Action Required:* Immediate medical attention recommended\n\n")
	b.WriteString("_Generated by Health Monitor System_\n")
	fmt.Fprintf(&b, "_Time: %s_", orNA(record.Timestamp))

	return b.String()
}

// formatFactors 最多展示前 maxFactors 个风险因素
func (f *Formatter) formatFactors(factors []string) string {
	if len(factors) == 0 {
		return factorBullet + noFactors
	}
	if len(factors) > f.maxFactors {
		factors = factors[:f.maxFactors]
	}
	lines := make([]string, 0, len(factors))
	for _, factor := range factors {
		lines = append(lines, factorBullet+factor)
	}
	return strings.Join(lines, factorsSeparator)
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}
	return value
}

// intOrNA 0 或负数视为缺失
func intOrNA(value int) string {
	if value <= 0 {
		return notAvailable
	}
	return strconv.Itoa(value)
}
