package summary

import (
	"fmt"
	"strings"
	"testing"

	"wisefido-triage/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormat_FullReport(t *testing.T) {
	formatter := NewFormatter(DefaultMaxFactors)
	record := models.PatientRecord{
		Name:      "Raj",
		Age:       34,
		Gender:    models.GenderMale,
		Symptoms:  models.NewSymptomSet("Fever", "Cough"),
		BP:        "140/90",
		Pulse:     88,
		City:      "Mumbai",
		Timestamp: "2025-01-01 10:00",
	}
	predictions := models.Predictions{
		{Disease: "Viral Flu", Probability: 74},
		{Disease: "Tuberculosis (TB)", Probability: 60},
	}
	risk := models.RiskAssessment{
		Score:    45,
		Category: models.RiskCategoryMedium,
		Factors:  []string{"High Blood Pressure", "City outbreak zone (4 diseases)"},
	}

	expected := `🏥 *PATIENT ALERT - MEDIUM RISK* 🟡

👤 *Patient:* Raj
📅 *Age/Gender:* 34 / M
📍 *City:* Mumbai

🩺 *Symptoms:* Fever, Cough
💓 *Vitals:* BP 140/90 | Pulse 88 bpm

⚠️ *Predicted Condition:*
   Viral Flu (74% probability)

📊 *Risk Score:* 45/100 (MEDIUM)

🚨 *Risk Factors:*
  • High Blood Pressure
  • City outbreak zone (4 diseases)

📞 *Action Required:* Immediate medical attention recommended

_Generated by Health Monitor System_
_Time: 2025-01-01 10:00_`

	assert.Equal(t, expected, formatter.Format(record, predictions, risk))
}

func TestFormat_MissingValues(t *testing.T) {
	formatter := NewFormatter(0)

	report := formatter.Format(models.PatientRecord{}, models.Predictions{}, models.RiskAssessment{
		Category: models.RiskCategoryLow,
		Factors:  []string{},
	})

	assert.True(t, strings.HasPrefix(report, "🏥 *PATIENT ALERT - LOW RISK* 🟢\n"))
	assert.Contains(t, report, "👤 *Patient:* N/A\n")
	assert.Contains(t, report, "📅 *Age/Gender:* N/A / N/A\n")
	assert.Contains(t, report, "📍 *City:* N/A\n")
	assert.Contains(t, report, "🩺 *Symptoms:* Not recorded\n")
	assert.Contains(t, report, "💓 *Vitals:* BP N/A | Pulse N/A bpm\n")
	assert.Contains(t, report, "   Assessment Needed (0% probability)\n")
	assert.Contains(t, report, "📊 *Risk Score:* 0/100 (LOW)\n")
	assert.Contains(t, report, "🚨 *Risk Factors:*\n  • None identified\n")
	assert.True(t, strings.HasSuffix(report, "_Time: N/A_"))
}

func TestFormat_HighRiskGlyph(t *testing.T) {
	formatter := NewFormatter(DefaultMaxFactors)

	report := formatter.Format(models.PatientRecord{Name: "Asha"}, nil, models.RiskAssessment{
		Score:    100,
		Category: models.RiskCategoryHigh,
	})

	assert.True(t, strings.HasPrefix(report, "🏥 *PATIENT ALERT - HIGH RISK* 🔴\n"))
	assert.Contains(t, report, "📊 *Risk Score:* 100/100 (HIGH)\n")
}

func TestFormat_TruncatesFactors(t *testing.T) {
	factors := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		factors = append(factors, fmt.Sprintf("Factor %d", i))
	}
	risk := models.RiskAssessment{Score: 100, Category: models.RiskCategoryHigh, Factors: factors}

	report := NewFormatter(0).Format(models.PatientRecord{}, nil, risk)
	assert.Contains(t, report, "  • Factor 1\n")
	assert.Contains(t, report, "  • Factor 5\n\n📞")
	assert.NotContains(t, report, "Factor 6")
	assert.NotContains(t, report, "Factor 7")

	report = NewFormatter(2).Format(models.PatientRecord{}, nil, risk)
	assert.Contains(t, report, "  • Factor 2\n\n📞")
	assert.NotContains(t, report, "Factor 3")
	// 原因素列表不被修改
	assert.Len(t, risk.Factors, 7)
}

func TestFormat_OnlyTopPrediction(t *testing.T) {
	predictions := models.Predictions{
		{Disease: "Dengue", Probability: 95},
		{Disease: "Typhoid", Probability: 68},
	}

	report := NewFormatter(DefaultMaxFactors).Format(models.PatientRecord{}, predictions, models.RiskAssessment{Category: models.RiskCategoryLow})

	assert.Contains(t, report, "   Dengue (95% probability)\n")
	assert.NotContains(t, report, "Typhoid")
}

func TestFormat_NonPositiveNumbersAreNA(t *testing.T) {
	report := NewFormatter(DefaultMaxFactors).Format(models.PatientRecord{Age: -1, Pulse: -5, Gender: models.GenderFemale}, nil, models.RiskAssessment{Category: models.RiskCategoryLow})

	assert.Contains(t, report, "📅 *Age/Gender:* N/A / F\n")
	assert.Contains(t, report, "Pulse N/A bpm")
}
