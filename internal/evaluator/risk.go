package evaluator

import (
	"fmt"

	"wisefido-triage/internal/models"
	"wisefido-triage/internal/reference"
)

// criticalSymptom 危重症状及其权重
type criticalSymptom struct {
	Symptom string
	Weight  int
}

// 危重症状按固定顺序评估，权重 >= criticalFactorWeight 时记录风险因素
var criticalSymptoms = []criticalSymptom{
	{Symptom: "Breathlessness", Weight: 25},
	{Symptom: "Chest Pain", Weight: 25},
	{Symptom: "Jaundice", Weight: 20},
	{Symptom: "Vomiting", Weight: 10},
	{Symptom: "Diarrhea", Weight: 10},
}

const criticalFactorWeight = 20

// RiskScorer 综合风险评分器
// 各因素组按固定顺序累加，风险因素按触发顺序记录
type RiskScorer struct {
	epidemiology reference.EpidemiologyLookup
}

// NewRiskScorer 创建风险评分器
func NewRiskScorer(epidemiology reference.EpidemiologyLookup) *RiskScorer {
	return &RiskScorer{epidemiology: epidemiology}
}

// Score 计算风险评分（0-100）、分类和风险因素
// 血压或脉搏 <= 0 视为未测量，跳过对应因素组
func (s *RiskScorer) Score(
	symptoms models.SymptomSet,
	age int,
	bpSystolic, bpDiastolic int,
	pulse int,
	city string,
	predictions models.Predictions,
) models.RiskAssessment {
	sheet := &scoreSheet{factors: []string{}}

	scoreAge(sheet, age)
	scoreSymptomCount(sheet, len(symptoms))
	scoreCriticalSymptoms(sheet, symptoms)
	scoreBloodPressure(sheet, bpSystolic, bpDiastolic)
	scorePulse(sheet, pulse)
	scoreCityOutbreak(sheet, s.highRiskDiseases(city))
	scoreTopPrediction(sheet, predictions)

	score := clamp(sheet.score, 0, models.MaxRiskScore)
	return models.RiskAssessment{
		Score:    score,
		Category: models.CategoryForScore(score),
		Factors:  sheet.factors,
	}
}

func (s *RiskScorer) highRiskDiseases(city string) int {
	if s.epidemiology == nil {
		return 0
	}
	return s.epidemiology.Profile(city).CountAtRisk(models.RiskLevelHigh)
}

// scoreSheet 累加评分与风险因素
type scoreSheet struct {
	score   int
	factors []string
}

func (s *scoreSheet) add(points int, factor string) {
	s.score += points
	if factor != "" {
		s.factors = append(s.factors, factor)
	}
}

// 年龄：互斥，老年优先于幼儿
func scoreAge(sheet *scoreSheet, age int) {
	switch {
	case age >= 75:
		sheet.add(35, "Very Elderly (75+)")
	case age >= 65:
		sheet.add(25, "Elderly (65+)")
	case age >= 55:
		sheet.add(15, "Senior (55+)")
	case age <= 2:
		sheet.add(30, "Infant (0-2 years)")
	case age <= 5:
		sheet.add(20, "Young Child (2-5 years)")
	}
}

// 症状数量：只取最高档，2-3 个症状不记录因素
func scoreSymptomCount(sheet *scoreSheet, count int) {
	switch {
	case count >= 6:
		sheet.add(30, fmt.Sprintf("Many symptoms (%d)", count))
	case count >= 4:
		sheet.add(20, fmt.Sprintf("Multiple symptoms (%d)", count))
	case count >= 2:
		sheet.add(10, "")
	}
}

// 危重症状：逐个独立累加
func scoreCriticalSymptoms(sheet *scoreSheet, symptoms models.SymptomSet) {
	for _, critical := range criticalSymptoms {
		if !symptoms.Contains(critical.Symptom) {
			continue
		}
		factor := ""
		if critical.Weight >= criticalFactorWeight {
			factor = "Critical: " + critical.Symptom
		}
		sheet.add(critical.Weight, factor)
	}
}

// 血压：两个值都 > 0 时才评估，高血压危象优先
func scoreBloodPressure(sheet *scoreSheet, systolic, diastolic int) {
	if systolic <= 0 || diastolic <= 0 {
		return
	}
	switch {
	case systolic >= 180 || diastolic >= 120:
		sheet.add(35, "⚠️ Hypertensive Crisis")
	case systolic >= 140 || diastolic >= 90:
		sheet.add(18, "High Blood Pressure")
	case systolic < 90 || diastolic < 60:
		sheet.add(22, "Low Blood Pressure")
	}
}

// 脉搏：> 0 时评估
func scorePulse(sheet *scoreSheet, pulse int) {
	if pulse <= 0 {
		return
	}
	switch {
	case pulse > 120:
		sheet.add(18, "Tachycardia (Rapid Heart)")
	case pulse > 100:
		sheet.add(10, "Elevated Heart Rate")
	case pulse < 50:
		sheet.add(18, "Bradycardia (Slow Heart)")
	}
}

// 城市疫情：按 HIGH 风险疾病数量取最高档，只有 1 个时不记录因素
func scoreCityOutbreak(sheet *scoreSheet, highRisk int) {
	switch {
	case highRisk >= 4:
		sheet.add(20, fmt.Sprintf("City outbreak zone (%d diseases)", highRisk))
	case highRisk >= 2:
		sheet.add(12, "City has active outbreaks")
	case highRisk >= 1:
		sheet.add(6, "")
	}
}

// 最高概率疾病的严重程度
func scoreTopPrediction(sheet *scoreSheet, predictions models.Predictions) {
	top, ok := predictions.Top()
	if !ok {
		return
	}
	switch {
	case top.Probability >= 85:
		sheet.add(25, "High probability: "+top.Disease)
	case top.Probability >= 70:
		sheet.add(15, "Likely: "+top.Disease)
	case top.Probability >= 55:
		sheet.add(8, "")
	}
}
