package evaluator

import (
	"sort"

	"wisefido-triage/internal/models"
	"wisefido-triage/internal/reference"
)

// DiseasePredictor 基于规则表的疾病预测器
// 无状态、无副作用，可并发调用
type DiseasePredictor struct {
	rules        []DiseaseRule
	epidemiology reference.EpidemiologyLookup
}

// NewDiseasePredictor 创建疾病预测器，rules 为空时使用 DefaultRules
func NewDiseasePredictor(epidemiology reference.EpidemiologyLookup, rules ...DiseaseRule) *DiseasePredictor {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &DiseasePredictor{
		rules:        rules,
		epidemiology: epidemiology,
	}
}

// Predict 根据症状、城市和年龄预测疾病概率
// 未达到阈值的疾病不出现在结果中；结果按概率降序，相同概率保持规则顺序
func (p *DiseasePredictor) Predict(symptoms models.SymptomSet, city string, age int) models.Predictions {
	profile := p.profile(city)
	predictions := make(models.Predictions, 0, len(p.rules))

	for _, rule := range p.rules {
		probability, ok := rule.evaluate(symptoms, profile, age)
		if !ok {
			continue
		}
		predictions = append(predictions, models.DiseasePrediction{
			Disease:     rule.Disease,
			Probability: probability,
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Probability > predictions[j].Probability
	})
	return predictions
}

func (p *DiseasePredictor) profile(city string) models.EpidemiologyProfile {
	if p.epidemiology == nil {
		return models.EpidemiologyProfile{}
	}
	return p.epidemiology.Profile(city)
}

// evaluate 计算单条规则的概率，未触发时返回 false
func (r DiseaseRule) evaluate(symptoms models.SymptomSet, profile models.EpidemiologyProfile, age int) (int, bool) {
	matches := symptoms.CountIn(r.Triggers)
	if matches < r.MinMatches {
		return 0, false
	}
	for _, required := range r.Required {
		if !symptoms.Contains(required) {
			return 0, false
		}
	}

	ctx := MatchContext{Symptoms: symptoms, Matches: matches, Age: age}
	probability := r.BaseWeight + matches*r.PerMatch
	for _, bonus := range r.Bonuses {
		if bonus.Applies(ctx) {
			probability += bonus.Points
		}
	}
	if r.EpidemicKey != "" {
		probability += r.CityBonus[profile.RiskOf(r.EpidemicKey)]
	}

	return clamp(probability, 0, r.Cap), true
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
