package evaluator

import "wisefido-triage/internal/models"

// MatchContext 规则评估时的输入
type MatchContext struct {
	Symptoms models.SymptomSet
	Matches  int // 症状与触发集合的交集数量
	Age      int
}

// Bonus 特征性组合加分
type Bonus struct {
	Points  int
	Applies func(m MatchContext) bool
}

// DiseaseRule 单个疾病的预测规则
//
//	probability = BaseWeight + Matches*PerMatch + Σ(Bonus) + CityBonus[city risk]
//	probability = min(probability, Cap)
type DiseaseRule struct {
	Disease    string
	Triggers   []string
	MinMatches int
	Required   []string // 必须同时存在的症状
	BaseWeight int
	PerMatch   int
	Bonuses    []Bonus
	Cap        int

	// EpidemicKey 城市流行数据中对应的疾病名，为空表示不参考城市数据
	EpidemicKey string
	CityBonus   map[models.RiskLevel]int
}

func hasAll(symptoms ...string) func(m MatchContext) bool {
	return func(m MatchContext) bool {
		for _, symptom := range symptoms {
			if !m.Symptoms.Contains(symptom) {
				return false
			}
		}
		return true
	}
}

// DefaultRules 返回七种疾病的默认规则表（权重、阈值、上限为固定的临床启发式策略）
func DefaultRules() []DiseaseRule {
	return []DiseaseRule{
		{
			Disease:    "Dengue",
			Triggers:   []string{"Fever", "Rash", "Headache", "Body Pain", "Joint Pain", "Fatigue"},
			MinMatches: 2,
			BaseWeight: 35,
			PerMatch:   12,
			Bonuses: []Bonus{
				{Points: 15, Applies: hasAll("Fever", "Rash")},
			},
			Cap:         95,
			EpidemicKey: "Dengue",
			CityBonus: map[models.RiskLevel]int{
				models.RiskLevelHigh:   20,
				models.RiskLevelMedium: 10,
			},
		},
		{
			Disease:    "Tuberculosis (TB)",
			Triggers:   []string{"Cough", "Night Sweats", "Weight Loss", "Fever", "Fatigue", "Loss of Appetite", "Chest Pain"},
			MinMatches: 2,
			BaseWeight: 25,
			PerMatch:   10,
			Bonuses: []Bonus{
				// 慢性咳嗽
				{Points: 15, Applies: hasAll("Cough")},
				{Points: 10, Applies: func(m MatchContext) bool { return m.Symptoms.Contains("Cough") && m.Matches >= 3 }},
				{Points: 8, Applies: func(m MatchContext) bool { return m.Age > 50 }},
			},
			Cap: 90,
		},
		{
			Disease:    "Malaria",
			Triggers:   []string{"Fever", "Cold", "Headache", "Nausea", "Vomiting", "Fatigue", "Body Pain"},
			MinMatches: 2,
			Required:   []string{"Fever"},
			BaseWeight: 30,
			PerMatch:   10,
			Bonuses: []Bonus{
				// 周期性发热
				{Points: 15, Applies: hasAll("Cold", "Fever")},
			},
			Cap:         88,
			EpidemicKey: "Malaria",
			CityBonus: map[models.RiskLevel]int{
				models.RiskLevelHigh: 15,
			},
		},
		{
			Disease:    "Typhoid",
			Triggers:   []string{"Fever", "Abdominal Pain", "Headache", "Loss of Appetite", "Diarrhea", "Fatigue"},
			MinMatches: 2,
			BaseWeight: 28,
			PerMatch:   11,
			Bonuses: []Bonus{
				{Points: 15, Applies: hasAll("Fever", "Abdominal Pain")},
			},
			Cap:         85,
			EpidemicKey: "Typhoid",
			CityBonus: map[models.RiskLevel]int{
				models.RiskLevelHigh: 18,
			},
		},
		{
			Disease:    "Viral Flu",
			Triggers:   []string{"Fever", "Cough", "Cold", "Headache", "Body Pain", "Fatigue", "Nausea"},
			MinMatches: 2,
			BaseWeight: 40,
			PerMatch:   8,
			Bonuses: []Bonus{
				{Points: 10, Applies: hasAll("Fever", "Cough")},
			},
			Cap: 92,
		},
		{
			Disease:    "Respiratory Infection",
			Triggers:   []string{"Cough", "Breathlessness", "Chest Pain", "Fever", "Cold", "Fatigue"},
			MinMatches: 2,
			BaseWeight: 30,
			PerMatch:   12,
			Bonuses: []Bonus{
				{Points: 15, Applies: hasAll("Breathlessness")},
				{Points: 12, Applies: hasAll("Chest Pain")},
				// 年龄易感性：老人优先于幼儿
				{Points: 15, Applies: func(m MatchContext) bool { return m.Age > 60 }},
				{Points: 10, Applies: func(m MatchContext) bool { return m.Age <= 60 && m.Age < 5 }},
			},
			Cap: 90,
		},
		{
			Disease:    "Gastroenteritis",
			Triggers:   []string{"Nausea", "Vomiting", "Diarrhea", "Abdominal Pain", "Fever", "Loss of Appetite"},
			MinMatches: 2,
			BaseWeight: 35,
			PerMatch:   10,
			Bonuses: []Bonus{
				{Points: 15, Applies: hasAll("Vomiting", "Diarrhea")},
			},
			Cap: 88,
		},
	}
}
