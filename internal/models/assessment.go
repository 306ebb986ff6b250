package models

// RiskCategory 风险分类
type RiskCategory string

const (
	RiskCategoryLow    RiskCategory = "LOW"
	RiskCategoryMedium RiskCategory = "MEDIUM"
	RiskCategoryHigh   RiskCategory = "HIGH"
)

// 风险分类阈值（固定）
const (
	HighRiskThreshold   = 70
	MediumRiskThreshold = 40

	MaxRiskScore = 100
)

// CategoryForScore 根据风险评分计算分类
func CategoryForScore(score int) RiskCategory {
	switch {
	case score >= HighRiskThreshold:
		return RiskCategoryHigh
	case score >= MediumRiskThreshold:
		return RiskCategoryMedium
	default:
		return RiskCategoryLow
	}
}

// RiskAssessment 风险评估结果
type RiskAssessment struct {
	Score    int          `json:"score"` // 0-100
	Category RiskCategory `json:"category"`
	Factors  []string     `json:"factors"` // 按触发顺序排列
}
