package evaluator

import (
	"wisefido-triage/internal/models"
	"wisefido-triage/internal/reference"

	"go.uber.org/zap"
)

// Evaluator 分诊评估器：疾病预测 + 风险评分
type Evaluator struct {
	predictor *DiseasePredictor
	scorer    *RiskScorer
	logger    *zap.Logger
}

// NewEvaluator 创建评估器（使用默认规则表）
func NewEvaluator(epidemiology reference.EpidemiologyLookup, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{
		predictor: NewDiseasePredictor(epidemiology),
		scorer:    NewRiskScorer(epidemiology),
		logger:    logger,
	}
}

// Evaluate 评估病人记录，返回疾病预测和风险评估
func (e *Evaluator) Evaluate(record models.PatientRecord) (models.Predictions, models.RiskAssessment) {
	predictions := e.predictor.Predict(record.Symptoms, record.City, record.Age)

	systolic, diastolic := record.Vitals()
	risk := e.scorer.Score(record.Symptoms, record.Age, systolic, diastolic, record.Pulse, record.City, predictions)

	e.logger.Debug("Patient evaluated",
		zap.String("city", record.City),
		zap.Int("age", record.Age),
		zap.Int("symptom_count", len(record.Symptoms)),
		zap.Strings("diseases", predictions.Diseases()),
		zap.Int("risk_score", risk.Score),
		zap.String("risk_category", string(risk.Category)),
	)

	return predictions, risk
}
