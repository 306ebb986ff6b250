package service

import (
	"fmt"
	"time"

	"wisefido-triage/internal/config"
	"wisefido-triage/internal/evaluator"
	"wisefido-triage/internal/extractor"
	"wisefido-triage/internal/models"
	"wisefido-triage/internal/reference"
	"wisefido-triage/internal/summary"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TimestampLayout 病人记录时间戳格式
const TimestampLayout = "2006-01-02 15:04"

// Overrides 手工录入的字段，非零值覆盖语音提取结果
type Overrides struct {
	Name     string
	Age      int
	Gender   models.Gender
	Symptoms []string // 原始症状名称，经词表规范化后追加在提取结果之后
	BP       string
	Pulse    int
	City     string
}

// Assessment 一次完整的分诊结果
type Assessment struct {
	ID          string                `json:"id"`
	CreatedAt   time.Time             `json:"created_at"`
	Record      models.PatientRecord  `json:"record"`
	Predictions models.Predictions    `json:"predictions"`
	Risk        models.RiskAssessment `json:"risk"`
	Report      string                `json:"report"`
	Alert       string                `json:"alert,omitempty"`        // 城市预警信息
	WeeklyCases []models.WeekCases    `json:"weekly_cases,omitempty"` // 城市近几周病例数
	Hospitals   []models.Hospital     `json:"hospitals,omitempty"`    // 仅高风险时提供
}

// TriageService 分诊服务（整合提取、评估、摘要各层）
type TriageService struct {
	config    *config.Config
	store     *reference.Store
	extractor *extractor.Extractor
	evaluator *evaluator.Evaluator
	formatter *summary.Formatter
	logger    *zap.Logger
	now       func() time.Time
}

// NewTriageService 创建分诊服务，按配置加载参考数据
func NewTriageService(cfg *config.Config, logger *zap.Logger) (*TriageService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	store, err := reference.Load(cfg.Triage.ReferenceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}
	logger.Info("Reference data loaded",
		zap.String("reference_file", cfg.Triage.ReferenceFile),
		zap.Strings("cities", store.Cities()),
	)
	return NewTriageServiceWithStore(cfg, store, logger), nil
}

// NewTriageServiceWithStore 使用已加载的参考数据创建分诊服务
func NewTriageServiceWithStore(cfg *config.Config, store *reference.Store, logger *zap.Logger) *TriageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TriageService{
		config:    cfg,
		store:     store,
		extractor: extractor.NewExtractor(store, store.Cities()),
		evaluator: evaluator.NewEvaluator(store, logger),
		formatter: summary.NewFormatter(cfg.Triage.MaxFactors),
		logger:    logger,
		now:       time.Now,
	}
}

// AssessTranscript 从语音转写文本提取病人记录并评估
// lang 为空时使用配置的默认语言
func (s *TriageService) AssessTranscript(text, lang string, override Overrides) *Assessment {
	if lang == "" {
		lang = s.config.Triage.DefaultLanguage
	}
	record := s.extractor.Extract(text, lang)

	if record.BulkMode {
		s.logger.Info("Bulk transcript detected",
			zap.Int("range_start", record.PatientRange.Start),
			zap.Int("range_end", record.PatientRange.End),
		)
	}

	return s.Assess(s.applyOverrides(record, override))
}

// Assess 评估病人记录：疾病预测、风险评分、生成摘要
func (s *TriageService) Assess(record models.PatientRecord) *Assessment {
	now := s.now()
	if record.City == "" {
		record.City = s.config.Triage.DefaultCity
	}
	if record.Timestamp == "" {
		record.Timestamp = now.Format(TimestampLayout)
	}
	if record.Symptoms == nil {
		record.Symptoms = models.NewSymptomSet()
	}

	predictions, risk := s.evaluator.Evaluate(record)

	assessment := &Assessment{
		ID:          uuid.New().String(),
		CreatedAt:   now,
		Record:      record,
		Predictions: predictions,
		Risk:        risk,
		Report:      s.formatter.Format(record, predictions, risk),
		Alert:       s.store.Alert(record.City),
		WeeklyCases: s.store.WeeklyCases(record.City),
	}

	if risk.Category == models.RiskCategoryHigh {
		assessment.Hospitals = s.store.Hospitals(record.City)
		s.logger.Info("High risk patient assessed",
			zap.String("assessment_id", assessment.ID),
			zap.String("city", record.City),
			zap.Int("risk_score", risk.Score),
			zap.Strings("factors", risk.Factors),
		)
	}

	return assessment
}

// applyOverrides 用手工录入的非零字段覆盖提取结果
func (s *TriageService) applyOverrides(record models.PatientRecord, override Overrides) models.PatientRecord {
	if override.Name != "" {
		record.Name = override.Name
	}
	if override.Age > 0 {
		record.Age = override.Age
	}
	if override.Gender != models.GenderUnknown {
		record.Gender = override.Gender
	}
	if override.BP != "" {
		record.BP = override.BP
	}
	if override.Pulse > 0 {
		record.Pulse = override.Pulse
	}
	if override.City != "" {
		record.City = override.City
		if canonical, ok := s.store.CanonicalCity(override.City); ok {
			record.City = canonical
		}
	}
	if len(override.Symptoms) > 0 {
		manual := s.store.Vocabulary().Normalize(override.Symptoms)
		record.Symptoms = record.Symptoms.Merge(manual)
	}
	return record
}
