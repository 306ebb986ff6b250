package evaluator

import (
	"testing"

	"wisefido-triage/internal/models"
	"wisefido-triage/internal/reference"

	"github.com/stretchr/testify/assert"
)

// stubEpidemiology 固定城市数据
type stubEpidemiology map[string]models.EpidemiologyProfile

func (s stubEpidemiology) Profile(city string) models.EpidemiologyProfile {
	if profile, ok := s[city]; ok {
		return profile
	}
	return models.EpidemiologyProfile{}
}

func (s stubEpidemiology) Cities() []string {
	cities := make([]string, 0, len(s))
	for city := range s {
		cities = append(cities, city)
	}
	return cities
}

func TestScore_NoFactors(t *testing.T) {
	scorer := NewRiskScorer(reference.MustDefault())

	risk := scorer.Score(models.NewSymptomSet(), 30, 0, 0, 0, "Rajkot", models.Predictions{})

	assert.Equal(t, 0, risk.Score)
	assert.Equal(t, models.RiskCategoryLow, risk.Category)
	assert.NotNil(t, risk.Factors)
	assert.Empty(t, risk.Factors)
}

func TestScore_AgeBrackets(t *testing.T) {
	scorer := NewRiskScorer(nil)

	tests := []struct {
		age    int
		score  int
		factor string
	}{
		{90, 35, "Very Elderly (75+)"},
		{75, 35, "Very Elderly (75+)"},
		{74, 25, "Elderly (65+)"},
		{65, 25, "Elderly (65+)"},
		{55, 15, "Senior (55+)"},
		{54, 0, ""},
		{30, 0, ""},
		{6, 0, ""},
		{5, 20, "Young Child (2-5 years)"},
		{3, 20, "Young Child (2-5 years)"},
		{2, 30, "Infant (0-2 years)"},
		{0, 30, "Infant (0-2 years)"},
	}
	for _, tt := range tests {
		risk := scorer.Score(nil, tt.age, 0, 0, 0, "", nil)
		assert.Equal(t, tt.score, risk.Score, "age %d", tt.age)
		if tt.factor == "" {
			assert.Empty(t, risk.Factors, "age %d", tt.age)
		} else {
			assert.Equal(t, []string{tt.factor}, risk.Factors, "age %d", tt.age)
		}
	}
}

func TestScore_SymptomCount(t *testing.T) {
	scorer := NewRiskScorer(nil)

	risk := scorer.Score(models.NewSymptomSet("Fever", "Cough", "Cold", "Headache", "Rash", "Fatigue"), 30, 0, 0, 0, "", nil)
	assert.Equal(t, 30, risk.Score)
	assert.Equal(t, []string{"Many symptoms (6)"}, risk.Factors)

	risk = scorer.Score(models.NewSymptomSet("Fever", "Cough", "Cold", "Headache"), 30, 0, 0, 0, "", nil)
	assert.Equal(t, 20, risk.Score)
	assert.Equal(t, []string{"Multiple symptoms (4)"}, risk.Factors)

	risk = scorer.Score(models.NewSymptomSet("Fever", "Cough"), 30, 0, 0, 0, "", nil)
	assert.Equal(t, 10, risk.Score)
	assert.Empty(t, risk.Factors)

	risk = scorer.Score(models.NewSymptomSet("Fever"), 30, 0, 0, 0, "", nil)
	assert.Equal(t, 0, risk.Score)
}

func TestScore_CriticalSymptomsClamped(t *testing.T) {
	scorer := NewRiskScorer(nil)

	risk := scorer.Score(models.NewSymptomSet("Diarrhea", "Vomiting", "Jaundice", "Chest Pain", "Breathlessness"), 30, 0, 0, 0, "", nil)

	// 20 + 25 + 25 + 20 + 10 + 10 = 110，上限 100
	assert.Equal(t, 100, risk.Score)
	assert.Equal(t, models.RiskCategoryHigh, risk.Category)
	assert.Equal(t, []string{
		"Multiple symptoms (5)",
		"Critical: Breathlessness",
		"Critical: Chest Pain",
		"Critical: Jaundice",
	}, risk.Factors)
}

func TestScore_MinorCriticalSymptomsHaveNoFactor(t *testing.T) {
	scorer := NewRiskScorer(nil)

	risk := scorer.Score(models.NewSymptomSet("Vomiting"), 30, 0, 0, 0, "", nil)

	assert.Equal(t, 10, risk.Score)
	assert.Empty(t, risk.Factors)
}

func TestScore_BloodPressure(t *testing.T) {
	scorer := NewRiskScorer(nil)

	tests := []struct {
		systolic  int
		diastolic int
		score     int
		factor    string
	}{
		{180, 100, 35, "⚠️ Hypertensive Crisis"},
		{150, 125, 35, "⚠️ Hypertensive Crisis"},
		{150, 85, 18, "High Blood Pressure"},
		{130, 95, 18, "High Blood Pressure"},
		{85, 70, 22, "Low Blood Pressure"},
		{120, 55, 22, "Low Blood Pressure"},
		{120, 80, 0, ""},
		{200, 0, 0, ""},
		{0, 130, 0, ""},
	}
	for _, tt := range tests {
		risk := scorer.Score(nil, 30, tt.systolic, tt.diastolic, 0, "", nil)
		assert.Equal(t, tt.score, risk.Score, "bp %d/%d", tt.systolic, tt.diastolic)
		if tt.factor == "" {
			assert.Empty(t, risk.Factors)
		} else {
			assert.Equal(t, []string{tt.factor}, risk.Factors)
		}
	}
}

func TestScore_Pulse(t *testing.T) {
	scorer := NewRiskScorer(nil)

	tests := []struct {
		pulse  int
		score  int
		factor string
	}{
		{130, 18, "Tachycardia (Rapid Heart)"},
		{121, 18, "Tachycardia (Rapid Heart)"},
		{120, 10, "Elevated Heart Rate"},
		{101, 10, "Elevated Heart Rate"},
		{100, 0, ""},
		{50, 0, ""},
		{49, 18, "Bradycardia (Slow Heart)"},
		{0, 0, ""},
		{-10, 0, ""},
	}
	for _, tt := range tests {
		risk := scorer.Score(nil, 30, 0, 0, tt.pulse, "", nil)
		assert.Equal(t, tt.score, risk.Score, "pulse %d", tt.pulse)
		if tt.factor == "" {
			assert.Empty(t, risk.Factors)
		} else {
			assert.Equal(t, []string{tt.factor}, risk.Factors)
		}
	}
}

func TestScore_CityOutbreak(t *testing.T) {
	high := models.DiseaseStat{Risk: models.RiskLevelHigh}
	low := models.DiseaseStat{Risk: models.RiskLevelLow}
	scorer := NewRiskScorer(stubEpidemiology{
		"Four":  {"A": high, "B": high, "C": high, "D": high, "E": low},
		"Two":   {"A": high, "B": high, "C": low},
		"One":   {"A": high, "B": low},
		"Quiet": {"A": low},
	})

	tests := []struct {
		city   string
		score  int
		factor string
	}{
		{"Four", 20, "City outbreak zone (4 diseases)"},
		{"Two", 12, "City has active outbreaks"},
		{"One", 6, ""},
		{"Quiet", 0, ""},
		{"Unknown", 0, ""},
	}
	for _, tt := range tests {
		risk := scorer.Score(nil, 30, 0, 0, 0, tt.city, nil)
		assert.Equal(t, tt.score, risk.Score, "city %s", tt.city)
		if tt.factor == "" {
			assert.Empty(t, risk.Factors)
		} else {
			assert.Equal(t, []string{tt.factor}, risk.Factors)
		}
	}
}

func TestScore_DefaultCities(t *testing.T) {
	scorer := NewRiskScorer(reference.MustDefault())

	assert.Equal(t, []string{"City outbreak zone (4 diseases)"}, scorer.Score(nil, 30, 0, 0, 0, "Mumbai", nil).Factors)
	assert.Equal(t, []string{"City has active outbreaks"}, scorer.Score(nil, 30, 0, 0, 0, "Delhi", nil).Factors)
	assert.Equal(t, 0, scorer.Score(nil, 30, 0, 0, 0, "Surat", nil).Score)
}

func TestScore_TopPrediction(t *testing.T) {
	scorer := NewRiskScorer(nil)

	tests := []struct {
		probability int
		score       int
		factor      string
	}{
		{90, 25, "High probability: Dengue"},
		{85, 25, "High probability: Dengue"},
		{75, 15, "Likely: Dengue"},
		{70, 15, "Likely: Dengue"},
		{60, 8, ""},
		{55, 8, ""},
		{50, 0, ""},
	}
	for _, tt := range tests {
		predictions := models.Predictions{
			{Disease: "Dengue", Probability: tt.probability},
			{Disease: "Typhoid", Probability: 40},
		}
		risk := scorer.Score(nil, 30, 0, 0, 0, "", predictions)
		assert.Equal(t, tt.score, risk.Score, "probability %d", tt.probability)
		if tt.factor == "" {
			assert.Empty(t, risk.Factors)
		} else {
			assert.Equal(t, []string{tt.factor}, risk.Factors)
		}
	}
}

func TestScore_CategoryBoundaries(t *testing.T) {
	scorer := NewRiskScorer(nil)

	// 20（幼儿）+ 20（4 个症状）
	medium := scorer.Score(models.NewSymptomSet("Fever", "Cough", "Cold", "Headache"), 4, 0, 0, 0, "", nil)
	assert.Equal(t, 40, medium.Score)
	assert.Equal(t, models.RiskCategoryMedium, medium.Category)

	// 35（高龄）+ 35（高血压危象）
	high := scorer.Score(nil, 80, 180, 110, 0, "", nil)
	assert.Equal(t, 70, high.Score)
	assert.Equal(t, models.RiskCategoryHigh, high.Category)
}

func TestScore_FactorOrder(t *testing.T) {
	store := reference.MustDefault()
	symptoms := models.NewSymptomSet("Fever", "Cough", "Breathlessness")
	predictions := NewDiseasePredictor(store).Predict(symptoms, "Delhi", 68)

	risk := NewRiskScorer(store).Score(symptoms, 68, 150, 95, 115, "Delhi", predictions)

	assert.Equal(t, 100, risk.Score)
	assert.Equal(t, models.RiskCategoryHigh, risk.Category)
	assert.Equal(t, []string{
		"Elderly (65+)",
		"Critical: Breathlessness",
		"High Blood Pressure",
		"Elevated Heart Rate",
		"City has active outbreaks",
		"High probability: Respiratory Infection",
	}, risk.Factors)
}
