package models

// DiseasePrediction 单个疾病的预测概率（0-100 的整数百分比）
type DiseasePrediction struct {
	Disease     string `json:"disease"`
	Probability int    `json:"probability"`
}

// Predictions 按概率降序排列的预测结果，概率相同时保持计算顺序
type Predictions []DiseasePrediction

// Top 返回概率最高的预测
func (p Predictions) Top() (DiseasePrediction, bool) {
	if len(p) == 0 {
		return DiseasePrediction{}, false
	}
	return p[0], true
}

// Get 返回指定疾病的概率
func (p Predictions) Get(disease string) (int, bool) {
	for _, prediction := range p {
		if prediction.Disease == disease {
			return prediction.Probability, true
		}
	}
	return 0, false
}

// Diseases 返回疾病名称列表（保持顺序）
func (p Predictions) Diseases() []string {
	names := make([]string, 0, len(p))
	for _, prediction := range p {
		names = append(names, prediction.Disease)
	}
	return names
}
