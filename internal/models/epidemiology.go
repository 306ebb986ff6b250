package models

import (
	"errors"
	"fmt"
)

// ErrUnknownRiskLevel 未知的风险等级
var ErrUnknownRiskLevel = errors.New("unknown risk level")

// RiskLevel 城市疾病流行风险等级
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// Valid 是否为合法等级
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	}
	return false
}

// ParseRiskLevel 解析风险等级
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(s)
	if !level.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRiskLevel, s)
	}
	return level, nil
}

// DiseaseStat 单个疾病在某城市的流行数据快照
type DiseaseStat struct {
	Current int       `yaml:"current" json:"current"` // 当前病例数
	Trend   string    `yaml:"trend" json:"trend"`     // 带符号百分比，如 "+40%"
	Risk    RiskLevel `yaml:"risk" json:"risk"`
}

// EpidemiologyProfile 城市疾病流行概况（疾病名 -> 数据）
// 未知城市对应空 profile，所有城市相关加分均为 0
type EpidemiologyProfile map[string]DiseaseStat

// RiskOf 返回疾病的风险等级，不存在时返回空字符串
func (p EpidemiologyProfile) RiskOf(disease string) RiskLevel {
	if stat, ok := p[disease]; ok {
		return stat.Risk
	}
	return ""
}

// CountAtRisk 统计处于指定风险等级的疾病数量
func (p EpidemiologyProfile) CountAtRisk(level RiskLevel) int {
	count := 0
	for _, stat := range p {
		if stat.Risk == level {
			count++
		}
	}
	return count
}

// WeekCases 某城市单周各疾病病例数（疾病名 -> 病例数）
type WeekCases map[string]int
