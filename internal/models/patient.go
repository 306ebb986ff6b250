package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownGender 未知的性别取值
var ErrUnknownGender = errors.New("unknown gender")

// Gender 性别
type Gender string

const (
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
	GenderUnknown Gender = ""
)

// ParseGender 解析手工录入的性别（"M"/"F"，大小写不敏感），空串为未知
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return GenderUnknown, nil
	case string(GenderMale):
		return GenderMale, nil
	case string(GenderFemale):
		return GenderFemale, nil
	}
	return GenderUnknown, fmt.Errorf("%w: %q", ErrUnknownGender, s)
}

// Language 语音输入语言
type Language string

const (
	LanguageEnglish  Language = "English"
	LanguageHindi    Language = "Hindi"
	LanguageGujarati Language = "Gujarati"
)

// PatientRange 批量模式下的病人编号范围（闭区间）
type PatientRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// PatientRecord 病人记录（语音提取或手工录入）
type PatientRecord struct {
	Name         string        `json:"name"`
	Age          int           `json:"age"`
	Gender       Gender        `json:"gender"`
	Symptoms     SymptomSet    `json:"symptoms"`
	BP           string        `json:"bp"`    // "收缩压/舒张压"，未知为空
	Pulse        int           `json:"pulse"` // 0 表示未测量
	City         string        `json:"city"`
	Language     Language      `json:"language,omitempty"`
	BulkMode     bool          `json:"bulk_mode"`
	PatientRange *PatientRange `json:"patient_range,omitempty"`
	Timestamp    string        `json:"timestamp"`
}

// Vitals 解析记录中的血压
func (r PatientRecord) Vitals() (systolic, diastolic int) {
	return ParseBP(r.BP)
}

// ParseBP 解析 "S/D" 格式血压，格式不正确时返回 (0, 0)
func ParseBP(bp string) (systolic, diastolic int) {
	parts := strings.Split(strings.TrimSpace(bp), "/")
	if len(parts) != 2 {
		return 0, 0
	}
	s, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0
	}
	return s, d
}

// Hospital 医院联系方式
type Hospital struct {
	Name  string `yaml:"name" json:"name"`
	Phone string `yaml:"phone" json:"phone"`
}
