package models

import "strings"

// SymptomSet 规范症状集合
// 保持首次出现的顺序（用于展示），重复项（大小写不敏感）只保留一次
type SymptomSet []string

// NewSymptomSet 创建症状集合
func NewSymptomSet(symptoms ...string) SymptomSet {
	set := make(SymptomSet, 0, len(symptoms))
	for _, symptom := range symptoms {
		if symptom != "" && !set.Contains(symptom) {
			set = append(set, symptom)
		}
	}
	return set
}

// Add 追加症状，已存在或为空时原样返回
// 返回新的底层数组，不会改写 s 之后的容量
func (s SymptomSet) Add(symptom string) SymptomSet {
	if symptom == "" || s.Contains(symptom) {
		return s
	}
	return append(s[:len(s):len(s)], symptom)
}

// Contains 判断是否包含症状（大小写不敏感，空白必须完全一致）
func (s SymptomSet) Contains(symptom string) bool {
	for _, existing := range s {
		if strings.EqualFold(existing, symptom) {
			return true
		}
	}
	return false
}

// CountIn 统计集合中有多少症状属于 triggers
func (s SymptomSet) CountIn(triggers []string) int {
	count := 0
	for _, symptom := range s {
		for _, trigger := range triggers {
			if strings.EqualFold(symptom, trigger) {
				count++
				break
			}
		}
	}
	return count
}

// Merge 合并另一个集合（保持当前集合在前）
func (s SymptomSet) Merge(other SymptomSet) SymptomSet {
	merged := NewSymptomSet(s...)
	for _, symptom := range other {
		merged = merged.Add(symptom)
	}
	return merged
}

// Vocabulary 规范症状词表（如 "Fever", "Chest Pain"）
type Vocabulary []string

// Canonical 返回与 label 大小写不敏感匹配的规范名称
func (v Vocabulary) Canonical(label string) (string, bool) {
	for _, canonical := range v {
		if strings.EqualFold(canonical, label) {
			return canonical, true
		}
	}
	return "", false
}

// Normalize 将原始输入转换为规范症状集合，未知症状被丢弃
func (v Vocabulary) Normalize(raw []string) SymptomSet {
	set := NewSymptomSet()
	for _, label := range raw {
		if canonical, ok := v.Canonical(label); ok {
			set = set.Add(canonical)
		}
	}
	return set
}
