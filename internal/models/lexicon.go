package models

// LexiconEntry 关键词 -> 规范症状
type LexiconEntry struct {
	Keyword string `yaml:"keyword" json:"keyword"`
	Symptom string `yaml:"symptom" json:"symptom"`
}

// Lexicon 单一语言的症状词典，条目顺序即扫描顺序
type Lexicon struct {
	Language Language       `yaml:"language" json:"language"`
	Entries  []LexiconEntry `yaml:"keywords" json:"keywords"`
}
