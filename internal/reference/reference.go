// Package reference 提供只读参考数据：城市疾病流行数据、症状词表、多语言症状词典、医院联系方式
//
// 数据来自 YAML 文档（默认使用内嵌的 default.yaml），加载后不可变，
// 所有访问方法返回副本，可被并发调用。
package reference

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"wisefido-triage/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultData []byte

// ErrEmptyReference 参考数据缺少必需内容
var ErrEmptyReference = errors.New("reference data is empty")

// EpidemiologyLookup 城市疾病流行数据查询
type EpidemiologyLookup interface {
	// Profile 返回城市的疾病概况，未知城市返回空 profile
	Profile(city string) models.EpidemiologyProfile
	// Cities 返回所有已知城市（按名称排序）
	Cities() []string
}

// LexiconStore 多语言症状词典
type LexiconStore interface {
	// Lexicons 按固定顺序返回所有语言的词典
	Lexicons() []models.Lexicon
}

// HospitalDirectory 医院联系方式目录
type HospitalDirectory interface {
	Hospitals(city string) []models.Hospital
}

// cityData YAML 中单个城市的数据
type cityData struct {
	Alert       string                        `yaml:"alert"`
	Diseases    map[string]models.DiseaseStat `yaml:"diseases"`
	WeeklyCases []models.WeekCases            `yaml:"weekly_cases"` // 按周排列，最早的一周在前
}

// document YAML 文档结构
type document struct {
	Cities     map[string]cityData          `yaml:"cities"`
	Vocabulary []string                     `yaml:"vocabulary"`
	Lexicons   []models.Lexicon             `yaml:"lexicons"`
	Hospitals  map[string][]models.Hospital `yaml:"hospitals"`
}

// Store 基于 YAML 的参考数据存储（实现 EpidemiologyLookup、LexiconStore、HospitalDirectory）
type Store struct {
	doc    document
	cities []string
}

// Load 加载参考数据，path 为空时使用内嵌默认数据
func Load(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}
	store, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference file %s: %w", path, err)
	}
	return store, nil
}

// Default 返回内嵌的默认参考数据
func Default() (*Store, error) {
	return Parse(defaultData)
}

// MustDefault 返回内嵌的默认参考数据，解析失败时 panic
func MustDefault() *Store {
	store, err := Default()
	if err != nil {
		panic(fmt.Sprintf("invalid embedded reference data: %v", err))
	}
	return store
}

// Parse 解析并校验 YAML 参考数据
func Parse(content []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse reference data: %w", err)
	}
	if err := validate(&doc); err != nil {
		return nil, err
	}

	cities := make([]string, 0, len(doc.Cities))
	for city := range doc.Cities {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	return &Store{doc: doc, cities: cities}, nil
}

// validate 校验参考数据，并将词典症状统一为词表中的规范名称
func validate(doc *document) error {
	if len(doc.Cities) == 0 {
		return fmt.Errorf("%w: no cities", ErrEmptyReference)
	}
	if len(doc.Vocabulary) == 0 {
		return fmt.Errorf("%w: no vocabulary", ErrEmptyReference)
	}

	for city, data := range doc.Cities {
		for disease, stat := range data.Diseases {
			if _, err := models.ParseRiskLevel(string(stat.Risk)); err != nil {
				return fmt.Errorf("city %s disease %s: %w", city, disease, err)
			}
			if stat.Current < 0 {
				return fmt.Errorf("city %s disease %s: negative case count %d", city, disease, stat.Current)
			}
		}
		for week, cases := range data.WeeklyCases {
			for disease, count := range cases {
				if count < 0 {
					return fmt.Errorf("city %s week %d disease %s: negative case count %d", city, week+1, disease, count)
				}
			}
		}
	}

	vocabulary := models.Vocabulary(doc.Vocabulary)
	for i := range doc.Lexicons {
		lexicon := &doc.Lexicons[i]
		for j := range lexicon.Entries {
			entry := &lexicon.Entries[j]
			if entry.Keyword == "" {
				return fmt.Errorf("lexicon %s: empty keyword", lexicon.Language)
			}
			// 关键词与小写后的文本做子串匹配
			if strings.ToLower(entry.Keyword) != entry.Keyword {
				return fmt.Errorf("lexicon %s: keyword %q must be lower case", lexicon.Language, entry.Keyword)
			}
			canonical, ok := vocabulary.Canonical(entry.Symptom)
			if !ok {
				return fmt.Errorf("lexicon %s: symptom %q not in vocabulary", lexicon.Language, entry.Symptom)
			}
			entry.Symptom = canonical
		}
	}
	return nil
}

// Profile 返回城市的疾病概况副本，未知城市返回空 profile
func (s *Store) Profile(city string) models.EpidemiologyProfile {
	data, ok := s.doc.Cities[city]
	profile := make(models.EpidemiologyProfile, len(data.Diseases))
	if !ok {
		return profile
	}
	for disease, stat := range data.Diseases {
		profile[disease] = stat
	}
	return profile
}

// WeeklyCases 返回城市近几周的病例数副本，未知城市返回空
func (s *Store) WeeklyCases(city string) []models.WeekCases {
	series := s.doc.Cities[city].WeeklyCases
	weeks := make([]models.WeekCases, 0, len(series))
	for _, cases := range series {
		week := make(models.WeekCases, len(cases))
		for disease, count := range cases {
			week[disease] = count
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// CaseSeries 返回单个疾病按周排列的病例数，某周缺失记为 0
func (s *Store) CaseSeries(city, disease string) []int {
	series := s.doc.Cities[city].WeeklyCases
	counts := make([]int, 0, len(series))
	for _, cases := range series {
		counts = append(counts, cases[disease])
	}
	return counts
}

// Cities 返回所有已知城市（按名称排序）
func (s *Store) Cities() []string {
	cities := make([]string, len(s.cities))
	copy(cities, s.cities)
	return cities
}

// CanonicalCity 大小写不敏感地查找城市规范名称
func (s *Store) CanonicalCity(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, city := range s.cities {
		if strings.EqualFold(city, name) {
			return city, true
		}
	}
	return "", false
}

// Alert 返回城市的预警信息
func (s *Store) Alert(city string) string {
	return s.doc.Cities[city].Alert
}

// Lexicons 按文档顺序返回所有语言的词典
func (s *Store) Lexicons() []models.Lexicon {
	lexicons := make([]models.Lexicon, 0, len(s.doc.Lexicons))
	for _, lexicon := range s.doc.Lexicons {
		entries := make([]models.LexiconEntry, len(lexicon.Entries))
		copy(entries, lexicon.Entries)
		lexicons = append(lexicons, models.Lexicon{Language: lexicon.Language, Entries: entries})
	}
	return lexicons
}

// Vocabulary 返回规范症状词表
func (s *Store) Vocabulary() models.Vocabulary {
	vocabulary := make(models.Vocabulary, len(s.doc.Vocabulary))
	copy(vocabulary, s.doc.Vocabulary)
	return vocabulary
}

// Hospitals 返回城市的医院联系方式
func (s *Store) Hospitals(city string) []models.Hospital {
	hospitals := make([]models.Hospital, len(s.doc.Hospitals[city]))
	copy(hospitals, s.doc.Hospitals[city])
	return hospitals
}
