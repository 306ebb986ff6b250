package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServiceName 服务名称（用于日志）
const ServiceName = "wisefido-triage"

// Config 分诊服务配置
type Config struct {
	// 分诊配置
	Triage struct {
		ReferenceFile   string // 参考数据 YAML 文件，为空时使用内嵌默认数据
		DefaultLanguage string // 语音输入默认语言，默认 "English"
		DefaultCity     string // 未识别出城市时使用的城市
		MaxFactors      int    // 报告中展示的风险因素数量，默认 5
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 加载配置
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Triage.ReferenceFile = getEnv("TRIAGE_REFERENCE_FILE", "")
	cfg.Triage.DefaultLanguage = getEnv("TRIAGE_DEFAULT_LANGUAGE", "English")
	cfg.Triage.DefaultCity = getEnv("TRIAGE_DEFAULT_CITY", "")

	maxFactors, err := strconv.Atoi(getEnv("TRIAGE_MAX_FACTORS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRIAGE_MAX_FACTORS: %w", err)
	}
	if maxFactors < 1 {
		return nil, fmt.Errorf("invalid TRIAGE_MAX_FACTORS: must be at least 1, got %d", maxFactors)
	}
	cfg.Triage.MaxFactors = maxFactors

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
