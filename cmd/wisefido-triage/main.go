package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"wisefido-triage/internal/config"
	"wisefido-triage/internal/logger"
	"wisefido-triage/internal/models"
	"wisefido-triage/internal/service"

	"go.uber.org/zap"
)

func main() {
	text := flag.String("text", "", "Voice transcript (read from stdin when empty)")
	name := flag.String("name", "", "Patient name (overrides the transcript)")
	lang := flag.String("lang", "", "Transcript language: English, Hindi or Gujarati")
	city := flag.String("city", "", "Patient city (overrides the transcript)")
	age := flag.Int("age", 0, "Patient age (overrides the transcript)")
	gender := flag.String("gender", "", "Patient gender: M or F")
	bp := flag.String("bp", "", "Blood pressure, e.g. 140/90")
	pulse := flag.Int("pulse", 0, "Pulse in bpm")
	symptoms := flag.String("symptoms", "", "Comma-separated symptoms, e.g. 'Fever,Chest Pain'")
	asJSON := flag.Bool("json", false, "Print the full assessment as JSON")
	flag.Parse()

	override, err := buildOverrides(*name, *gender, *bp, *city, *symptoms, *age, *pulse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, config.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. 创建服务
	triageService, err := service.NewTriageService(cfg, log)
	if err != nil {
		log.Fatal("Failed to create triage service", zap.Error(err))
	}

	// 4. 读取转写文本
	transcript := *text
	if transcript == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal("Failed to read transcript from stdin", zap.Error(err))
		}
		transcript = string(data)
	}

	// 5. 评估并输出
	assessment := triageService.AssessTranscript(transcript, *lang, override)

	if *asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(assessment); err != nil {
			log.Fatal("Failed to encode assessment", zap.Error(err))
		}
		return
	}

	fmt.Println(assessment.Report)
	if assessment.Record.BulkMode && assessment.Record.PatientRange != nil {
		fmt.Printf("\nBulk mode: patients %d to %d\n", assessment.Record.PatientRange.Start, assessment.Record.PatientRange.End)
	}
	if assessment.Alert != "" {
		fmt.Printf("\n%s\n", assessment.Alert)
	}
	if len(assessment.Hospitals) > 0 {
		fmt.Println("\nNotify:")
		for _, hospital := range assessment.Hospitals {
			fmt.Printf("  %s  %s\n", hospital.Name, hospital.Phone)
		}
	}
}

// buildOverrides 将命令行参数转换为手工录入字段
func buildOverrides(name, gender, bp, city, symptoms string, age, pulse int) (service.Overrides, error) {
	parsedGender, err := models.ParseGender(gender)
	if err != nil {
		return service.Overrides{}, fmt.Errorf("-gender must be M or F: %w", err)
	}
	return service.Overrides{
		Name:     strings.TrimSpace(name),
		Age:      age,
		Gender:   parsedGender,
		BP:       strings.TrimSpace(bp),
		Pulse:    pulse,
		City:     strings.TrimSpace(city),
		Symptoms: splitSymptoms(symptoms),
	}, nil
}

// splitSymptoms 拆分逗号分隔的症状列表
func splitSymptoms(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var symptoms []string
	for _, symptom := range strings.Split(raw, ",") {
		if symptom = strings.TrimSpace(symptom); symptom != "" {
			symptoms = append(symptoms, symptom)
		}
	}
	return symptoms
}
