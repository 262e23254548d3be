package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig — корневая структура конфигурации.
// Она зеркалит структуру config.yaml.
type AppConfig struct {
	Catalog         CatalogConfig   `yaml:"catalog"`
	Models          ModelsConfig    `yaml:"models"`
	S3              S3Config        `yaml:"s3"`
	ImageProcessing ImageProcConfig `yaml:"image_processing"`
	NLP             NLPConfig       `yaml:"nlp"`
	Matching        MatchingConfig  `yaml:"matching"`
	App             AppSpecific     `yaml:"app"`
}

// CatalogConfig — источник каталога вещей.
//
// source задаёт тип: "csv" (локальный файл), "s3" (объект в бакете),
// "sqlite" (таблица в базе).
type CatalogConfig struct {
	Source string `yaml:"source"` // "csv" | "s3" | "sqlite"
	Path   string `yaml:"path"`   // путь к csv или sqlite файлу
	Key    string `yaml:"key"`    // ключ объекта для source=s3
	Table  string `yaml:"table"`  // имя таблицы для source=sqlite
}

// GetDefaults возвращает дефолтные значения для незаполненных полей.
func (c *CatalogConfig) GetDefaults() CatalogConfig {
	result := *c // Копируем текущие значения

	if result.Source == "" {
		result.Source = "csv"
	}
	if result.Table == "" {
		result.Table = "items"
	}

	return result
}

// ModelsConfig — настройки vision модели для описания изображений.
type ModelsConfig struct {
	DefaultVision string              `yaml:"default_vision"` // Алиас по умолчанию
	Definitions   map[string]ModelDef `yaml:"definitions"`    // Словарь определений моделей
}

// ModelDef — параметры конкретной модели.
type ModelDef struct {
	Provider    string        `yaml:"provider"`   // "openai", "zai" и т.д.
	ModelName   string        `yaml:"model_name"` // Реальное имя в API
	APIKey      string        `yaml:"api_key"`    // Поддерживает ${VAR}
	BaseURL     string        `yaml:"base_url"`
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`    // Go умеет парсить строки вида "60s", "1m"
	RateLimit   int           `yaml:"rate_limit"` // Запросов в минуту
	Burst       int           `yaml:"burst"`      // Burst для rate limiter
}

// S3Config — настройки объектного хранилища (для catalog.source=s3).
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"` // Поддерживает ${VAR}
	SecretKey string `yaml:"secret_key"` // Поддерживает ${VAR}
	UseSSL    bool   `yaml:"use_ssl"`
}

// ImageProcConfig — настройки обработки изображений перед vision запросом.
type ImageProcConfig struct {
	MaxWidth int `yaml:"max_width"`
	Quality  int `yaml:"quality"`
}

// NLPConfig — пути к данным внешних NLP-сервисов.
type NLPConfig struct {
	WordNetDir string `yaml:"wordnet_dir"` // Директория dict/ словаря WordNet (опционально)
}

// MatchingConfig — параметры выдачи похожих вещей.
type MatchingConfig struct {
	TopN int `yaml:"top_n"` // Сколько соседей показывать
}

// GetDefaults возвращает дефолтные значения для незаполненных полей.
func (c *MatchingConfig) GetDefaults() MatchingConfig {
	result := *c

	if result.TopN == 0 {
		result.TopN = 10
	}

	return result
}

// AppSpecific — общие настройки приложения.
type AppSpecific struct {
	Debug bool `yaml:"debug"`
}

// Load читает YAML файл, подставляет ENV переменные и возвращает готовую структуру.
func Load(path string) (*AppConfig, error) {
	// 1. Проверяем существование файла
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at: %s", path)
	}

	// 2. Читаем файл целиком
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Подставляем переменные окружения.
	// os.ExpandEnv заменяет ${VAR} или $VAR на значение из системы.
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	// 4. Парсим YAML в структуру
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	// 5. Валидируем критические настройки
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// validate проверяет обязательные поля.
func (c *AppConfig) validate() error {
	catalog := c.Catalog.GetDefaults()

	switch catalog.Source {
	case "csv", "sqlite":
		if catalog.Path == "" {
			return fmt.Errorf("catalog.path is required for source=%s", catalog.Source)
		}
	case "s3":
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required for source=s3")
		}
		if c.S3.Endpoint == "" {
			return fmt.Errorf("s3.endpoint is required for source=s3")
		}
		if catalog.Key == "" {
			return fmt.Errorf("catalog.key is required for source=s3")
		}
	default:
		return fmt.Errorf("catalog.source must be csv, s3 or sqlite, got '%s'", catalog.Source)
	}

	// Vision опционален, но заявленная дефолтная модель должна быть определена
	if c.Models.DefaultVision != "" {
		if _, ok := c.Models.Definitions[c.Models.DefaultVision]; !ok {
			return fmt.Errorf("default_vision model '%s' is not defined in definitions", c.Models.DefaultVision)
		}
	}

	return nil
}

// Helper методы для удобства доступа (Syntactic sugar)

// GetVisionModel возвращает конфигурацию модели по умолчанию или по имени.
func (c *AppConfig) GetVisionModel(name string) (ModelDef, bool) {
	if name == "" {
		name = c.Models.DefaultVision
	}
	m, ok := c.Models.Definitions[name]
	return m, ok
}
