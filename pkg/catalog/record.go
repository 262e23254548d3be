// Package catalog загружает записи каталога одежды и наполняет ими граф.
//
// Это "тупой" слой ингестии: весь разбор исходного формата —
// CSV, объект в S3, таблица sqlite,
// строковый литерал списка ссылок — происходит здесь. Ядро (pkg/graph)
// получает уже готовые записи.
package catalog

import "strings"

// Record — одна запись каталога: атрибуты вещи до вставки в граф.
type Record struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ImageURLs   []string
	SourceLink  string
}

// ParseURLList декодирует строковый литерал списка ссылок из датасета:
//
//	"['https://a.jpg', 'https://b.jpg']" → ["https://a.jpg", "https://b.jpg"]
//
// Формат: скобки по краям, элементы через ", ", каждый в одинарных или
// двойных кавычках. Пустой список ("[]" или "") — nil.
func ParseURLList(text string) []string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	if text == "" {
		return nil
	}

	parts := strings.Split(text, ", ")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		urls = append(urls, strings.Trim(p, `'"`))
	}
	return urls
}
