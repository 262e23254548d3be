package textnorm

import (
	"fmt"

	"github.com/fluhus/gostuff/nlp/wordnet"
)

// WordNetLookup — поиск синонимов по словарю WordNet.
//
// Контракт SynonymLookup: объединение имён лемм по всем синсетам всех
// частей речи, с дубликатами. Словарь загружается в память целиком
// один раз при создании.
type WordNetLookup struct {
	wn *wordnet.WordNet
}

var _ SynonymLookup = (*WordNetLookup)(nil)

// NewWordNetLookup загружает словарь WordNet из директории с данными
// (стандартная раскладка dict/: data.*, index.*).
func NewWordNetLookup(dataDir string) (*WordNetLookup, error) {
	wn, err := wordnet.Parse(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load wordnet from %s: %w", dataDir, err)
	}
	return &WordNetLookup{wn: wn}, nil
}

// Synonyms возвращает все леммы всех синсетов слова.
//
// Дубликаты не удаляются: ExpandSynonyms опирается на множественность
// токенов. Для неизвестного слова — пустой срез.
func (l *WordNetLookup) Synonyms(word string) []string {
	var out []string
	for _, synsets := range l.wn.Search(word) {
		for _, ss := range synsets {
			out = append(out, ss.Word...)
		}
	}
	return out
}

// StaticSynonyms — табличная реализация SynonymLookup.
//
// Применяется в тестах и в офлайн-режиме без словаря WordNet на диске.
type StaticSynonyms map[string][]string

var _ SynonymLookup = StaticSynonyms(nil)

// Synonyms возвращает синонимы из таблицы как есть.
func (s StaticSynonyms) Synonyms(word string) []string {
	return s[word]
}
