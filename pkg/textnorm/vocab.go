package textnorm

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed vocab.yaml
var vocabYAML []byte

//go:embed stopwords_en.txt
var stopwordsEN string

// Vocabulary — фиксированные словари предметной области: стоп-слова,
// скоринговые цвета, базовые цвета для синонимов и типы одежды.
//
// Загружается один раз (embed + Default с sync.Once); после загрузки
// структура read-only, мутирующих методов нет.
type Vocabulary struct {
	colours      map[string]struct{}
	basicColours map[string]struct{}
	clothing     map[string]struct{}
	stopwords    map[string]struct{}
}

// vocabFile — схема vocab.yaml.
type vocabFile struct {
	Colours      []string `yaml:"colours"`
	BasicColours []string `yaml:"basic_colours"`
	Clothing     []string `yaml:"clothing"`
}

var (
	defaultVocab     *Vocabulary
	defaultVocabErr  error
	defaultVocabOnce sync.Once
)

// Default возвращает словарь, собранный из встроенных файлов.
// Парсинг выполняется один раз на процесс.
func Default() (*Vocabulary, error) {
	defaultVocabOnce.Do(func() {
		defaultVocab, defaultVocabErr = newVocabulary(vocabYAML, stopwordsEN)
	})
	return defaultVocab, defaultVocabErr
}

func newVocabulary(rawYAML []byte, rawStopwords string) (*Vocabulary, error) {
	var f vocabFile
	if err := yaml.Unmarshal(rawYAML, &f); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary yaml: %w", err)
	}
	if len(f.Colours) == 0 || len(f.Clothing) == 0 {
		return nil, fmt.Errorf("vocabulary yaml is incomplete: colours=%d clothing=%d", len(f.Colours), len(f.Clothing))
	}

	v := &Vocabulary{
		colours:      toSet(f.Colours),
		basicColours: toSet(f.BasicColours),
		clothing:     toSet(f.Clothing),
		stopwords:    make(map[string]struct{}),
	}

	for _, line := range strings.Split(rawStopwords, "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		v.stopwords[word] = struct{}{}
	}
	if len(v.stopwords) == 0 {
		return nil, fmt.Errorf("stopword list is empty")
	}

	return v, nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsColour сообщает, входит ли токен в скоринговый список цветов.
// Сравнение точное и регистрозависимое, как и в остальных словарях.
func (v *Vocabulary) IsColour(token string) bool {
	_, ok := v.colours[token]
	return ok
}

// IsBasicColour сообщает, входит ли токен в список базовых цветов
// (ветка дублирования в ExpandSynonyms).
func (v *Vocabulary) IsBasicColour(token string) bool {
	_, ok := v.basicColours[token]
	return ok
}

// IsClothing сообщает, является ли токен типом одежды.
func (v *Vocabulary) IsClothing(token string) bool {
	_, ok := v.clothing[token]
	return ok
}

// IsStopword сообщает, является ли токен стоп-словом.
func (v *Vocabulary) IsStopword(token string) bool {
	_, ok := v.stopwords[token]
	return ok
}
