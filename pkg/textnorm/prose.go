package textnorm

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Дефолтные NLP-реализации поверх prose: словная токенизация и
// POS-разметка (Penn Treebank теги, прилагательные — "JJ").

// ProseTokenizer — словный токенизатор на базе prose.
type ProseTokenizer struct{}

var _ Tokenizer = ProseTokenizer{}

// Tokenize разбивает текст на словные токены.
//
// Сегментация предложений и NER отключены — нужна только токенизация.
// Если prose не смог разобрать вход, откатываемся на разбиение по
// пробелам: контракт Tokenizer — best-effort без ошибок.
func (ProseTokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return strings.Fields(text)
	}

	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Text)
	}
	return out
}

// ProseTagger — POS-теггер на базе prose.
type ProseTagger struct{}

var _ Tagger = ProseTagger{}

// Tag размечает токены POS-тегами.
//
// prose работает с текстом, а не со списком токенов, поэтому токены
// склеиваются пробелами и размечаются заново. На уже токенизированном
// входе повторная токенизация словных границ не меняет.
func (ProseTagger) Tag(tokens []string) []TaggedToken {
	if len(tokens) == 0 {
		return nil
	}

	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	proseToks := doc.Tokens()
	out := make([]TaggedToken, 0, len(proseToks))
	for _, t := range proseToks {
		out = append(out, TaggedToken{Text: t.Text, Tag: t.Tag})
	}
	return out
}

// FieldsTokenizer — примитивный токенизатор по пробельным символам.
//
// Используется там, где prose избыточен (тесты, офлайн-инструменты):
// не режет пунктуацию, только strings.Fields.
type FieldsTokenizer struct{}

var _ Tokenizer = FieldsTokenizer{}

// Tokenize разбивает текст по пробельным символам.
func (FieldsTokenizer) Tokenize(text string) []string {
	return strings.Fields(text)
}
