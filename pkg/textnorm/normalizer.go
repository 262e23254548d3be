// Package textnorm нормализует свободный текст описаний одежды.
//
// Нормализатор — единственный вход текста в скоринг: токенизация,
// удаление стоп-слов, извлечение значимых токенов запроса (прилагательные
// и типы одежды) и расширение синонимами.
//
// Внешние NLP-сервисы (токенизатор, POS-теггер, поиск синонимов) заведены
// через интерфейсы: ядро зависит только от контрактов "текст на входе —
// токены/теги/синонимы на выходе". Дефолтные реализации — prose (см.
// prose.go) и WordNet (см. wordnet.go).
package textnorm

// TaggedToken — токен с POS-тегом (Penn Treebank: "JJ", "NN", ...).
type TaggedToken struct {
	Text string
	Tag  string
}

// Tokenizer разбивает текст на словные токены.
//
// Реализации best-effort: на невалидном входе возвращают то, что смогли
// разобрать, без ошибки — у ядра скоринга нет поверхности ошибок I/O.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Tagger размечает последовательность токенов POS-тегами.
type Tagger interface {
	Tag(tokens []string) []TaggedToken
}

// SynonymLookup возвращает синонимы слова: объединение имён лемм по всем
// синсетам, дубликаты сохраняются. Для неизвестного слова — пустой срез.
type SynonymLookup interface {
	Synonyms(word string) []string
}

// Normalizer связывает NLP-сервисы со словарями предметной области.
type Normalizer struct {
	tokenizer Tokenizer
	tagger    Tagger
	synonyms  SynonymLookup
	vocab     *Vocabulary
}

// New создаёт нормализатор поверх указанных сервисов и словаря.
//
// tagger и synonyms могут быть nil, если ExtractQuerySignal /
// ExpandSynonyms не используются (скоринг требует только токенизатор).
func New(tokenizer Tokenizer, tagger Tagger, synonyms SynonymLookup, vocab *Vocabulary) *Normalizer {
	return &Normalizer{
		tokenizer: tokenizer,
		tagger:    tagger,
		synonyms:  synonyms,
		vocab:     vocab,
	}
}

// TokenizeAndStrip разбивает текст на токены и убирает стоп-слова.
//
// Сравнение со списком стоп-слов регистрозависимое: "The" проходит,
// "the" отфильтровывается. Пустой вход — пустой результат.
func (n *Normalizer) TokenizeAndStrip(text string) []string {
	tokens := n.tokenizer.Tokenize(text)

	filtered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if n.vocab.IsStopword(t) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// ExtractQuerySignal сужает описание запроса до значимых токенов:
// прилагательные (тег "JJ") и токены из словаря типов одежды.
//
// Порядок результата: сначала прилагательные, затем типы одежды;
// внутри каждой группы сохраняется порядок появления в тексте.
func (n *Normalizer) ExtractQuerySignal(text string) []string {
	tokens := n.TokenizeAndStrip(text)

	var clothing []string
	for _, t := range tokens {
		if n.vocab.IsClothing(t) {
			clothing = append(clothing, t)
		}
	}

	var adjectives []string
	for _, tagged := range n.tagger.Tag(tokens) {
		if tagged.Tag == "JJ" {
			adjectives = append(adjectives, tagged.Text)
		}
	}

	return append(adjectives, clothing...)
}

// ExpandSynonyms расширяет токены синонимами.
//
// Для каждого токена: сам токен попадает в результат; базовый цвет
// дублируется ещё раз и НЕ раскрывается; остальные слова дополняются
// всеми леммами всех синсетов. Дубликаты сохраняются намеренно —
// скоринг итерирует токены с повторами, и множественность значима.
func (n *Normalizer) ExpandSynonyms(tokens []string) []string {
	var out []string
	for _, w := range tokens {
		out = append(out, w)
		if n.vocab.IsBasicColour(w) {
			out = append(out, w)
			continue
		}
		out = append(out, n.synonyms.Synonyms(w)...)
	}
	return out
}
