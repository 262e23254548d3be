// Package similarity вычисляет лексическую оценку похожести описаний.
//
// Оценка — направленный bag-of-words overlap: токены кандидата ищутся
// как подстроки в сыром тексте запроса, совпадения взвешиваются в пользу
// предметной лексики (типы одежды x3 к базовому баллу, цвета x2).
//
// Свойства модели (намеренные, закреплены тестами):
//   - несимметричность: Score(a, b) != Score(b, a);
//   - отсутствие фиксированной верхней границы: повторы токенов
//     кандидата повышают числитель, нормировка только на их количество.
package similarity

import (
	"strings"

	"github.com/ilkoid/stylematch/pkg/textnorm"
)

// Веса совпадений. Базовый балл начисляется за любое совпадение,
// бонусы — дополнительно к нему.
const (
	baseScore     = 1
	colourBonus   = 1
	clothingBonus = 3
)

// Scorer оценивает похожесть candidate-текста относительно query-текста.
type Scorer struct {
	norm  *textnorm.Normalizer
	vocab *textnorm.Vocabulary
}

// New создаёт scorer поверх нормализатора и словаря.
func New(norm *textnorm.Normalizer, vocab *textnorm.Vocabulary) *Scorer {
	return &Scorer{norm: norm, vocab: vocab}
}

// Score возвращает оценку похожести candidateText относительно queryText.
//
// Кандидат нормализуется (токенизация + стоп-слова), запрос используется
// сырым: токен засчитывается, если его lowercase-форма входит в queryText
// как подстрока. Повторы токенов считаются столько раз, сколько встретились.
// Итог нормируется на число токенов кандидата; пустой кандидат — 0.
func (s *Scorer) Score(queryText, candidateText string) float64 {
	tokens := s.norm.TokenizeAndStrip(candidateText)
	if len(tokens) == 0 {
		return 0
	}

	score := 0.0
	for _, w := range tokens {
		if !strings.Contains(queryText, strings.ToLower(w)) {
			continue
		}
		score += baseScore
		// Бонусы по оригинальному регистру токена: словари в нижнем
		// регистре, "Black" бонуса не получает.
		if s.vocab.IsColour(w) {
			score += colourBonus
		}
		if s.vocab.IsClothing(w) {
			score += clothingBonus
		}
	}

	return score / float64(len(tokens))
}
