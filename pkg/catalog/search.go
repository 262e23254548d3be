package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Нечёткий поиск по названиям вещей для UI. Каталог небольшой
// (тысячи записей, не миллионы), поэтому простой перебор с
// ранжированием по сходству работает мгновенно.

// SearchMatch — результат поиска.
type SearchMatch struct {
	Record Record
	Score  float64 // Чем больше, тем лучше (0.0 - 1.0)
}

// SearchService — обертка над списком записей для поиска по названию.
type SearchService struct {
	records []Record
}

// NewSearchService создаёт сервис поиска над записями каталога.
func NewSearchService(records []Record) *SearchService {
	return &SearchService{records: records}
}

// FindTopMatches ищет топ-N записей, похожих по названию на query.
//
// Приоритеты: точное совпадение → подстрока → нечёткое совпадение
// (fuzzysearch, без учёта регистра и диакритики). Записи без
// какого-либо совпадения в выдачу не попадают.
func (s *SearchService) FindTopMatches(query string, topN int) []Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []SearchMatch
	for _, rec := range s.records {
		target := strings.ToLower(rec.Name)

		// 1. Точное совпадение - высший приоритет
		if target == query {
			matches = append(matches, SearchMatch{Record: rec, Score: 1.0})
			continue
		}

		// 2. Подстрока
		if strings.Contains(target, query) {
			matches = append(matches, SearchMatch{Record: rec, Score: 0.8})
			continue
		}

		// 3. Нечёткое совпадение: ранг — это расстояние Левенштейна,
		// приводим к (0, 0.8)
		if rank := fuzzy.RankMatchNormalizedFold(query, rec.Name); rank >= 0 {
			matches = append(matches, SearchMatch{Record: rec, Score: 0.8 / float64(rank+1)})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}

	out := make([]Record, len(matches))
	for i, m := range matches {
		out[i] = m.Record
	}
	return out
}
