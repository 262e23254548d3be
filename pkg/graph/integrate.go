package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// InsertQueryItem вставляет запросную вершину из свободного описания
// и строит её рёбра ко всем уже существующим вершинам.
//
// Шаги:
//  1. Генерируется свежий UUID, вершина вставляется с пустым именем,
//     нулевой ценой и без ссылок.
//  2. Для каждой существующей вершины (в порядке вставки) вычисляется
//     оценка похожести и добавляется ребро. Нулевой вес — тоже ребро:
//     порога отсечения нет, ранжирует вызывающая сторона.
//
// Возвращает новую вершину; дальше обычно вызывают GetNeighbours(v.ID).
func (g *Graph) InsertQueryItem(description string) (*Vertex, error) {
	if g.scorer == nil {
		return nil, ErrNilScorer
	}
	if description == "" {
		return nil, fmt.Errorf("%w: query item", ErrEmptyDescription)
	}

	// Снимок списка вершин до вставки: сама запросная вершина
	// в скоринг не попадает (self-comparison пропускается).
	existing := g.VertexIDs()

	id := uuid.NewString()
	if err := g.AddVertex(id, "", description, 0, nil, ""); err != nil {
		return nil, err
	}
	q := g.vertices[id]

	for _, otherID := range existing {
		other := g.vertices[otherID]
		weight := g.edgeWeight(q, other)
		if err := g.AddEdge(q.ID, other.ID, weight); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// edgeWeight вычисляет вес ребра между запросной вершиной q и вершиной v.
//
// Политика направления трёхветочная и зависит от того, у какой стороны
// пустое имя (пустое имя == запросная вершина):
//   - q без имени: кандидат — описание v вместе с именем;
//   - v без имени (запрос против запроса): стороны меняются местами;
//   - обе с именем: только описания, без конкатенации имён.
//
// Тесты закрепляют все три ветки; менять политику — только вместе
// с ними (см. DESIGN.md).
func (g *Graph) edgeWeight(q, v *Vertex) float64 {
	switch {
	case q.Name == "":
		return g.scorer.Score(q.Description, v.Description+v.Name)
	case v.Name == "":
		return g.scorer.Score(q.Description+q.Name, v.Description)
	default:
		return g.scorer.Score(q.Description, v.Description)
	}
}
