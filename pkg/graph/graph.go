// Package graph реализует in-memory взвешенный неориентированный граф вещей.
//
// Граф связывает описание вещи пользователя с наиболее похожими вещами
// каталога: вес ребра — лексическая оценка пересечения описаний.
//
// Архитектура:
//   - все вершины лежат в центральном хранилище map[id]*Vertex;
//   - рёбра хранятся как id → вес на обеих вершинах (симметрично);
//   - порядок вставки вершин и соседей стабилен — от него зависят
//     tie-break'и при равных весах.
//
// Concurrency: граф НЕ потокобезопасен. Это синхронная CPU-bound структура
// одного сеанса; при конкурентном доступе оборачивайте внешним мьютексом.
package graph

import (
	"fmt"
	"sort"
)

// Scorer вычисляет направленную оценку похожести candidate-текста
// относительно query-текста. Реализация — pkg/similarity.
//
// Оценка несимметрична: Score(a, b) != Score(b, a) в общем случае.
type Scorer interface {
	Score(queryText, candidateText string) float64
}

// Graph — взвешенный граф вещей.
//
// Вершины создаются один раз (загрузка каталога или вставка запроса)
// и никогда не удаляются; мутируют только веса соседей.
type Graph struct {
	vertices map[string]*Vertex
	order    []string // id вершин в порядке вставки
	scorer   Scorer
}

// New создаёт пустой граф.
//
// scorer используется в InsertQueryItem для вычисления весов рёбер;
// допускается nil, если граф наполняется только вручную через AddEdge.
func New(scorer Scorer) *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
		scorer:   scorer,
	}
}

// Len возвращает количество вершин в графе.
func (g *Graph) Len() int {
	return len(g.order)
}

// HasVertex сообщает, есть ли вершина с данным id.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertex возвращает вершину по id.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	return v, nil
}

// VertexIDs возвращает копию списка id вершин в порядке вставки.
func (g *Graph) VertexIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// AddVertex вставляет новую вершину без соседей.
//
// Если вершина с таким id уже есть — ничего не делает (не ошибка:
// повторная загрузка каталога идемпотентна).
// Возвращает ErrEmptyDescription при пустом описании, ничего не вставляя.
func (g *Graph) AddVertex(id, name, description string, price float64, urls []string, sourceLink string) error {
	if description == "" {
		return fmt.Errorf("%w: vertex %q", ErrEmptyDescription, id)
	}
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = newVertex(id, name, description, price, urls, sourceLink)
	g.order = append(g.order, id)
	return nil
}

// AddEdge добавляет (или перезаписывает) ребро между двумя вершинами.
//
// Вес пишется симметрично на обе вершины. Ребро между вершиной и ею самой
// запрещено (ErrSelfEdge). Если любой из id отсутствует — ErrVertexNotFound,
// граф не мутируется.
func (g *Graph) AddEdge(id1, id2 string, weight float64) error {
	if id1 == id2 {
		return fmt.Errorf("%w: %s", ErrSelfEdge, id1)
	}
	v1, ok := g.vertices[id1]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, id1)
	}
	v2, ok := g.vertices[id2]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, id2)
	}
	v1.setNeighbour(id2, weight)
	v2.setNeighbour(id1, weight)
	return nil
}

// Weight возвращает вес ребра между двумя вершинами.
//
// Если ребра нет — (0, false). Ошибка только при неизвестном id.
func (g *Graph) Weight(id1, id2 string) (float64, bool, error) {
	v, err := g.Vertex(id1)
	if err != nil {
		return 0, false, err
	}
	if !g.HasVertex(id2) {
		return 0, false, fmt.Errorf("%w: %s", ErrVertexNotFound, id2)
	}
	w, ok := v.Weight(id2)
	return w, ok, nil
}

// GetNeighbours возвращает соседей вершины по убыванию веса.
//
// Сортировка стабильная: при равных весах сохраняется порядок вставки
// соседей. Возвращает ErrVertexNotFound при неизвестном id.
func (g *Graph) GetNeighbours(id string) ([]*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	ids := v.NeighbourIDs()
	sort.SliceStable(ids, func(i, j int) bool {
		return v.weights[ids[i]] > v.weights[ids[j]]
	})

	out := make([]*Vertex, len(ids))
	for i, nid := range ids {
		out[i] = g.vertices[nid]
	}
	return out, nil
}
