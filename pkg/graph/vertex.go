package graph

// Vertex — вершина графа, соответствующая одной вещи.
//
// Вершина бывает двух видов:
//   - каталожная: создана из записи каталога, Name непустое, ID стабильный;
//   - запросная (query vertex): создана из свободного описания пользователя,
//     Name/SourceLink пустые, Price == 0, ID сгенерирован (UUID).
//
// Соседи хранятся как id → вес, без прямых ссылок между вершинами
// (все вершины живут в центральном хранилище Graph, связи только по id).
// Порядок вставки соседей сохраняется: он определяет tie-break при
// одинаковых весах в GetNeighbours.
//
// Инварианты:
//   - Description != ""
//   - вершина не является собственным соседом
//   - отношение соседства симметрично и веса совпадают с обеих сторон
type Vertex struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ImageURLs   []string
	SourceLink  string

	weights map[string]float64 // id соседа → вес ребра (>= 0)
	order   []string           // id соседей в порядке вставки
}

func newVertex(id, name, description string, price float64, urls []string, sourceLink string) *Vertex {
	return &Vertex{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		ImageURLs:   urls,
		SourceLink:  sourceLink,
		weights:     make(map[string]float64),
	}
}

// setNeighbour записывает (или перезаписывает) вес ребра к соседу.
// Порядок вставки фиксируется только при первом появлении соседа.
func (v *Vertex) setNeighbour(id string, weight float64) {
	if _, ok := v.weights[id]; !ok {
		v.order = append(v.order, id)
	}
	v.weights[id] = weight
}

// Weight возвращает вес ребра к соседу с данным id.
// Второе значение false — такого соседа нет.
func (v *Vertex) Weight(id string) (float64, bool) {
	w, ok := v.weights[id]
	return w, ok
}

// Degree возвращает количество соседей вершины.
func (v *Vertex) Degree() int {
	return len(v.order)
}

// NeighbourIDs возвращает копию списка id соседей в порядке вставки.
func (v *Vertex) NeighbourIDs() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// IsQuery сообщает, является ли вершина запросной (синтетической).
// Запросные вершины отличаются пустым именем — так же различает их
// и политика построения рёбер в InsertQueryItem.
func (v *Vertex) IsQuery() bool {
	return v.Name == ""
}
