// Package graph предоставляет ошибки для операций над взвешенным графом.
//
// Все ошибки следуют принципам из dev_manifest.md:
//   - Rule 7: Возвращаются вверх по стеку, никаких panic
//   - Явные sentinel-ошибки для обработки на верхних уровнях
//   - Поддержка errors.Is() для error wrapping
package graph

import "fmt"

// Ошибки графа.

// ErrEmptyDescription возвращается при попытке вставить вершину без описания.
//
// Инвариант модели: описание вещи никогда не пустое. Вершина не вставляется.
//
// Пример использования:
//   if description == "" {
//       return fmt.Errorf("%w: vertex %s", ErrEmptyDescription, id)
//   }
var ErrEmptyDescription = fmt.Errorf("item description is empty")

// ErrVertexNotFound возвращается когда вершина с указанным id отсутствует.
//
// Используется в AddEdge, GetNeighbours, Weight. Граф при этом не мутируется.
//
// Пример использования:
//   if _, ok := g.vertices[id]; !ok {
//       return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
//   }
var ErrVertexNotFound = fmt.Errorf("vertex not found")

// ErrSelfEdge возвращается при попытке добавить ребро вершины к самой себе.
//
// Петли запрещены: вершина никогда не является собственным соседом.
var ErrSelfEdge = fmt.Errorf("self-edge is not allowed")

// ErrNilScorer возвращается из InsertQueryItem когда граф создан без scorer.
//
// Без scorer граф пригоден только для ручного добавления рёбер (AddEdge).
var ErrNilScorer = fmt.Errorf("graph has no similarity scorer")
