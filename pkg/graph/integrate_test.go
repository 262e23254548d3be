package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scorerFunc — стаб Scorer для тестов политики построения рёбер.
type scorerFunc func(queryText, candidateText string) float64

func (f scorerFunc) Score(queryText, candidateText string) float64 {
	return f(queryText, candidateText)
}

// scoredPair фиксирует аргументы одного вызова Score.
type scoredPair struct {
	query, candidate string
}

func TestInsertQueryItem(t *testing.T) {
	t.Run("nil scorer", func(t *testing.T) {
		g := New(nil)
		_, err := g.InsertQueryItem("red jacket")
		assert.ErrorIs(t, err, ErrNilScorer)
	})

	t.Run("empty description", func(t *testing.T) {
		g := New(scorerFunc(func(q, c string) float64 { return 1 }))
		_, err := g.InsertQueryItem("")
		assert.ErrorIs(t, err, ErrEmptyDescription)
		assert.Equal(t, 0, g.Len())
	})

	t.Run("edge to every existing vertex, zero weights included", func(t *testing.T) {
		g := New(scorerFunc(func(q, c string) float64 { return 0 }))
		mustAddVertex(t, g, "a", "A", "black shirt")
		mustAddVertex(t, g, "b", "B", "blue jeans")
		mustAddVertex(t, g, "c", "C", "red jacket")

		q, err := g.InsertQueryItem("red jacket")
		require.NoError(t, err)
		require.NotEmpty(t, q.ID)
		assert.True(t, q.IsQuery())
		assert.Equal(t, "red jacket", q.Description)
		assert.Zero(t, q.Price)

		// Ровно 3 ребра — нулевой вес тоже ребро, порога нет
		assert.Equal(t, 3, q.Degree())
		for _, id := range []string{"a", "b", "c"} {
			w, ok := q.Weight(id)
			require.True(t, ok, "expected edge to %s", id)
			assert.GreaterOrEqual(t, w, 0.0)
		}

		ns, err := g.GetNeighbours(q.ID)
		require.NoError(t, err)
		require.Len(t, ns, 3)
		for i := 1; i < len(ns); i++ {
			prev, _ := ns[i-1].Weight(q.ID)
			cur, _ := ns[i].Weight(q.ID)
			assert.GreaterOrEqual(t, prev, cur)
		}
	})

	t.Run("symmetry against catalog vertices", func(t *testing.T) {
		g := New(scorerFunc(func(q, c string) float64 { return float64(len(c)) }))
		mustAddVertex(t, g, "a", "A", "black shirt")
		mustAddVertex(t, g, "b", "B", "blue jeans")

		q, err := g.InsertQueryItem("red jacket")
		require.NoError(t, err)

		for _, id := range []string{"a", "b"} {
			v, err := g.Vertex(id)
			require.NoError(t, err)
			wq, ok := q.Weight(id)
			require.True(t, ok)
			wv, ok := v.Weight(q.ID)
			require.True(t, ok)
			assert.Equal(t, wq, wv)
		}
	})

	t.Run("direction policy: catalog candidate gets description plus name", func(t *testing.T) {
		var calls []scoredPair
		g := New(scorerFunc(func(q, c string) float64 {
			calls = append(calls, scoredPair{query: q, candidate: c})
			return 1
		}))
		mustAddVertex(t, g, "a", "Jacket", "red jacket")

		q, err := g.InsertQueryItem("warm red jacket")
		require.NoError(t, err)
		require.NotNil(t, q)

		// Запросная вершина без имени: query-сторона — её описание,
		// candidate-сторона — описание каталожной вещи вместе с именем
		require.Len(t, calls, 1)
		assert.Equal(t, "warm red jacket", calls[0].query)
		assert.Equal(t, "red jacketJacket", calls[0].candidate)
	})

	t.Run("second query vertex scores against the first", func(t *testing.T) {
		g := New(scorerFunc(func(q, c string) float64 { return 1 }))
		mustAddVertex(t, g, "a", "A", "black shirt")

		q1, err := g.InsertQueryItem("red jacket")
		require.NoError(t, err)
		q2, err := g.InsertQueryItem("blue dress")
		require.NoError(t, err)

		// Второй запрос видит и каталожную вершину, и первый запрос
		assert.Equal(t, 2, q2.Degree())
		_, ok := q2.Weight(q1.ID)
		assert.True(t, ok)

		// Но не самого себя
		_, ok = q2.Weight(q2.ID)
		assert.False(t, ok)
	})
}
