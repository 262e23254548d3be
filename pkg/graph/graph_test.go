package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddVertex(t *testing.T, g *Graph, id, name, description string) {
	t.Helper()
	require.NoError(t, g.AddVertex(id, name, description, 0, nil, ""))
}

func TestAddVertex(t *testing.T) {
	t.Run("rejects empty description", func(t *testing.T) {
		g := New(nil)
		err := g.AddVertex("a", "Jacket", "", 10, nil, "")
		assert.ErrorIs(t, err, ErrEmptyDescription)
		assert.False(t, g.HasVertex("a"))
		assert.Equal(t, 0, g.Len())
	})

	t.Run("re-insertion with same id is a no-op", func(t *testing.T) {
		g := New(nil)
		mustAddVertex(t, g, "a", "Jacket", "red jacket")
		require.NoError(t, g.AddVertex("a", "Other", "other description", 99, nil, "link"))

		v, err := g.Vertex("a")
		require.NoError(t, err)
		assert.Equal(t, "Jacket", v.Name)
		assert.Equal(t, "red jacket", v.Description)
		assert.Equal(t, 1, g.Len())
	})

	t.Run("vertex ids keep insertion order", func(t *testing.T) {
		g := New(nil)
		mustAddVertex(t, g, "c", "C", "c desc")
		mustAddVertex(t, g, "a", "A", "a desc")
		mustAddVertex(t, g, "b", "B", "b desc")
		assert.Equal(t, []string{"c", "a", "b"}, g.VertexIDs())
	})
}

func TestAddEdge(t *testing.T) {
	t.Run("weight is symmetric", func(t *testing.T) {
		g := New(nil)
		mustAddVertex(t, g, "a", "A", "a desc")
		mustAddVertex(t, g, "b", "B", "b desc")
		require.NoError(t, g.AddEdge("a", "b", 2.5))

		va, _ := g.Vertex("a")
		vb, _ := g.Vertex("b")
		wa, ok := va.Weight("b")
		require.True(t, ok)
		wb, ok := vb.Weight("a")
		require.True(t, ok)
		assert.Equal(t, wa, wb)
		assert.Equal(t, 2.5, wa)
	})

	t.Run("self-edge is rejected", func(t *testing.T) {
		g := New(nil)
		mustAddVertex(t, g, "a", "A", "a desc")
		err := g.AddEdge("a", "a", 1)
		assert.ErrorIs(t, err, ErrSelfEdge)

		v, _ := g.Vertex("a")
		assert.Equal(t, 0, v.Degree())
	})

	t.Run("unknown id fails without mutation", func(t *testing.T) {
		g := New(nil)
		mustAddVertex(t, g, "a", "A", "a desc")

		err := g.AddEdge("a", "missing", 1)
		assert.ErrorIs(t, err, ErrVertexNotFound)
		err = g.AddEdge("missing", "a", 1)
		assert.ErrorIs(t, err, ErrVertexNotFound)

		v, _ := g.Vertex("a")
		assert.Equal(t, 0, v.Degree())
	})

	t.Run("overwrite keeps only the latest weight on both sides", func(t *testing.T) {
		g := New(nil)
		mustAddVertex(t, g, "a", "A", "a desc")
		mustAddVertex(t, g, "b", "B", "b desc")
		require.NoError(t, g.AddEdge("a", "b", 1))
		require.NoError(t, g.AddEdge("a", "b", 7))

		w, ok, err := g.Weight("a", "b")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 7.0, w)

		w, ok, err = g.Weight("b", "a")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 7.0, w)

		va, _ := g.Vertex("a")
		assert.Equal(t, 1, va.Degree())
	})
}

func TestGetNeighbours(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		g := New(nil)
		_, err := g.GetNeighbours("missing")
		assert.ErrorIs(t, err, ErrVertexNotFound)
	})

	t.Run("sorted by decreasing weight", func(t *testing.T) {
		g := New(nil)
		mustAddVertex(t, g, "q", "Q", "q desc")
		mustAddVertex(t, g, "a", "A", "a desc")
		mustAddVertex(t, g, "b", "B", "b desc")
		mustAddVertex(t, g, "c", "C", "c desc")
		require.NoError(t, g.AddEdge("q", "a", 0.5))
		require.NoError(t, g.AddEdge("q", "b", 3))
		require.NoError(t, g.AddEdge("q", "c", 1.25))

		ns, err := g.GetNeighbours("q")
		require.NoError(t, err)
		require.Len(t, ns, 3)
		for i := 1; i < len(ns); i++ {
			prev, _ := ns[i-1].Weight("q")
			cur, _ := ns[i].Weight("q")
			assert.GreaterOrEqual(t, prev, cur)
		}
		assert.Equal(t, "b", ns[0].ID)
		assert.Equal(t, "c", ns[1].ID)
		assert.Equal(t, "a", ns[2].ID)
	})

	t.Run("ties keep neighbour insertion order", func(t *testing.T) {
		g := New(nil)
		mustAddVertex(t, g, "q", "Q", "q desc")
		mustAddVertex(t, g, "a", "A", "a desc")
		mustAddVertex(t, g, "b", "B", "b desc")
		mustAddVertex(t, g, "c", "C", "c desc")
		require.NoError(t, g.AddEdge("q", "b", 1))
		require.NoError(t, g.AddEdge("q", "a", 1))
		require.NoError(t, g.AddEdge("q", "c", 2))

		ns, err := g.GetNeighbours("q")
		require.NoError(t, err)
		require.Len(t, ns, 3)
		assert.Equal(t, "c", ns[0].ID)
		// При равных весах — порядок вставки соседей (b раньше a)
		assert.Equal(t, "b", ns[1].ID)
		assert.Equal(t, "a", ns[2].ID)
	})

	t.Run("vertex is never its own neighbour", func(t *testing.T) {
		g := New(nil)
		mustAddVertex(t, g, "a", "A", "a desc")
		mustAddVertex(t, g, "b", "B", "b desc")
		require.NoError(t, g.AddEdge("a", "b", 1))

		ns, err := g.GetNeighbours("a")
		require.NoError(t, err)
		for _, v := range ns {
			assert.NotEqual(t, "a", v.ID)
		}
	})
}
