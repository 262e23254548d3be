package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilkoid/stylematch/pkg/config"
)

const testCatalogCSV = `brand,url,id,name,description,price,currency,image_downloads
Zara,https://zara.com/a,a,Bomber Jacket,black bomber jacket with zip closure,49.90,USD,[]
Zara,https://zara.com/b,b,Midi Dress,red midi dress with short sleeves,35.50,USD,[]
Zara,https://zara.com/c,c,Slim Jeans,blue slim fit jeans,29.00,USD,[]
`

func initTestComponents(t *testing.T) *Components {
	t.Helper()

	catalogPath := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalogCSV), 0644))

	cfg := &config.AppConfig{}
	cfg.Catalog.Source = "csv"
	cfg.Catalog.Path = catalogPath

	c, err := InitializeWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	return c
}

func TestInitializeWithConfig(t *testing.T) {
	c := initTestComponents(t)

	assert.Equal(t, 3, c.Graph.Len())
	assert.Len(t, c.Records, 3)
	assert.NotNil(t, c.Search)
	// Vision не сконфигурирован
	assert.Nil(t, c.Vision)
}

func TestMatchQuery(t *testing.T) {
	c := initTestComponents(t)

	matches, err := c.MatchQuery("red jacket", 0)
	require.NoError(t, err)

	// Ребро к каждой из трёх каталожных вершин, веса неотрицательные,
	// порядок невозрастающий
	require.Len(t, matches, 3)
	for i, m := range matches {
		assert.GreaterOrEqual(t, m.Weight, 0.0)
		if i > 0 {
			assert.GreaterOrEqual(t, matches[i-1].Weight, m.Weight)
		}
		assert.False(t, m.Vertex.IsQuery())
	}

	// Запрос "red jacket" должен поднять куртку и платье выше джинсов
	assert.NotEqual(t, "c", matches[0].Vertex.ID)
}

func TestMatchQueryTopN(t *testing.T) {
	c := initTestComponents(t)

	matches, err := c.MatchQuery("blue jeans", 2)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestMatchQueryHidesPreviousQueries(t *testing.T) {
	c := initTestComponents(t)

	_, err := c.MatchQuery("red jacket", 0)
	require.NoError(t, err)

	// Второй запрос не должен видеть запросную вершину первого
	matches, err := c.MatchQuery("blue jeans", 0)
	require.NoError(t, err)
	assert.Len(t, matches, 3)
	for _, m := range matches {
		assert.False(t, m.Vertex.IsQuery())
	}
}
