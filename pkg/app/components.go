// Package app предоставляет переиспользуемые компоненты для инициализации
// матчинга в разных контекстах (CLI, TUI).
//
// Инициализация одна на все утилиты: конфиг → словари → нормализатор →
// scorer → граф → каталог. CLI и TUI отличаются только рендерингом.
package app

import (
	"context"
	"fmt"

	"github.com/ilkoid/stylematch/pkg/catalog"
	"github.com/ilkoid/stylematch/pkg/config"
	"github.com/ilkoid/stylematch/pkg/graph"
	"github.com/ilkoid/stylematch/pkg/similarity"
	"github.com/ilkoid/stylematch/pkg/textnorm"
	"github.com/ilkoid/stylematch/pkg/utils"
	"github.com/ilkoid/stylematch/pkg/vision"
)

// Components содержит все компоненты приложения для переиспользования.
//
// Граф уже наполнен вершинами каталога (без рёбер): рёбра появляются
// при вставке запроса через Graph.InsertQueryItem.
type Components struct {
	Config  *config.AppConfig
	Graph   *graph.Graph
	Records []catalog.Record
	Search  *catalog.SearchService
	Vision  *vision.Client // nil если vision модель не сконфигурирована
}

// Match — одна позиция выдачи похожих вещей.
type Match struct {
	Vertex *graph.Vertex
	Weight float64
}

// Initialize собирает компоненты приложения из конфига.
//
// Порядок:
//  1. Конфиг (yaml + ENV подстановка)
//  2. Встроенные словари и NLP сервисы (prose; WordNet — если указан путь)
//  3. Нормализатор + scorer + пустой граф
//  4. Записи каталога из сконфигурированного источника → вершины графа
//  5. Vision клиент (опционально)
func Initialize(ctx context.Context, cfgPath string) (*Components, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	return InitializeWithConfig(ctx, cfg)
}

// InitializeWithConfig — как Initialize, но с уже загруженным конфигом
// (для тестов и встраивания).
func InitializeWithConfig(ctx context.Context, cfg *config.AppConfig) (*Components, error) {
	vocab, err := textnorm.Default()
	if err != nil {
		return nil, fmt.Errorf("vocabulary init failed: %w", err)
	}

	// Синонимы опциональны: без WordNet нормализатор работает,
	// недоступен только ExpandSynonyms.
	var synonyms textnorm.SynonymLookup
	if cfg.NLP.WordNetDir != "" {
		wn, err := textnorm.NewWordNetLookup(cfg.NLP.WordNetDir)
		if err != nil {
			return nil, fmt.Errorf("wordnet init failed: %w", err)
		}
		synonyms = wn
	}

	norm := textnorm.New(textnorm.ProseTokenizer{}, textnorm.ProseTagger{}, synonyms, vocab)
	scorer := similarity.New(norm, vocab)
	g := graph.New(scorer)

	records, err := catalog.LoadFromConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("catalog load failed: %w", err)
	}

	inserted, err := catalog.Populate(g, records)
	if err != nil {
		return nil, fmt.Errorf("graph population failed: %w", err)
	}
	utils.Info("Catalog loaded", "records", len(records), "vertices", inserted)

	c := &Components{
		Config:  cfg,
		Graph:   g,
		Records: records,
		Search:  catalog.NewSearchService(records),
	}

	if modelDef, ok := cfg.GetVisionModel(""); ok {
		c.Vision = vision.New(modelDef, cfg.ImageProcessing)
	}

	return c, nil
}

// MatchQuery вставляет запросную вершину и возвращает топ-N похожих вещей.
//
// topN <= 0 — вся выдача. Запросные вершины других запросов в выдачу
// не попадают (показываем только каталожные вещи).
func (c *Components) MatchQuery(description string, topN int) ([]Match, error) {
	q, err := c.Graph.InsertQueryItem(description)
	if err != nil {
		return nil, err
	}

	neighbours, err := c.Graph.GetNeighbours(q.ID)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, v := range neighbours {
		if v.IsQuery() {
			continue
		}
		w, _ := v.Weight(q.ID)
		matches = append(matches, Match{Vertex: v, Weight: w})
		if topN > 0 && len(matches) == topN {
			break
		}
	}

	utils.Info("Query matched",
		"query_id", q.ID,
		"catalog_size", len(c.Records),
		"returned", len(matches))

	return matches, nil
}
