package catalog

import (
	"context"
	"fmt"

	"github.com/ilkoid/stylematch/pkg/config"
	"github.com/ilkoid/stylematch/pkg/graph"
)

// Populate вставляет записи каталога в граф как вершины без рёбер.
//
// Повторные id пропускаются графом молча (AddVertex идемпотентен),
// запись с пустым описанием — ошибка с id записи.
// Возвращает количество обработанных записей.
func Populate(g *graph.Graph, records []Record) (int, error) {
	for i, rec := range records {
		err := g.AddVertex(rec.ID, rec.Name, rec.Description, rec.Price, rec.ImageURLs, rec.SourceLink)
		if err != nil {
			return i, fmt.Errorf("record %q: %w", rec.ID, err)
		}
	}
	return len(records), nil
}

// LoadFromConfig читает записи из источника, указанного в конфиге.
//
// Поддерживаются источники csv (локальный файл), s3 (объект в бакете)
// и sqlite (таблица в файле базы).
func LoadFromConfig(ctx context.Context, cfg *config.AppConfig) ([]Record, error) {
	catalog := cfg.Catalog.GetDefaults()

	switch catalog.Source {
	case "csv":
		return ReadCSVFile(catalog.Path)

	case "s3":
		src, err := NewS3Source(cfg.S3, catalog.Key)
		if err != nil {
			return nil, fmt.Errorf("s3 source init failed: %w", err)
		}
		return src.Records(ctx)

	case "sqlite":
		src, err := OpenSQLite(catalog.Path, catalog.Table)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return src.Records(ctx)

	default:
		// Конфиг валидируется при загрузке, сюда попадать не должны
		return nil, fmt.Errorf("unknown catalog source '%s'", catalog.Source)
	}
}
