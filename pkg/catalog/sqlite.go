package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // Регистрируем sqlite3 драйвер
)

// SQLiteSource — загрузка записей каталога из таблицы sqlite.
//
// Структура таблицы (пример SQL):
//
//	CREATE TABLE items (
//	    id          TEXT PRIMARY KEY,
//	    name        TEXT,
//	    description TEXT,
//	    price       REAL,
//	    image_urls  TEXT,  -- строковый литерал списка, как в CSV
//	    source_link TEXT
//	);
type SQLiteSource struct {
	db    *sql.DB
	table string
}

// NewSQLiteSource создаёт источник поверх открытого соединения.
//
// table по умолчанию — "items".
func NewSQLiteSource(db *sql.DB, table string) *SQLiteSource {
	if table == "" {
		table = "items"
	}
	return &SQLiteSource{
		db:    db,
		table: table,
	}
}

// OpenSQLite открывает файл базы и возвращает источник.
func OpenSQLite(path, table string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	return NewSQLiteSource(db, table), nil
}

// Close закрывает соединение с базой.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Records читает все записи каталога из таблицы.
//
// image_urls хранится тем же строковым литералом, что и в CSV,
// и разбирается через ParseURLList.
func (s *SQLiteSource) Records(ctx context.Context) ([]Record, error) {
	query := fmt.Sprintf(
		"SELECT id, name, description, price, image_urls, source_link FROM %s",
		s.table,
	)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec  Record
			urls sql.NullString
			link sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Price, &urls, &link); err != nil {
			return nil, fmt.Errorf("row scan failed: %w", err)
		}
		rec.ImageURLs = ParseURLList(urls.String)
		rec.SourceLink = link.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return records, nil
}
