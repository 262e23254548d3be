package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Колонки CSV датасета (раскладка Zara-скрейпа):
// brand(0), website(1), id(2), name(3), description(4), price(5), _, urls(7).
const (
	colBrand       = 0
	colWebsite     = 1
	colID          = 2
	colName        = 3
	colDescription = 4
	colPrice       = 5
	colURLs        = 7

	minColumns = 8
)

// ReadCSV читает записи каталога из CSV потока.
//
// Строки-заголовки распознаются по значению "brand" в первой колонке
// и пропускаются (заголовок может повторяться при склейке файлов).
// Слишком короткая строка или нечисловая цена — ошибка с номером строки.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	// Строки датасета имеют разную длину хвоста
	reader.FieldsPerRecord = -1

	var records []Record
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("csv read failed at line %d: %w", line, err)
		}

		// Пропускаем заголовки
		if row[colBrand] == "brand" {
			continue
		}

		if len(row) < minColumns {
			return nil, fmt.Errorf("csv line %d: expected at least %d columns, got %d", line, minColumns, len(row))
		}

		price, err := strconv.ParseFloat(row[colPrice], 64)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: bad price %q: %w", line, row[colPrice], err)
		}

		records = append(records, Record{
			ID:          row[colID],
			Name:        row[colName],
			Description: row[colDescription],
			Price:       price,
			ImageURLs:   ParseURLList(row[colURLs]),
			SourceLink:  row[colWebsite],
		})
	}

	return records, nil
}

// ReadCSVFile читает записи каталога из локального CSV файла.
func ReadCSVFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return records, nil
}
