package remodel

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FetchSQLRecords reads all rows produced by the query into source Records
// suitable for Generator.Models
//
// DECIMAL/NUMERIC/FLOAT/DOUBLE columns are read as decimal.Decimal and
// JSON/JSONB columns are parsed - so that nested candidate paths can traverse
// them; []byte values for other columns are read as strings
func FetchSQLRecords(ctx context.Context, sqli SqlInterface, query string, args ...any) ([]Record, error) {
	rows, err := sqli.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()
	ci, err := newColumnsInfo(rows)
	if err != nil {
		return nil, err
	}
	reader := ci.reader()
	result := make([]Record, 0)
	for rows.Next() {
		if err = rows.Scan(reader.scanArgs...); err != nil {
			return nil, err
		}
		record := make(Record, ci.count)
		for i, name := range ci.names {
			record[name] = reader.values[i]
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

type columnsInfo struct {
	count   int
	names   []string
	dbTypes []string
}

func newColumnsInfo(rows *sql.Rows) (result *columnsInfo, err error) {
	var cts []*sql.ColumnType
	if cts, err = rows.ColumnTypes(); err == nil {
		count := len(cts)
		result = &columnsInfo{
			count:   count,
			names:   make([]string, count),
			dbTypes: make([]string, count),
		}
		for i, ct := range cts {
			result.names[i] = ct.Name()
			result.dbTypes[i] = ct.DatabaseTypeName()
		}
	}
	return result, err
}

type columnsReader struct {
	values   []any
	scanArgs []any
}

func (ci *columnsInfo) reader() *columnsReader {
	r := &columnsReader{
		values:   make([]any, ci.count),
		scanArgs: make([]any, ci.count),
	}
	for i := 0; i < ci.count; i++ {
		r.scanArgs[i] = ci.buildScanner(r, i)
	}
	return r
}

func (ci *columnsInfo) buildScanner(cr *columnsReader, index int) sql.Scanner {
	switch dbType := ci.dbTypes[index]; {
	case dbType == "JSON" || dbType == "JSONB":
		return &jsonColumnScanner{
			columns: cr,
			index:   index,
		}
	case dbType == "DECIMAL" || dbType == "NUMERIC" || dbType == "DOUBLE" || strings.HasPrefix(dbType, "FLOAT"):
		return &decimalColumnScanner{
			columns: cr,
			index:   index,
		}
	}
	return &rawColumnScanner{
		columns: cr,
		index:   index,
	}
}

type rawColumnScanner struct {
	columns *columnsReader
	index   int
}

func (c *rawColumnScanner) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		c.columns.values[c.index] = string(v)
	default:
		c.columns.values[c.index] = v
	}
	return nil
}

type decimalColumnScanner struct {
	columns *columnsReader
	index   int
}

func (c *decimalColumnScanner) Scan(src any) error {
	var err error
	switch v := src.(type) {
	case float32:
		c.columns.values[c.index] = decimal.NewFromFloat(float64(v))
	case float64:
		c.columns.values[c.index] = decimal.NewFromFloat(v)
	case int64:
		c.columns.values[c.index] = decimal.New(v, 0)
	case []byte:
		c.columns.values[c.index], err = decimal.NewFromString(strings.Trim(string(v), `"`))
	case string:
		c.columns.values[c.index], err = decimal.NewFromString(strings.Trim(v, `"`))
	default:
		c.columns.values[c.index] = src
	}
	return err
}

type jsonColumnScanner struct {
	columns *columnsReader
	index   int
}

func (c *jsonColumnScanner) Scan(src any) error {
	var err error
	switch data := src.(type) {
	case []byte:
		var v any
		if err = json.Unmarshal(data, &v); err == nil {
			c.columns.values[c.index] = v
		}
	case string:
		var v any
		if err = json.Unmarshal([]byte(data), &v); err == nil {
			c.columns.values[c.index] = v
		}
	default:
		c.columns.values[c.index] = src
	}
	return err
}
