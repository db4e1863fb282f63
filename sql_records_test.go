package remodel

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFetchSQLRecords(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	mock.ExpectQuery("").WillReturnRows(sqlmock.NewRows([]string{"name", "location"}).
		AddRow("first", "http://a.com").
		AddRow("second", "http://b.com"))

	records, err := FetchSQLRecords(ctx, db, `SELECT name, location FROM bookmarks`)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, Record{"name": "first", "location": "http://a.com"}, records[0])
	require.Equal(t, Record{"name": "second", "location": "http://b.com"}, records[1])
}

func TestFetchSQLRecords_ByteColumnsReadAsStrings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	mock.ExpectQuery("").WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow([]byte("raw bytes")))

	records, err := FetchSQLRecords(ctx, db, `SELECT name FROM bookmarks`)
	require.NoError(t, err)
	require.Equal(t, "raw bytes", records[0]["name"])
}

func TestFetchSQLRecords_DecimalColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	rows := sqlmock.NewRowsWithColumnDefinition(
		sqlmock.NewColumn("rating").OfType("DECIMAL", []byte("0")),
	).AddRow([]byte("4.75"))
	mock.ExpectQuery("").WillReturnRows(rows)

	records, err := FetchSQLRecords(ctx, db, `SELECT rating FROM bookmarks`)
	require.NoError(t, err)
	dec, ok := records[0]["rating"].(decimal.Decimal)
	require.True(t, ok)
	require.True(t, dec.Equal(decimal.RequireFromString("4.75")))
}

func TestFetchSQLRecords_BadDecimalErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	rows := sqlmock.NewRowsWithColumnDefinition(
		sqlmock.NewColumn("rating").OfType("DECIMAL", []byte("0")),
	).AddRow([]byte("not a number"))
	mock.ExpectQuery("").WillReturnRows(rows)

	_, err = FetchSQLRecords(ctx, db, `SELECT rating FROM bookmarks`)
	require.Error(t, err)
}

func TestFetchSQLRecords_JsonColumnsTraversable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	rows := sqlmock.NewRowsWithColumnDefinition(
		sqlmock.NewColumn("createdBy").OfType("JSON", []byte("{}")),
	).AddRow([]byte(`{"name":"jo"}`))
	mock.ExpectQuery("").WillReturnRows(rows)

	records, err := FetchSQLRecords(ctx, db, `SELECT createdBy FROM bookmarks`)
	require.NoError(t, err)

	// parsed json is traversable by nested candidate paths
	models, err := GenerateBookmarks(records, nil)
	require.NoError(t, err)
	require.Equal(t, "jo", models[0]["author"])
}

func TestFetchSQLRecords_BadJsonErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	rows := sqlmock.NewRowsWithColumnDefinition(
		sqlmock.NewColumn("createdBy").OfType("JSON", []byte("{}")),
	).AddRow([]byte(`{not json`))
	mock.ExpectQuery("").WillReturnRows(rows)

	_, err = FetchSQLRecords(ctx, db, `SELECT createdBy FROM bookmarks`)
	require.Error(t, err)
}

func TestFetchSQLRecords_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	mock.ExpectQuery("").WillReturnError(errors.New("foo"))

	_, err = FetchSQLRecords(ctx, db, `SELECT name FROM bookmarks`)
	require.Error(t, err)
	require.Equal(t, "foo", err.Error())
}
