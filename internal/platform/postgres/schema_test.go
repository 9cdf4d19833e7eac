package postgres

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitip/unitip-api/migrations"
)

// The offer store and the embedded migrations describe the same tables
// independently, so drift between them only surfaces at runtime as an
// undefined_column error. These tests pin the contract: every column
// the store names must be declared by the migration that creates the
// table.

var identifierRe = regexp.MustCompile(`^[a-z_]+$`)

// migratedColumns parses the embedded CREATE TABLE statement for the
// given table and returns its declared column names.
func migratedColumns(t *testing.T, table string) map[string]bool {
	t.Helper()

	var ddl string
	err := fs.WalkDir(migrations.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		raw, readErr := fs.ReadFile(migrations.FS, path)
		if readErr != nil {
			return readErr
		}
		if strings.Contains(string(raw), "CREATE TABLE "+table+" (") {
			ddl = string(raw)
		}
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, ddl, "no embedded migration creates table %q", table)

	body := ddl[strings.Index(ddl, "CREATE TABLE "+table+" ("):]
	body = body[:strings.Index(body, ");")]

	columns := make(map[string]bool)
	for _, line := range strings.Split(body, "\n")[1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		first := strings.TrimRight(fields[0], ",")
		if identifierRe.MatchString(first) {
			columns[first] = true
		}
	}
	return columns
}

// insertColumns returns the column list of an INSERT statement.
func insertColumns(t *testing.T, query string) []string {
	t.Helper()

	open := strings.Index(query, "(")
	closing := strings.Index(query, ")")
	require.True(t, open >= 0 && closing > open, "no column list in query")

	var columns []string
	for _, col := range strings.Split(query[open+1:closing], ",") {
		columns = append(columns, strings.TrimSpace(col))
	}
	return columns
}

// aliasedColumns returns every column referenced through the given
// table alias in a SELECT statement.
func aliasedColumns(query, alias string) []string {
	re := regexp.MustCompile(regexp.QuoteMeta(alias) + `\.([a-z_]+)`)
	var columns []string
	for _, m := range re.FindAllStringSubmatch(query, -1) {
		columns = append(columns, m[1])
	}
	return columns
}

func TestSingleOffersQueriesMatchMigratedSchema(t *testing.T) {
	t.Parallel()

	declared := migratedColumns(t, "single_offers")

	for _, col := range insertColumns(t, insertSingleOffer) {
		assert.True(t, declared[col],
			"insertSingleOffer names column %q, not declared by the single_offers migration", col)
	}
	for _, col := range aliasedColumns(selectSingleOffers, "so") {
		assert.True(t, declared[col],
			"selectSingleOffers reads column %q, not declared by the single_offers migration", col)
	}
}

func TestMultiOffersQueriesMatchMigratedSchema(t *testing.T) {
	t.Parallel()

	declared := migratedColumns(t, "multi_offers")

	for _, col := range insertColumns(t, insertMultiOffer) {
		assert.True(t, declared[col],
			"insertMultiOffer names column %q, not declared by the multi_offers migration", col)
	}
	for _, col := range aliasedColumns(selectMultiOffers, "mo") {
		assert.True(t, declared[col],
			"selectMultiOffers reads column %q, not declared by the multi_offers migration", col)
	}
}
