package migrations

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrationName = regexp.MustCompile(`^(\d{6})_[a-z_]+\.(up|down)\.sql$`)

func TestEmbeddedMigrations_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(files, "sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, entry := range entries {
		match := migrationName.FindStringSubmatch(entry.Name())
		require.NotNil(t, match, "unexpected migration file %s", entry.Name())

		if match[2] == "up" {
			ups[match[1]] = true
		} else {
			downs[match[1]] = true
		}
	}

	assert.Equal(t, ups, downs)
}

func TestEmbeddedMigrations_DevicesHaveNoUniqueName(t *testing.T) {
	raw, err := fs.ReadFile(files, "sql/000001_create_people_table.up.sql")
	require.NoError(t, err)

	schema := string(raw)
	start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS devices")
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(schema[start:], ");")
	devices := schema[start : start+end]

	assert.NotContains(t, devices, "UNIQUE")
	assert.Contains(t, schema, "UNIQUE (people_id, device_id)")
}
