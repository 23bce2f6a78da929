//go:build unit

package main

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationsDir = "../../migrations"

// atlasSum rebuilds atlas.sum the way `atlas migrate hash` does: one running
// sha256 over each file name and its contents, in lexical order.
func atlasSum(t *testing.T, dir string) string {
	t.Helper()

	names, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, names)
	sort.Strings(names)

	h := sha256.New()
	var lines strings.Builder
	for _, path := range names {
		body, err := os.ReadFile(path)
		require.NoError(t, err)
		name := filepath.Base(path)
		h.Write([]byte(name))
		h.Write(body)
		fmt.Fprintf(&lines, "%s h1:%s\n", name, base64.StdEncoding.EncodeToString(h.Sum(nil)))
	}
	return fmt.Sprintf("h1:%s\n%s", base64.StdEncoding.EncodeToString(h.Sum(nil)), lines.String())
}

func TestAtlasSumMatchesMigrations(t *testing.T) {
	committed, err := os.ReadFile(filepath.Join(migrationsDir, "atlas.sum"))
	require.NoError(t, err)

	assert.Equal(t, atlasSum(t, migrationsDir), string(committed),
		"migrations changed without `atlas migrate hash`")
}

func TestMigrationsKeepDownpaymentUncapped(t *testing.T) {
	body, err := os.ReadFile(filepath.Join(migrationsDir, "20250601000000_initial_schema.sql"))
	require.NoError(t, err)

	assert.NotContains(t, string(body), "downpayment <= total_amount")
	assert.Contains(t, string(body), "room_holds_no_overlap EXCLUDE USING gist")
}
