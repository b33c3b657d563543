package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI once against a ledger directory, the way a user
// session would: a fresh command tree per invocation, shared state only
// through the persisted documents.
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append(args, "--dir", dir))
	require.NoError(t, cmd.Execute(), "command %v\noutput: %s", args, buf.String())
	return buf.String()
}

func initLedger(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	run(t, dir, "init", dir, "--name", "Sawasdee Tours")
	return dir
}

func TestInit_WritesConfig(t *testing.T) {
	dir := initLedger(t)

	_, err := os.Stat(filepath.Join(dir, "tourledger.yaml"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "data"))
	require.NoError(t, err)
}

func TestAddListFlow_RunningBalances(t *testing.T) {
	dir := initLedger(t)

	run(t, dir, "add", "--date", "2025-01-05", "--client", "Kim",
		"--event", "Summer Trip", "--krw-in", "1000")
	run(t, dir, "add", "--date", "2025-01-10", "--client", "Kim",
		"--event", "Summer Trip", "--krw-out", "300")

	out := run(t, dir, "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header plus two rows")
	// Newest first, carrying the chronological running balance.
	assert.Contains(t, lines[1], "2025-01-10")
	assert.Contains(t, lines[1], "700")
	assert.Contains(t, lines[2], "2025-01-05")
	assert.Contains(t, lines[2], "1000")
}

func TestAdd_EightDigitDateNormalized(t *testing.T) {
	dir := initLedger(t)

	out := run(t, dir, "add", "--date", "20260202", "--client", "Kim", "--event", "Summer Trip")
	assert.Contains(t, out, "2026-02-02")

	events := run(t, dir, "events")
	assert.Contains(t, events, "2026-02::summer trip")
}

func TestSettleFlow(t *testing.T) {
	dir := initLedger(t)
	run(t, dir, "add", "--date", "2026-02-02", "--client", "Kim",
		"--event", "Summer Trip", "--krw-in", "40000", "--bb-in", "100")

	key := "2026-02::summer trip"
	run(t, dir, "settle", "set", key, "rate-income", "0.025")

	out := run(t, dir, "settle", "show", key)
	assert.Contains(t, out, "1000", "auto-calculated Baht fixed price: 40000 * 0.025")
	assert.Contains(t, out, "profit")
}

func TestProfitFlow(t *testing.T) {
	dir := initLedger(t)
	run(t, dir, "add", "--date", "2026-02-02", "--client", "Kim",
		"--event", "Summer Trip", "--bb-in", "3000")
	run(t, dir, "add", "--date", "2026-02-10", "--client", "Lee",
		"--event", "Island Tour", "--bb-out", "500")

	expOut := run(t, dir, "profit", "expense", "add")
	expenseID := strings.TrimSpace(strings.TrimPrefix(expOut, "Added expense "))
	run(t, dir, "profit", "expense", "set", expenseID, "--label", "rent", "--amount", "200")

	out := run(t, dir, "profit", "show")
	assert.Contains(t, out, "income 2500")
	assert.Contains(t, out, "expense 200")
	assert.Contains(t, out, "profit 2300")
}

func TestExportLedger_HasBOM(t *testing.T) {
	dir := initLedger(t)
	run(t, dir, "add", "--date", "2026-02-02", "--client", "Kim", "--event", "Summer Trip")

	path := filepath.Join(dir, "ledger.csv")
	run(t, dir, "export", "ledger", "-o", path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("\uFEFF")))
	assert.Contains(t, string(body), "2026-02-02")
}

func TestClear_RequiresConfirmation(t *testing.T) {
	dir := initLedger(t)
	run(t, dir, "add", "--date", "2026-02-02", "--client", "Kim", "--event", "Summer Trip")

	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"clear", "--dir", dir})
	require.Error(t, cmd.Execute())

	run(t, dir, "clear", "--yes")
	out := run(t, dir, "list")
	assert.NotContains(t, out, "2026-02-02")
}

func TestSQLiteBackend_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "init", dir, "--backend", "sqlite")

	run(t, dir, "add", "--date", "2026-02-02", "--client", "Kim",
		"--event", "Summer Trip", "--bb-in", "100")
	out := run(t, dir, "list")
	assert.Contains(t, out, "2026-02-02")
}
