package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/config"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	root := NewRootCommand()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, err := runCommand(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized fintrack project")

	for _, d := range []string{"inbox", filepath.Join("inbox", "processed"), "ledger", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "NPR", cfg.Currency)
}

func TestInit_CurrencyFlag(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "init", dir, "--currency", "INR")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "INR", cfg.Currency)
}

func TestClassify_PrintsTransactions(t *testing.T) {
	out, err := runCommand(t, "classify", "../../testdata/sms_inbox.csv", "--dir", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, out, "4 of 7 messages classified as transactions")
	assert.Contains(t, out, "Debit")
	assert.Contains(t, out, "Recharge")
	assert.Contains(t, out, "NPR 1250.00")
	assert.Contains(t, out, "Wallet Load")
}

func TestClassify_UnknownFormat(t *testing.T) {
	_, err := runCommand(t, "classify", "messages.xml", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dump format")
}

func TestImportAndReport(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "init", dir)
	require.NoError(t, err)

	// Drop the sample dump into the inbox.
	data, err := os.ReadFile("../../testdata/sms_inbox.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inbox", "sms_inbox.csv"), data, 0o644))

	out, err := runCommand(t, "import", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "sms_inbox.csv: 4 transactions, 3 rejected")

	// The dump was moved out of the inbox.
	_, err = os.Stat(filepath.Join(dir, "inbox", "processed", "sms_inbox.csv"))
	require.NoError(t, err)

	// Sample timestamps fall in December 2024.
	_, err = os.Stat(filepath.Join(dir, "ledger", "2024", "12", "transactions.csv"))
	require.NoError(t, err)

	// Rejections were logged.
	_, err = os.Stat(filepath.Join(dir, "logs", "rejections.csv"))
	require.NoError(t, err)

	out, err = runCommand(t, "report", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "spent NPR 2049.00")
	assert.Contains(t, out, "credited NPR 2000.00")
}

func TestImport_EmptyInbox(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "init", dir)
	require.NoError(t, err)

	out, err := runCommand(t, "import", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to import")
}

func TestReport_KindFilter(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "init", dir)
	require.NoError(t, err)

	data, err := os.ReadFile("../../testdata/sms_inbox.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inbox", "sms_inbox.csv"), data, 0o644))
	_, err = runCommand(t, "import", dir)
	require.NoError(t, err)

	out, err := runCommand(t, "report", dir, "--kind", "Credit")
	require.NoError(t, err)
	assert.Contains(t, out, "spent NPR 0.00, credited NPR 2000.00")

	_, err = runCommand(t, "report", dir, "--kind", "Refund")
	require.Error(t, err)
}

func TestReport_List(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "init", dir)
	require.NoError(t, err)

	data, err := os.ReadFile("../../testdata/sms_inbox.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inbox", "sms_inbox.csv"), data, 0o644))
	_, err = runCommand(t, "import", dir)
	require.NoError(t, err)

	out, err := runCommand(t, "report", dir, "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-12-24")
	assert.Contains(t, out, "Mobile Recharge")
}
