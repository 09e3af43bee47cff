package cli_test

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ryanpate/invoice-generator-pro/internal/adapters/inbound/cli"
)

const companyYAML = `name: Pinnacle Studio
address: "88 Harbor Way\nPortland, OR"
email: billing@pinnacle.example
phone: 555-0142
default_notes: Payment due within terms.
template: corporate_blue
`

const batchCSV = `client_name,client_email,item_description,quantity,rate,tax_rate
ClientX,x@example.com,Design work,2,100,0
ClientX,x@example.com,Hosting,1,50,0
ClientY,y@example.com,Consulting,5,80,0
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "invoicer")
}

func TestBatchCmd_CSVEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	company := writeFile(t, tmpDir, "company.yaml", companyYAML)
	input := writeFile(t, tmpDir, "batch.csv", batchCSV)
	dest := filepath.Join(tmpDir, "invoices.zip")

	out, err := runCmd(t, "batch", "--file", input, "--company", company, "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "2 invoices generated")
	assert.Contains(t, out, "Wrote 2 invoices to "+dest)
	assert.Contains(t, out, "ClientX")
	assert.Contains(t, out, "250.00")
	assert.Contains(t, out, "400.00")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.True(t, strings.HasSuffix(zr.File[0].Name, "_ClientX.pdf"))
	assert.True(t, strings.HasSuffix(zr.File[1].Name, "_ClientY.pdf"))
}

func TestBatchCmd_XLSXInput(t *testing.T) {
	tmpDir := t.TempDir()
	company := writeFile(t, tmpDir, "company.yaml", companyYAML)
	dest := filepath.Join(tmpDir, "invoices.zip")

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	rows := [][]interface{}{
		{"client_name", "client_email", "item_description", "quantity", "rate"},
		{"ClientX", "x@example.com", "Design work", "2", "100"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}
	input := filepath.Join(tmpDir, "batch.xlsx")
	require.NoError(t, wb.SaveAs(input))

	out, err := runCmd(t, "batch", "--file", input, "--company", company, "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "1 invoices generated")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
}

func TestBatchCmd_NumberingContinuesAcrossRuns(t *testing.T) {
	tmpDir := t.TempDir()
	company := writeFile(t, tmpDir, "company.yaml", companyYAML)
	input := writeFile(t, tmpDir, "batch.csv", batchCSV)

	_, err := runCmd(t, "batch", "--file", input, "--company", company,
		"--out", filepath.Join(tmpDir, "first.zip"))
	require.NoError(t, err)

	second := filepath.Join(tmpDir, "second.zip")
	_, err = runCmd(t, "batch", "--file", input, "--company", company, "--out", second)
	require.NoError(t, err)

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Contains(t, zr.File[0].Name, "-003_")
	assert.Contains(t, zr.File[1].Name, "-004_")
}

func TestBatchCmd_MissingColumns(t *testing.T) {
	tmpDir := t.TempDir()
	company := writeFile(t, tmpDir, "company.yaml", companyYAML)
	input := writeFile(t, tmpDir, "bad.csv", "client_name,quantity\nClientX,2\n")

	_, err := runCmd(t, "batch", "--file", input, "--company", company)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input table")
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestBatchCmd_UnknownTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	company := writeFile(t, tmpDir, "company.yaml", companyYAML)
	input := writeFile(t, tmpDir, "batch.csv", batchCSV)

	_, err := runCmd(t, "batch", "--file", input, "--company", company, "--template", "neon_disco")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neon_disco")
}

func TestGenerateCmd_EndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	company := writeFile(t, tmpDir, "company.yaml", companyYAML)
	request := writeFile(t, tmpDir, "request.yaml", `invoice_number: INV-20260115-001
invoice_date: "2026-01-15"
tax_rate: "8.5"
client:
  name: Acme Corp
  email: billing@acme.example
items:
  - description: Website redesign
    quantity: "1"
    rate: "1500"
`)
	dest := filepath.Join(tmpDir, "invoice.pdf")

	out, err := runCmd(t, "generate", "--file", request, "--company", company, "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated "+dest)
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "1627.50")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerateCmd_MissingClientName(t *testing.T) {
	tmpDir := t.TempDir()
	company := writeFile(t, tmpDir, "company.yaml", companyYAML)
	request := writeFile(t, tmpDir, "request.yaml", `items:
  - description: Consulting
    quantity: "1"
    rate: "100"
`)

	_, err := runCmd(t, "generate", "--file", request, "--company", company)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client_name")
}

func TestSampleCmd(t *testing.T) {
	tmpDir := t.TempDir()
	dest := filepath.Join(tmpDir, "sample.csv")

	out, err := runCmd(t, "sample", "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+dest)

	// The sample must round-trip through the batch pipeline.
	company := writeFile(t, tmpDir, "company.yaml", companyYAML)
	zipDest := filepath.Join(tmpDir, "invoices.zip")
	out, err = runCmd(t, "batch", "--file", dest, "--company", company, "--out", zipDest)
	require.NoError(t, err)
	assert.Contains(t, out, "3 invoices generated")
}

func TestSampleCmd_Stdout(t *testing.T) {
	out, err := runCmd(t, "sample", "--out", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "client_name,client_email")
}
