package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fatture-dev/fatture/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

const goodHeader = "Cliente;N. Fattura;Data Fatt.;Importo Fatt. (€);Importo Pagato (€);Saldo (€);Stato;Data Saldo"

func TestRead_Semicolon(t *testing.T) {
	input := goodHeader + "\n" +
		"Rossi;2024-001;15/03/2024;1.500,75;500,25;;;\n" +
		"Bianchi;2024-002;20/03/2024;€ 800,00;800,00;0;Pagata;25/03/2024\n"

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Rossi", records[0].Client)
	assert.True(t, records[0].Billed.Equal(dec("1500.75")), "got %s", records[0].Billed)
	assert.True(t, records[0].Paid.Equal(dec("500.25")))

	assert.True(t, records[1].Billed.Equal(dec("800")))
	assert.Equal(t, model.StatusPaid, records[1].Status)
	assert.Equal(t, "25/03/2024", records[1].SettlementDate)
}

func TestRead_CommaFallback(t *testing.T) {
	input := strings.ReplaceAll(goodHeader, ";", ",") + "\n" +
		"Rossi,2024-001,15/03/2024,1500.75,500.25,,,\n"

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Billed.Equal(dec("1500.75")))
}

func TestRead_RepairsMojibakeHeaders(t *testing.T) {
	// A cp1252 re-encode of the euro sign plus a leading BOM artifact.
	input := "ï»¿Cliente;N. Fattura;Data Fatt.;Importo Fatt. (â¬);Importo Pagato (â¬);Saldo (ð);Stato;Data Saldo\n" +
		"Rossi;1;01/01/2024;100,00;0;;;\n"

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Billed.Equal(dec("100")), "euro column must match after repair, got billed=%s", records[0].Billed)
}

func TestRead_MissingColumns(t *testing.T) {
	input := "Cliente;N. Fattura;Importo Fatt. (€)\nRossi;1;100\n"

	_, err := Read(strings.NewReader(input))
	require.Error(t, err)

	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Contains(t, missing.Columns, model.ColInvoiceDate)
	assert.Contains(t, missing.Columns, model.ColPaid)
	assert.Contains(t, missing.Columns, model.ColBalance)
	assert.NotContains(t, missing.Columns, model.ColClient)
}

func TestRead_NoClientColumn(t *testing.T) {
	_, err := Read(strings.NewReader("foo;bar;baz\n1;2;3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cliente")
}

func TestRead_ShortRows(t *testing.T) {
	input := goodHeader + "\nRossi;1\n"

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Rossi", records[0].Client)
	assert.True(t, records[0].Billed.IsZero())
}

func TestReadFile_LegacyExport(t *testing.T) {
	records, err := ReadFile("testdata/export_legacy.csv")
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "Rossi SRL", records[0].Client)
	assert.True(t, records[0].Billed.Equal(dec("2500")), "got %s", records[0].Billed)
	assert.Equal(t, model.StatusPaid, records[0].Status)
	assert.Equal(t, "15/02/2023", records[0].SettlementDate)

	assert.True(t, records[1].Balance.Equal(dec("600.50")))
	assert.Equal(t, "nan", records[3].SettlementDate, "raw marker survives import; derivation handles it")
}

func TestCleanHeader(t *testing.T) {
	got := CleanHeader([]string{"ï»¿Cliente ", "Importo Fatt. (â¬)", " Stato"})
	assert.Equal(t, []string{"Cliente", "Importo Fatt. (€)", "Stato"}, got)
}
