package contador

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmelo/caixas-go/internal/storage"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTotais(t *testing.T) {
	c := NewContagem()
	c.SetQuantidade(200, "2") // 400
	c.SetQuantidade(50, "3")  // 150
	c.SetQuantidade(2, "5")   // 10
	c.SetTotalMoedas("12,50")
	c.SetValorOnline("300,00")

	assert.True(t, c.TotalFisico().Equal(dec("572.50")), "got %s", c.TotalFisico())
	assert.True(t, c.TotalOnline().Equal(dec("300")))
	assert.True(t, c.TotalApurado().Equal(dec("872.50")))
}

func TestDiferenca(t *testing.T) {
	c := NewContagem()
	c.SetQuantidade(100, "9") // 900

	assert.True(t, c.Diferenca(dec("1000")).Equal(dec("-100")), "missing money is negative")
	assert.True(t, c.Diferenca(dec("850")).Equal(dec("50")), "surplus is positive")
}

func TestSetQuantidadeDigitsOnly(t *testing.T) {
	c := NewContagem()
	c.SetQuantidade(20, "1a2")
	assert.Equal(t, "12", c.Quantidades["20"])

	c.SetQuantidade(20, "")
	assert.True(t, c.TotalFisico().IsZero(), "empty counts as zero")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := storage.NewMemory()

	c := NewContagem()
	c.SetQuantidade(50, "4")
	c.SetTotalMoedas("3,75")
	c.SetValorOnline("120")
	require.NoError(t, Save(s, c))

	loaded, err := Load(s)
	require.NoError(t, err)
	assert.Equal(t, "4", loaded.Quantidades["50"])
	assert.True(t, loaded.TotalApurado().Equal(dec("323.75")))
}

func TestLoadMissingDraft(t *testing.T) {
	loaded, err := Load(storage.NewMemory())
	require.NoError(t, err)
	assert.True(t, loaded.TotalApurado().IsZero())
}
