package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricematch-service/internal/fileio"
	"pricematch-service/internal/match/model"
)

func TestAssemble(t *testing.T) {
	product := model.CatalogProduct{Name: "iPhone 13 128GB Black", ExternalCode: ""}
	matches := []model.Match{
		{Listing: model.SupplierListing{Supplier: "A", Name: "n", Price: 55000}, Score: 0.9},
		{Listing: model.SupplierListing{Supplier: "B", Name: "n", Price: 54000}, Score: 0.8},
	}

	row := Assemble(product, matches)
	assert.Equal(t, "iPhone 13 128GB Black", row.OurName)
	assert.Equal(t, "N/A", row.ExternalCode) // сентинел при отсутствии кода
	require.Len(t, row.Suppliers, 2)
	// порядок — ранг движка, не цена и не алфавит
	assert.Equal(t, model.MatchedSupplier{Price: 55000, Supplier: "A"}, row.Suppliers[0])
	assert.Equal(t, model.MatchedSupplier{Price: 54000, Supplier: "B"}, row.Suppliers[1])
}

func TestWriteCSVReconcilesColumns(t *testing.T) {
	res := model.Result{
		Rows: []model.OutputRow{
			{
				OurName:      "iPhone 13 128GB Black",
				ExternalCode: "C-101",
				Suppliers: []model.MatchedSupplier{
					{Price: 55000, Supplier: "A"},
					{Price: 54000, Supplier: "B"},
				},
			},
			{
				OurName:      "iPad Air 64GB",
				ExternalCode: "C-102",
				// совпадений нет — строка всё равно пишется
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, []string{"our_name", "external_code", "price_1", "supplier_1", "price_2", "supplier_2"}, recs[0])
	assert.Equal(t, []string{"iPhone 13 128GB Black", "C-101", "55000", "A", "54000", "B"}, recs[1])
	assert.Equal(t, []string{"iPad Air 64GB", "C-102", "", "", "", ""}, recs[2])
}

func TestRunEndToEnd(t *testing.T) {
	log := zerolog.Nop()
	dict := LoadDictionary("", log)
	opts := model.DefaultOptions()

	catalog := []fileio.Row{
		{"Наименование": "iPhone 13 128GB Black", "Внешний код": "C-101"},
	}
	suppliers := []fileio.Row{
		{"поставщик": "ShopA", "прайс": "apple iphone 13 128gb black 55000"},
		{"поставщик": "ShopB", "прайс": "airpods pro 15000"},
	}

	res := Run(catalog, suppliers, dict, opts, log)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 1, res.Stats.Matched)
	assert.Equal(t, 2, res.Stats.Listings)
	require.Len(t, res.Rows[0].Suppliers, 1)
	assert.Equal(t, model.MatchedSupplier{Price: 55000, Supplier: "ShopA"}, res.Rows[0].Suppliers[0])
}

func TestRunEmptyInputsAreNoWork(t *testing.T) {
	log := zerolog.Nop()
	dict := LoadDictionary("", log)

	res := Run(nil, nil, dict, model.DefaultOptions(), log)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 0, res.Stats.Matched)
}
