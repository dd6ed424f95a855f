package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"pricematch-service/internal/fileio"
	"pricematch-service/internal/match/model"
)

// Assemble сворачивает принятые совпадения товара в плоскую строку
// результата. Порядок пар — порядок движка (по уверенности).
func Assemble(product model.CatalogProduct, matches []model.Match) model.OutputRow {
	row := model.OutputRow{
		OurName:      product.Name,
		ExternalCode: product.ExternalCode,
		Suppliers:    make([]model.MatchedSupplier, 0, len(matches)),
	}
	if row.ExternalCode == "" {
		row.ExternalCode = "N/A"
	}
	for _, m := range matches {
		row.Suppliers = append(row.Suppliers, model.MatchedSupplier{
			Price:    m.Listing.Price,
			Supplier: m.Listing.Supplier,
		})
	}
	return row
}

// Run — внешний цикл конвейера: каталог последовательно против всего
// пула. Каждый товар скорится в своём домене отказа: паника при
// скоринге одного товара даёт ему пустой результат и не валит прогон.
func Run(catalogRows, supplierRows []fileio.Row, dict *Dictionary, opts model.Options, log zerolog.Logger) model.Result {
	catalog := ParseCatalog(catalogRows, log)
	pool := ParseListings(supplierRows, opts, log)
	log.Info().
		Int("catalog", len(catalog)).
		Int("supplier_rows", len(supplierRows)).
		Int("listings", len(pool)).
		Msg("parsed inputs")

	res := model.Result{
		Rows: make([]model.OutputRow, 0, len(catalog)),
		Stats: model.Stats{
			CatalogRows:  len(catalogRows),
			SupplierRows: len(supplierRows),
			Listings:     len(pool),
		},
		Opts: opts,
	}

	for _, product := range catalog {
		matches := matchSafe(product, pool, dict, opts, log, &res.Stats.Failed)
		if len(matches) > 0 {
			res.Stats.Matched++
		}
		res.Rows = append(res.Rows, Assemble(product, matches))
	}
	return res
}

func matchSafe(product model.CatalogProduct, pool []model.SupplierListing, dict *Dictionary, opts model.Options, log zerolog.Logger, failed *int) (out []model.Match) {
	defer func() {
		if r := recover(); r != nil {
			*failed++
			log.Error().Interface("panic", r).Str("product", product.Name).Msg("scoring failed, product gets no matches")
			out = nil
		}
	}()
	return Match(product, pool, dict, opts)
}

// WriteCSV пишет результат с выравниванием колонок: заголовок — это
// объединение по самой широкой строке, недостающие ячейки — пустые.
func WriteCSV(w io.Writer, res model.Result) error {
	width := 0
	for _, row := range res.Rows {
		if len(row.Suppliers) > width {
			width = len(row.Suppliers)
		}
	}

	cw := csv.NewWriter(w)
	header := []string{"our_name", "external_code"}
	for i := 1; i <= width; i++ {
		header = append(header, fmt.Sprintf("price_%d", i), fmt.Sprintf("supplier_%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range res.Rows {
		rec := []string{row.OurName, row.ExternalCode}
		for i := 0; i < width; i++ {
			if i < len(row.Suppliers) {
				rec = append(rec, fmt.Sprintf("%d", row.Suppliers[i].Price), row.Suppliers[i].Supplier)
			} else {
				rec = append(rec, "", "")
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
