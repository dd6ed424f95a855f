package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"pricematch-service/internal/config"
	"pricematch-service/internal/fileio"
	recSvc "pricematch-service/internal/match/service"
)

// Match принимает две таблицы (catalog, suppliers) multipart'ом, гоняет
// конвейер сопоставления и отдаёт JSON либо CSV (format=csv).
func Match(cfg config.Config, dict *recSvc.Dictionary, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := logger
		if rid := r.Header.Get("X-Request-ID"); rid != "" {
			log = logger.With().Str("req_id", rid).Logger()
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		catalogFile, catalogHdr, err := r.FormFile("catalog")
		if err != nil {
			http.Error(w, "missing catalog: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer catalogFile.Close()

		suppliersFile, suppliersHdr, err := r.FormFile("suppliers")
		if err != nil {
			http.Error(w, "missing suppliers: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer suppliersFile.Close()

		catalogRows, err := fileio.ReadTable(catalogFile, catalogHdr.Filename, atoi(r.FormValue("catalog_header_row"), 1))
		if err != nil {
			http.Error(w, "failed to read catalog: "+err.Error(), http.StatusBadRequest)
			return
		}
		supplierRows, err := fileio.ReadTable(suppliersFile, suppliersHdr.Filename, atoi(r.FormValue("suppliers_header_row"), 1))
		if err != nil {
			http.Error(w, "failed to read suppliers: "+err.Error(), http.StatusBadRequest)
			return
		}

		// пустой вход — не ошибка: работы нет, результат пустой
		opts := optionsFromForm(r, cfg.Matching)
		res := recSvc.Run(catalogRows, supplierRows, dict, opts, log)

		if err := dict.Flush(); err != nil {
			log.Warn().Err(err).Msg("dictionary flush failed")
		}

		if r.FormValue("format") == "csv" {
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="matched_products.csv"`)
			if err := recSvc.WriteCSV(w, res); err != nil {
				log.Error().Err(err).Msg("write csv")
			}
		} else {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("Cache-Control", "no-store")
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				log.Error().Err(err).Msg("write json")
			}
		}

		log.Info().
			Int("catalog_rows", len(catalogRows)).
			Int("supplier_rows", len(supplierRows)).
			Int("matched", res.Stats.Matched).
			Dur("elapsed", time.Since(start)).
			Msg("match done")
	}
}
