package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pricematch-service/internal/config"
	"pricematch-service/internal/fileio"
	recSvc "pricematch-service/internal/match/service"
	serverhttp "pricematch-service/server/http"
)

func readFile(path string) ([]fileio.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fileio.ReadTable(f, path, 1)
}

func main() {
	root := &cobra.Command{
		Use:   "pricematch",
		Short: "Сопоставление каталога магазина с прайсами поставщиков",
	}
	root.AddCommand(serveCmd(), runCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// serveCmd — HTTP-режим: аплоад двух таблиц, результат в ответе.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP-сервис сопоставления",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := config.SetupLogger(cfg)

			dict := recSvc.LoadDictionary(cfg.CachePath, logger)
			r := serverhttp.NewRouter(cfg, dict, logger)

			srv := &http.Server{Addr: cfg.Addr(), Handler: r}
			logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			logger.Info().Msg("server shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
			if err := dict.Flush(); err != nil {
				logger.Warn().Err(err).Msg("dictionary flush failed")
			}
			logger.Info().Msg("bye")
			return nil
		},
	}
}

// runCmd — пакетный режим: локальные файлы на входе, CSV на выходе.
func runCmd() *cobra.Command {
	var (
		catalogPath   string
		suppliersPath string
		outPath       string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Разовый прогон по локальным файлам",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := config.SetupLogger(cfg)

			catalogRows, err := readFile(catalogPath)
			if err != nil {
				return err
			}
			supplierRows, err := readFile(suppliersPath)
			if err != nil {
				return err
			}

			dict := recSvc.LoadDictionary(cfg.CachePath, logger)
			res := recSvc.Run(catalogRows, supplierRows, dict, cfg.Matching, logger)
			if err := dict.Flush(); err != nil {
				logger.Warn().Err(err).Msg("dictionary flush failed")
			}

			if dir := filepath.Dir(outPath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := recSvc.WriteCSV(out, res); err != nil {
				return err
			}

			logger.Info().
				Int("products", len(res.Rows)).
				Int("matched", res.Stats.Matched).
				Str("out", outPath).
				Msg("matching run finished")
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "data/shop_products.csv", "файл каталога (csv/xls/xlsx)")
	cmd.Flags().StringVar(&suppliersPath, "suppliers", "data/supplier_products.csv", "файл прайсов поставщиков")
	cmd.Flags().StringVar(&outPath, "out", "output/matched_products.csv", "куда писать результат")
	return cmd
}
