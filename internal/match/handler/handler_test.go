package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricematch-service/internal/config"
	"pricematch-service/internal/match/model"
	recSvc "pricematch-service/internal/match/service"
	serverhttp "pricematch-service/server/http"
)

func testConfig() config.Config {
	return config.Config{
		Host:         "127.0.0.1",
		Port:         0,
		AllowOrigins: []string{"*"},
		LogLevel:     "disabled",
		MaxUploadMB:  16,
		Matching:     model.DefaultOptions(),
	}
}

func buildForm(t *testing.T, catalogCSV, suppliersCSV string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	cw, err := mw.CreateFormFile("catalog", "catalog.csv")
	require.NoError(t, err)
	_, err = cw.Write([]byte(catalogCSV))
	require.NoError(t, err)

	sw, err := mw.CreateFormFile("suppliers", "suppliers.csv")
	require.NoError(t, err)
	_, err = sw.Write([]byte(suppliersCSV))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestMatchEndpoint(t *testing.T) {
	cfg := testConfig()
	dict := recSvc.LoadDictionary("", zerolog.Nop())
	srv := httptest.NewServer(serverhttp.NewRouter(cfg, dict, zerolog.Nop()))
	defer srv.Close()

	catalog := "Наименование,Внешний код\niPhone 13 128GB Black,C-101\n"
	suppliers := "поставщик,прайс\nShopA,apple iphone 13 128gb black 55000\nShopB,airpods pro 15000\n"

	body, contentType := buildForm(t, catalog, suppliers, nil)
	resp, err := http.Post(srv.URL+"/match", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "iPhone 13 128GB Black", res.Rows[0].OurName)
	assert.Equal(t, "C-101", res.Rows[0].ExternalCode)
	require.Len(t, res.Rows[0].Suppliers, 1)
	assert.Equal(t, model.MatchedSupplier{Price: 55000, Supplier: "ShopA"}, res.Rows[0].Suppliers[0])
	assert.Equal(t, 2, res.Stats.Listings)
}

func TestMatchEndpointCSVFormat(t *testing.T) {
	cfg := testConfig()
	dict := recSvc.LoadDictionary("", zerolog.Nop())
	srv := httptest.NewServer(serverhttp.NewRouter(cfg, dict, zerolog.Nop()))
	defer srv.Close()

	catalog := "Наименование,Внешний код\niPhone 13 128GB Black,C-101\n"
	suppliers := "поставщик,прайс\nShopA,apple iphone 13 128gb black 55000\n"

	body, contentType := buildForm(t, catalog, suppliers, map[string]string{"format": "csv"})
	resp, err := http.Post(srv.URL+"/match", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
}

func TestMatchEndpointMissingFile(t *testing.T) {
	cfg := testConfig()
	dict := recSvc.LoadDictionary("", zerolog.Nop())
	srv := httptest.NewServer(serverhttp.NewRouter(cfg, dict, zerolog.Nop()))
	defer srv.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/match", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMatchEndpointThresholdOverride(t *testing.T) {
	cfg := testConfig()
	dict := recSvc.LoadDictionary("", zerolog.Nop())
	srv := httptest.NewServer(serverhttp.NewRouter(cfg, dict, zerolog.Nop()))
	defer srv.Close()

	catalog := "Наименование,Внешний код\niPhone 13 128GB Black,C-101\n"
	suppliers := "поставщик,прайс\nShopA,apple iphone 13 128gb black 55000\n"

	// порог выше любого достижимого скора — совпадений нет, но это не ошибка
	body, contentType := buildForm(t, catalog, suppliers, map[string]string{"threshold": "0.99"})
	resp, err := http.Post(srv.URL+"/match", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Len(t, res.Rows, 1)
	assert.Empty(t, res.Rows[0].Suppliers)
	assert.Equal(t, 0, res.Stats.Matched)
}

func TestHealth(t *testing.T) {
	cfg := testConfig()
	dict := recSvc.LoadDictionary("", zerolog.Nop())
	srv := httptest.NewServer(serverhttp.NewRouter(cfg, dict, zerolog.Nop()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
