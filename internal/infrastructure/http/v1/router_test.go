package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv/internal/app"
	"pdv/internal/domain/catalog"
	"pdv/internal/domain/customer"
	"pdv/internal/domain/fiscal"
	"pdv/internal/domain/ledger"
	"pdv/internal/domain/sale"
	"pdv/internal/domain/stock"
	v1 "pdv/internal/infrastructure/http/v1"
	"pdv/internal/infrastructure/memory"
	"pdv/pkg/logger"
	"pdv/pkg/numerator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	num := numerator.New(memory.NewSequenceStore())
	catalogService := catalog.NewService(memory.NewProductStore(), num)
	customerService := customer.NewService(memory.NewCustomerStore(), num)
	ledgerService := ledger.NewService(memory.NewTransactionStore())
	stockService := stock.NewService(memory.NewMovementStore(), catalogService)
	saleService := sale.NewService(memory.NewSaleStore(), catalogService, customerService, num)
	fiscalService := fiscal.NewService(memory.NewCupomStore(), customerService, num)
	saleFlow := app.NewSaleFlow(saleService, stockService, ledgerService, fiscalService, app.Config{})

	return v1.NewRouter(v1.RouterConfig{
		AppName:  "pdv-test",
		Version:  "test",
		Logger:   logger.Default(),
		Catalog:  catalogService,
		Customer: customerService,
		Ledger:   ledgerService,
		Stock:    stockService,
		Sale:     saleService,
		Fiscal:   fiscalService,
		SaleFlow: saleFlow,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func createProduct(t *testing.T, router *gin.Engine, name string, price string, stockQty int) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/produtos", gin.H{
		"nome":       name,
		"precoVenda": price,
		"estoque":    fmt.Sprintf("%d", stockQty),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	decode(t, rec, &resp)
	return resp.ID
}

func createCustomer(t *testing.T, router *gin.Engine, name string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/clientes", gin.H{"nome": name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	decode(t, rec, &resp)
	return resp.ID
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pdv_http_requests_total")
}

func TestProductCRUD(t *testing.T) {
	router := newTestRouter(t)

	productID := createProduct(t, router, "Arroz 5kg", "25.90", 10)

	rec := doJSON(t, router, http.MethodGet, "/api/produtos/"+productID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var product map[string]any
	decode(t, rec, &product)
	assert.Equal(t, "Arroz 5kg", product["nome"])
	assert.NotEmpty(t, product["codigo"])

	rec = doJSON(t, router, http.MethodPut, "/api/produtos/"+productID, gin.H{"categoria": "alimentos"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &product)
	assert.Equal(t, "alimentos", product["categoria"])

	rec = doJSON(t, router, http.MethodDelete, "/api/produtos/"+productID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Soft delete: still retrievable, just inactive.
	rec = doJSON(t, router, http.MethodGet, "/api/produtos/"+productID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &product)
	assert.Equal(t, false, product["ativo"])
}

func TestUnknownProductReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/produtos/0198c5c0-0000-7000-8000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestSaleLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	productID := createProduct(t, router, "Cafe 500g", "18.00", 10)
	customerID := createCustomer(t, router, "Maria Silva")

	// Create the sale.
	rec := doJSON(t, router, http.MethodPost, "/api/vendas", gin.H{
		"clienteId":      customerID,
		"formaPagamento": "dinheiro",
		"itens": []gin.H{
			{"produtoId": productID, "quantidade": "2"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	decode(t, rec, &created)

	// Confirm it.
	rec = doJSON(t, router, http.MethodPost, "/api/vendas/"+created.ID+"/confirmar", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var confirmed map[string]any
	decode(t, rec, &confirmed)
	assert.Equal(t, "concluida", confirmed["status"])
	assert.Equal(t, "36", confirmed["total"])

	// Stock went down.
	rec = doJSON(t, router, http.MethodGet, "/api/produtos/"+productID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var product map[string]any
	decode(t, rec, &product)
	assert.Equal(t, "8", product["estoque"])

	// Ledger balance reflects the sale.
	rec = doJSON(t, router, http.MethodGet, "/api/financeiro/saldo", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var balance map[string]any
	decode(t, rec, &balance)
	assert.Equal(t, "36", balance["saldo"])

	// Cupom fiscal for the confirmed sale.
	rec = doJSON(t, router, http.MethodPost, "/api/vendas/"+created.ID+"/cupom", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var cupom map[string]any
	decode(t, rec, &cupom)
	assert.Equal(t, "pendente", cupom["status"])
	assert.Contains(t, cupom["numero"], "CF-")
}

func TestConfirmInsufficientStockOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	productID := createProduct(t, router, "Leite 1L", "4.50", 1)
	customerID := createCustomer(t, router, "Joao Souza")

	rec := doJSON(t, router, http.MethodPost, "/api/vendas", gin.H{
		"clienteId":      customerID,
		"formaPagamento": "pix",
		"itens": []gin.H{
			{"produtoId": productID, "quantidade": "5"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	decode(t, rec, &created)

	rec = doJSON(t, router, http.MethodPost, "/api/vendas/"+created.ID+"/confirmar", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

func TestLowStockReportOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/produtos", gin.H{
		"nome":          "Fosforo",
		"precoVenda":    "2.00",
		"estoque":       "1",
		"estoqueMinimo": "5",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/estoque/relatorios/baixo-estoque", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report []map[string]any
	decode(t, rec, &report)
	require.Len(t, report, 1)
	assert.Equal(t, "Fosforo", report[0]["nome"])
	assert.Equal(t, "1", report[0]["estoqueAtual"])
	assert.Equal(t, "5", report[0]["estoqueMinimo"])
}

func TestStockMovementOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	productID := createProduct(t, router, "Sabonete", "3.00", 5)

	rec := doJSON(t, router, http.MethodPost, "/api/estoque/movimentacoes", gin.H{
		"produtoId":  productID,
		"tipo":       "entrada",
		"quantidade": "10",
		"motivo":     "reposicao",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/produtos/"+productID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var product map[string]any
	decode(t, rec, &product)
	assert.Equal(t, "15", product["estoque"])
}

func TestValidationErrorOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// Missing required name.
	rec := doJSON(t, router, http.MethodPost, "/api/produtos", gin.H{"categoria": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}
