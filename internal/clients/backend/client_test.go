package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmelo/caixas-go/internal/storage"
)

func TestListCaixasCachesSnapshot(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/caixas", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"c1","nome":"Principal","saldo":200},{"_id":"c2","nome":"Reserva","saldo":150.5}]`))
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := storage.NewMemory()
	client := NewClient(srv.URL, store, zerolog.Nop())

	caixas, err := client.ListCaixas(context.Background())
	require.NoError(t, err)
	require.Len(t, caixas, 2)
	assert.Equal(t, "Principal", caixas[0].Nome)
	assert.Equal(t, "150.5", caixas[1].Saldo.String())

	// Snapshot and Principal id are cached for offline use
	cached, err := storage.LoadCaixasSnapshot(store)
	require.NoError(t, err)
	assert.Len(t, cached, 2)

	id, err := storage.PrincipalID(store)
	require.NoError(t, err)
	assert.Equal(t, "c1", id)
}

func TestListContasSortedByDueDate(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/contas", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id":"b","descricao":"Luz","valor":80,"dataVencimento":"2025-04-20T00:00:00Z","status":"pendente"},
			{"_id":"a","descricao":"Aluguel","valor":900,"dataVencimento":"2025-04-05T00:00:00Z","status":"pendente"}
		]`))
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := NewClient(srv.URL, nil, zerolog.Nop())
	contas, err := client.ListContas(context.Background())
	require.NoError(t, err)
	require.Len(t, contas, 2)
	assert.Equal(t, "a", contas[0].ID, "earliest due date first")
}

func TestCreateCaixaReservedName(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, zerolog.Nop())

	for _, nome := range []string{"Principal", "principal", " PRINCIPAL "} {
		err := client.CreateCaixa(context.Background(), nome)
		require.Error(t, err, nome)
	}
	assert.False(t, requested, "reserved name must be rejected before any request")

	require.NoError(t, client.CreateCaixa(context.Background(), "Poupança"))
	assert.True(t, requested)
}

func TestPagarContaPayload(t *testing.T) {
	var got map[string]json.RawMessage
	router := chi.NewRouter()
	router.Post("/contas/{id}/pagar", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "conta1", chi.URLParam(r, "id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := NewClient(srv.URL, nil, zerolog.Nop())
	err := client.PagarConta(context.Background(), "conta1", PagamentoRequest{
		Pagamentos: []PagamentoLinha{
			{CaixaID: "A", Valor: 150},
			{CaixaID: "B", Valor: 150},
		},
		DataPagamento: time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var pagamentos []PagamentoLinha
	require.NoError(t, json.Unmarshal(got["pagamentos"], &pagamentos))
	require.Len(t, pagamentos, 2)
	assert.Equal(t, PagamentoLinha{CaixaID: "A", Valor: 150}, pagamentos[0])
	assert.Contains(t, string(got["dataPagamento"]), "2025-03-15")
}

func TestBackendErrorSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Saldo insuficiente no caixa"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, zerolog.Nop())
	err := client.CreateMovimentacao(context.Background(), MovimentacaoRequest{CaixaID: "c1"})
	require.Error(t, err)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusBadRequest, backendErr.Status)
	assert.Equal(t, "Saldo insuficiente no caixa", backendErr.Error())
}

func TestBackendErrorGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, zerolog.Nop())
	err := client.DeleteConta(context.Background(), "x")
	require.Error(t, err)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Contains(t, backendErr.Error(), "500")
}

func TestExtratoRouting(t *testing.T) {
	var path string
	router := chi.NewRouter()
	handler := func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}
	router.Get("/extrato", handler)
	router.Get("/extrato/principal", handler)
	router.Get("/extrato/{caixaId}", handler)
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := NewClient(srv.URL, nil, zerolog.Nop())
	ctx := context.Background()

	_, err := client.Extrato(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, "/extrato", path)

	_, err = client.Extrato(ctx, "c1", true)
	require.NoError(t, err)
	assert.Equal(t, "/extrato/principal", path, "principal wins over id")

	_, err = client.Extrato(ctx, "c2", false)
	require.NoError(t, err)
	assert.Equal(t, "/extrato/c2", path)
}

func TestIsOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	client := NewClient(srv.URL, nil, zerolog.Nop())
	assert.True(t, client.IsOnline(context.Background()))

	srv.Close()
	assert.False(t, client.IsOnline(context.Background()))
}
