// Package backend is the client for the finance REST backend. It only
// consumes the backend's contracts; balances and aggregations are
// computed server-side and re-fetched after every mutation.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dmelo/caixas-go/internal/domain"
	"github.com/dmelo/caixas-go/internal/storage"
)

// Client for the finance backend
type Client struct {
	baseURL string
	client  *http.Client
	store   storage.Store
	log     zerolog.Logger
}

// NewClient creates a new backend client. The store receives the box
// list snapshot and Principal id cache on every successful ListCaixas;
// pass nil to skip caching.
func NewClient(baseURL string, store storage.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		store: store,
		log:   log.With().Str("client", "backend").Logger(),
	}
}

// do performs a request and returns the response body. Non-2xx
// responses become a BackendError carrying the server's message.
func (c *Client) do(ctx context.Context, method, endpoint string, request interface{}) ([]byte, error) {
	var reqBody io.Reader
	if request != nil {
		data, err := json.Marshal(request)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newBackendError(resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, endpoint string, request, out interface{}) error {
	body, err := c.do(ctx, http.MethodPost, endpoint, request)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// IsOnline probes backend reachability with a short timeout. Replay and
// other connectivity-gated flows check this before mutating anything.
func (c *Client) IsOnline(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, c.baseURL+"/caixas", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// ListCaixas fetches all cash boxes and refreshes the local snapshot
// used for offline box selection.
func (c *Client) ListCaixas(ctx context.Context) ([]domain.Caixa, error) {
	var caixas []domain.Caixa
	if err := c.get(ctx, "/caixas", &caixas); err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := storage.SaveCaixasSnapshot(c.store, caixas); err != nil {
			c.log.Warn().Err(err).Msg("Failed to cache caixas snapshot")
		}
	}

	return caixas, nil
}

// CreateCaixa creates a new cash box. The name "Principal" is reserved
// for the system and rejected before any request is made.
func (c *Client) CreateCaixa(ctx context.Context, nome string) error {
	if strings.EqualFold(strings.TrimSpace(nome), domain.NomePrincipal) {
		return fmt.Errorf("o nome %q é reservado para o sistema", domain.NomePrincipal)
	}
	return c.post(ctx, "/caixas", map[string]string{"nome": nome}, nil)
}

// ListContas fetches all payables, sorted by due date ascending.
func (c *Client) ListContas(ctx context.Context) ([]domain.Conta, error) {
	var contas []domain.Conta
	if err := c.get(ctx, "/contas", &contas); err != nil {
		return nil, err
	}

	sort.SliceStable(contas, func(i, j int) bool {
		return contas[i].DataVencimento.Before(contas[j].DataVencimento)
	})
	return contas, nil
}

// ContaRequest is the payload for creating or updating a payable.
type ContaRequest struct {
	Instituicao    string  `json:"instituicao"`
	Descricao      string  `json:"descricao"`
	Observacao     string  `json:"observacao,omitempty"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"dataVencimento"`
	Status         string  `json:"status,omitempty"`
}

// CreateConta schedules a new payable.
func (c *Client) CreateConta(ctx context.Context, req ContaRequest) error {
	return c.post(ctx, "/contas", req, nil)
}

// UpdateConta edits an existing payable.
func (c *Client) UpdateConta(ctx context.Context, id string, req ContaRequest) error {
	_, err := c.do(ctx, http.MethodPut, "/contas/"+id, req)
	return err
}

// DeleteConta removes a payable.
func (c *Client) DeleteConta(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/contas/"+id, nil)
	return err
}

// PagamentoLinha is one line of a multi-box payment.
type PagamentoLinha struct {
	CaixaID string  `json:"caixaId"`
	Valor   float64 `json:"valor"`
}

// PagamentoRequest is the single transaction carrying every line item.
// The backend applies all lines or none.
type PagamentoRequest struct {
	Pagamentos    []PagamentoLinha `json:"pagamentos"`
	DataPagamento time.Time        `json:"dataPagamento"`
}

// PagarConta submits one multi-box payment against a payable.
func (c *Client) PagarConta(ctx context.Context, contaID string, req PagamentoRequest) error {
	return c.post(ctx, "/contas/"+contaID+"/pagar", req, nil)
}

// MovimentacaoRequest is the payload for creating a ledger entry.
// Data, when set, is the entry's effective date; offline replay fills
// it with the original offline timestamp.
type MovimentacaoRequest struct {
	CaixaID   string  `json:"caixaId"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Tipo      string  `json:"tipo"`
	Categoria string  `json:"categoria,omitempty"`
	Data      string  `json:"data,omitempty"`
}

// CreateMovimentacao records a ledger entry against a caixa.
func (c *Client) CreateMovimentacao(ctx context.Context, req MovimentacaoRequest) error {
	return c.post(ctx, "/movimentacoes", req, nil)
}

// UpdateMovimentacao edits an existing ledger entry.
func (c *Client) UpdateMovimentacao(ctx context.Context, id string, req MovimentacaoRequest) error {
	_, err := c.do(ctx, http.MethodPut, "/movimentacoes/"+id, req)
	return err
}

// DeleteMovimentacao removes a ledger entry.
func (c *Client) DeleteMovimentacao(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/movimentacoes/"+id, nil)
	return err
}

// Extrato fetches a statement. The Principal box has its own route;
// other boxes are addressed by id; an empty id means the global
// statement.
func (c *Client) Extrato(ctx context.Context, caixaID string, principal bool) ([]domain.Movimentacao, error) {
	endpoint := "/extrato"
	switch {
	case principal:
		endpoint = "/extrato/principal"
	case caixaID != "":
		endpoint = "/extrato/" + caixaID
	}

	var movs []domain.Movimentacao
	if err := c.get(ctx, endpoint, &movs); err != nil {
		return nil, err
	}
	return movs, nil
}

// Resumo holds the backend-computed inflow/outflow totals.
type Resumo struct {
	TotalEntradas decimal.Decimal `json:"totalEntradas"`
	TotalSaidas   decimal.Decimal `json:"totalSaidas"`
}

// GetResumo fetches the statement summary.
func (c *Client) GetResumo(ctx context.Context) (*Resumo, error) {
	var resumo Resumo
	if err := c.get(ctx, "/extrato/resumo", &resumo); err != nil {
		return nil, err
	}
	return &resumo, nil
}

// CategoriaBucket is one server-computed category total. The label is
// opaque to this client.
type CategoriaBucket struct {
	Categoria string          `json:"categoria"`
	Total     decimal.Decimal `json:"total"`
}

// RelatorioCategorias holds the server-grouped category report.
type RelatorioCategorias struct {
	Gastos   []CategoriaBucket `json:"gastos"`
	Entradas []CategoriaBucket `json:"entradas"`
}

// GetCategorias fetches the category report.
func (c *Client) GetCategorias(ctx context.Context) (*RelatorioCategorias, error) {
	var rel RelatorioCategorias
	if err := c.get(ctx, "/extrato/categorias", &rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

// ListAdicionais fetches the extra annotations.
func (c *Client) ListAdicionais(ctx context.Context) ([]domain.Adicional, error) {
	var adicionais []domain.Adicional
	if err := c.get(ctx, "/adicionais", &adicionais); err != nil {
		return nil, err
	}
	return adicionais, nil
}

// RelatorioPDF asks the backend to render the category report as PDF
// and returns the raw document.
func (c *Client) RelatorioPDF(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/relatorio-pdf", nil)
}
