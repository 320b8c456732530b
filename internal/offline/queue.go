// Package offline implements the offline ledger queue: entries recorded
// without connectivity are persisted locally and later replayed against
// the backend one at a time, keeping their original timestamps.
package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dmelo/caixas-go/internal/clients/backend"
	"github.com/dmelo/caixas-go/internal/domain"
	"github.com/dmelo/caixas-go/internal/storage"
)

// ErrBusy means another replay is in flight. Replay is serialized
// because two concurrent read-filter-write cycles on the same stored
// list could drop entries.
var ErrBusy = errors.New("outro envio já está em andamento")

// ErrOffline means the backend is unreachable; the entry stays queued.
var ErrOffline = errors.New("sem conexão com o servidor")

// Entry is a ledger entry waiting to be synchronized. The box id and
// name are denormalized at creation time so display and replay work
// even if the live box list changes before synchronization.
type Entry struct {
	LocalID      string          `json:"id"`
	Descricao    string          `json:"descricao"`
	Valor        decimal.Decimal `json:"valor"` // signed: negative = outflow
	Data         time.Time       `json:"data"`  // when recorded offline
	Tipo         string          `json:"tipo"`
	CaixaID      string          `json:"caixaId"`
	CaixaNome    string          `json:"caixaNome"`
	Sincronizado bool            `json:"sincronizado"`
}

// NewEntry builds a queue entry from form input. The magnitude is
// sign-adjusted here: saida is stored negative, entrada positive.
func NewEntry(descricao string, valor decimal.Decimal, tipo string, caixa domain.Caixa) Entry {
	magnitude := valor.Abs()
	if tipo == domain.TipoSaida {
		magnitude = magnitude.Neg()
	}

	return Entry{
		LocalID:      uuid.NewString(),
		Descricao:    descricao,
		Valor:        magnitude,
		Data:         time.Now(),
		Tipo:         tipo,
		CaixaID:      caixa.ID,
		CaixaNome:    caixa.Nome,
		Sincronizado: false,
	}
}

// Replayer sends one queued entry to the backend and reports
// reachability.
type Replayer interface {
	IsOnline(ctx context.Context) bool
	CreateMovimentacao(ctx context.Context, req backend.MovimentacaoRequest) error
}

// Queue is the offline entry queue. The persisted list under
// storage.KeyMovimentacoesOffline is the single source of truth; the
// queue holds no cache of its own.
type Queue struct {
	store    storage.Store
	log      zerolog.Logger
	inFlight atomic.Bool
}

// NewQueue creates a queue over the given store.
func NewQueue(store storage.Store, log zerolog.Logger) *Queue {
	return &Queue{
		store: store,
		log:   log.With().Str("component", "offline").Logger(),
	}
}

func (q *Queue) read() ([]Entry, error) {
	data, found, err := q.store.Get(storage.KeyMovimentacoesOffline)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse offline queue: %w", err)
	}
	return entries, nil
}

func (q *Queue) write(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal offline queue: %w", err)
	}
	return q.store.Set(storage.KeyMovimentacoesOffline, data)
}

// Enqueue appends entry to the persisted list. Append-only; no dedup.
func (q *Queue) Enqueue(entry Entry) error {
	entries, err := q.read()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	if err := q.write(entries); err != nil {
		return err
	}

	q.log.Info().
		Str("local_id", entry.LocalID).
		Str("caixa", entry.CaixaNome).
		Msg("Movimentação salva offline")
	return nil
}

// ListPending returns the queued entries, most recent first. The sort
// is for display only and is not persisted.
func (q *Queue) ListPending() ([]Entry, error) {
	entries, err := q.read()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Data.After(entries[j].Data)
	})
	return entries, nil
}

// HasPending reports whether any entry awaits replay.
func (q *Queue) HasPending() (bool, error) {
	entries, err := q.read()
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

// Discard removes the entry with localID. Local-only; it never touches
// the network and works while offline.
func (q *Queue) Discard(localID string) error {
	entries, err := q.read()
	if err != nil {
		return err
	}
	return q.write(q.without(entries, localID))
}

// ReplayOne sends a single queued entry to the backend. The entry's
// original offline timestamp is transmitted as the effective date, so
// the server ledger reflects when the transaction actually happened.
// On success the entry is removed by re-reading the list, tolerating
// unrelated concurrent mutations; on any failure the queue is left
// untouched and the user retries manually.
func (q *Queue) ReplayOne(ctx context.Context, replayer Replayer, entry Entry) error {
	if !q.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer q.inFlight.Store(false)

	if !replayer.IsOnline(ctx) {
		return ErrOffline
	}

	err := replayer.CreateMovimentacao(ctx, backend.MovimentacaoRequest{
		CaixaID:   entry.CaixaID,
		Descricao: entry.Descricao,
		Valor:     entry.Valor.InexactFloat64(),
		Tipo:      entry.Tipo,
		Data:      entry.Data.Format(time.RFC3339),
	})
	if err != nil {
		q.log.Warn().Err(err).Str("local_id", entry.LocalID).Msg("Envio recusado")
		return err
	}

	entries, err := q.read()
	if err != nil {
		return err
	}
	if err := q.write(q.without(entries, entry.LocalID)); err != nil {
		return err
	}

	q.log.Info().Str("local_id", entry.LocalID).Msg("Movimentação sincronizada com a data original")
	return nil
}

func (q *Queue) without(entries []Entry, localID string) []Entry {
	kept := entries[:0]
	for _, e := range entries {
		if e.LocalID != localID {
			kept = append(kept, e)
		}
	}
	return kept
}
