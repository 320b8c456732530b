// Package storage is the device-local key/value store backing the
// offline queue, the box-list snapshot and other drafts. Values are
// opaque byte blobs keyed by well-known string keys, mirroring the
// mobile app's AsyncStorage layout so both stores stay interchangeable.
package storage

// Well-known keys.
const (
	KeyPrincipalID          = "@caixa_principal_id"
	KeyMovimentacoesOffline = "@financas:movimentacoes_offline"
	KeyCaixasSnapshot       = "@financas:caixas_lista"
	KeyContadorDraft        = "@contador_dinheiro"
)

// Store is the persistence capability the cores depend on. Get reports
// found=false for missing keys; implementations must make Set durable
// before returning.
type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}
