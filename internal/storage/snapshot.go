package storage

import (
	"encoding/json"
	"fmt"

	"github.com/dmelo/caixas-go/internal/domain"
)

// SaveCaixasSnapshot persists the box list so box selection keeps
// working while offline, and caches the Principal box id for quick
// lookup.
func SaveCaixasSnapshot(s Store, caixas []domain.Caixa) error {
	data, err := json.Marshal(caixas)
	if err != nil {
		return fmt.Errorf("failed to marshal caixas snapshot: %w", err)
	}
	if err := s.Set(KeyCaixasSnapshot, data); err != nil {
		return err
	}

	for _, c := range caixas {
		if c.IsPrincipal() {
			return s.Set(KeyPrincipalID, []byte(c.ID))
		}
	}
	return nil
}

// LoadCaixasSnapshot returns the last persisted box list. A missing
// snapshot returns an empty list, not an error.
func LoadCaixasSnapshot(s Store) ([]domain.Caixa, error) {
	data, found, err := s.Get(KeyCaixasSnapshot)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var caixas []domain.Caixa
	if err := json.Unmarshal(data, &caixas); err != nil {
		return nil, fmt.Errorf("failed to parse caixas snapshot: %w", err)
	}
	return caixas, nil
}

// PrincipalID returns the cached id of the Principal box, empty when
// never cached.
func PrincipalID(s Store) (string, error) {
	data, found, err := s.Get(KeyPrincipalID)
	if err != nil || !found {
		return "", err
	}
	return string(data), nil
}
