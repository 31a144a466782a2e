// Package checksum computes deterministic content digests for tracked
// entity changes. The digest covers the mutation input payload, not the
// post-write entity state.
package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// envelope фиксирует состав хешируемого представления изменения.
// Ключи сериализуются в алфавитном порядке (encoding/json сортирует
// ключи map), поэтому представление канонично.
type envelope map[string]any

// Compute returns the lowercase hex SHA-256 digest of the canonical JSON
// form of {entityId, entityType, payload}. Two calls with semantically
// equal payloads produce the same digest regardless of key order in the
// input; numeric literals are preserved verbatim.
func Compute(entityType, entityID string, payload any) (string, error) {
	canonical, err := canonicalize(payload)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize payload: %w", err)
	}

	data, err := json.Marshal(envelope{
		"entityId":   entityID,
		"entityType": entityType,
		"payload":    canonical,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal checksum envelope: %w", err)
	}

	return Digest(data), nil
}

// Digest returns the lowercase hex SHA-256 digest of raw bytes.
func Digest(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// canonicalize приводит произвольное значение к JSON-стабильной форме:
// структуры и map проходят через decode в универсальное представление,
// числовые литералы сохраняются через json.Number.
func canonicalize(v any) (any, error) {
	var raw []byte

	switch val := v.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		raw = val
	case []byte:
		raw = val
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		raw = data
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}
