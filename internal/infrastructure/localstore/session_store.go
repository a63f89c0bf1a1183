// Package localstore persiste la sesión de caja en un archivo JSON local:
// estado por dispositivo, nunca en la base compartida.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olayos/pos-api/internal/application/cashier"
	"github.com/olayos/pos-api/internal/domain/entity"
)

var _ cashier.SessionStore = (*SessionFileStore)(nil)

// SessionFileStore guarda la sesión serializada como JSON (timestamp en
// RFC 3339, ida y vuelta sin pérdida).
type SessionFileStore struct {
	path string
}

// NewSessionFileStore construye el store sobre la ruta dada.
func NewSessionFileStore(path string) *SessionFileStore {
	return &SessionFileStore{path: path}
}

// Load lee la sesión guardada; (nil, nil) si no hay archivo.
func (s *SessionFileStore) Load() (*entity.CashSession, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión de caja: %w", err)
	}
	var session entity.CashSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decodificar sesión de caja: %w", err)
	}
	return &session, nil
}

// Save escribe la sesión; se invoca en cada apertura de caja.
func (s *SessionFileStore) Save(session *entity.CashSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("codificar sesión de caja: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("guardar sesión de caja: %w", err)
	}
	return nil
}

// Clear elimina el archivo; un archivo ya ausente no es error.
func (s *SessionFileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("limpiar sesión de caja: %w", err)
	}
	return nil
}
