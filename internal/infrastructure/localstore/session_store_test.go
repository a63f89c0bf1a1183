package localstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/infrastructure/localstore"
)

func tempStore(t *testing.T) *localstore.SessionFileStore {
	t.Helper()
	return localstore.NewSessionFileStore(filepath.Join(t.TempDir(), "cash_session.json"))
}

func TestLoad_SinArchivoDevuelveNil(t *testing.T) {
	store := tempStore(t)
	session, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, session, "sin archivo no hay sesión, pero tampoco error")
}

func TestSaveLoad_IdaYVueltaSinPerdida(t *testing.T) {
	store := tempStore(t)
	openedAt := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)
	original := &entity.CashSession{
		IsOpen:        true,
		OpeningAmount: decimal.NewFromInt(15000),
		OpenedAt:      &openedAt,
	}

	require.NoError(t, store.Save(original))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.IsOpen)
	assert.True(t, loaded.OpeningAmount.Equal(decimal.NewFromInt(15000)))
	require.NotNil(t, loaded.OpenedAt)
	assert.True(t, loaded.OpenedAt.Equal(openedAt), "el timestamp debe sobrevivir la serialización")
}

func TestLoad_ArchivoCorruptoDevuelveError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cash_session.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	store := localstore.NewSessionFileStore(path)
	session, err := store.Load()
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestClear_EliminaElArchivo(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(&entity.CashSession{IsOpen: true}))
	require.NoError(t, store.Clear())

	session, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestClear_ArchivoAusenteNoEsError(t *testing.T) {
	store := tempStore(t)
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear(), "limpiar dos veces tampoco es error")
}
