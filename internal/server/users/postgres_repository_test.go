package users

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/dmitrijs2005/solsocial/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "wallet1", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "wallet_address", "display_name", "created_at"}).
			AddRow("uuid-1", "wallet1", "alice", now))

	repo, err := NewPostgresRepository(db, time.Second)
	require.NoError(t, err)

	user, err := repo.Upsert(context.Background(), &models.User{WalletAddress: "wallet1", DisplayName: "alice"})
	require.NoError(t, err)

	assert.Equal(t, "uuid-1", user.ID)
	assert.Equal(t, "wallet1", user.WalletAddress)
	assert.Equal(t, "alice", user.DisplayName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetByWallet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, wallet_address, display_name, created_at FROM users").
		WithArgs("wallet1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "wallet_address", "display_name", "created_at"}).
			AddRow("uuid-1", "wallet1", "alice", now))

	repo, err := NewPostgresRepository(db, time.Second)
	require.NoError(t, err)

	user, err := repo.GetByWallet(context.Background(), "wallet1")
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", user.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetByWallet_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, wallet_address, display_name, created_at FROM users").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "wallet_address", "display_name", "created_at"}))

	repo, err := NewPostgresRepository(db, time.Second)
	require.NoError(t, err)

	_, err = repo.GetByWallet(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
