package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imagefeed/internal/client/models"
	"github.com/dmitrijs2005/imagefeed/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/imagefeed/internal/common"
	"github.com/dmitrijs2005/imagefeed/internal/cryptox"
	"github.com/dmitrijs2005/imagefeed/internal/dbx"
)

var ErrEmptySecret = errors.New("storage secret is empty")

// RepositoryFactory binds a credentials repository to a handle, either the
// database itself or a transaction on it.
type RepositoryFactory func(db dbx.DBTX) credentials.Repository

func sqliteRepository(db dbx.DBTX) credentials.Repository {
	return credentials.NewSQLiteRepository(db)
}

// CredentialStore keeps the single active access credential in the local
// database, sealed with a key derived from the storage secret.
type CredentialStore struct {
	db      *sql.DB
	secret  []byte
	newRepo RepositoryFactory
}

func NewCredentialStore(db *sql.DB, secret []byte) (*CredentialStore, error) {
	return NewCredentialStoreWithRepository(db, secret, sqliteRepository)
}

// NewCredentialStoreWithRepository is NewCredentialStore with a custom
// repository implementation.
func NewCredentialStoreWithRepository(db *sql.DB, secret []byte, newRepo RepositoryFactory) (*CredentialStore, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if newRepo == nil {
		newRepo = sqliteRepository
	}
	return &CredentialStore{db: db, secret: secret, newRepo: newRepo}, nil
}

// Get returns the stored credential, or "" and nil when there is none.
// A row that cannot be opened with the current secret yields
// common.ErrorCorruptedCredential.
func (s *CredentialStore) Get(ctx context.Context) (models.Credential, error) {
	rec, err := s.newRepo(s.db).Get(ctx, common.CredentialName)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", nil
	}

	key := cryptox.DeriveKey(s.secret, rec.Salt)
	defer common.WipeByteArray(key)

	plain, err := cryptox.Open(rec.Ciphertext, rec.Nonce, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorCorruptedCredential, err)
	}
	defer common.WipeByteArray(plain)

	return models.Credential(plain), nil
}

// Set replaces whatever was stored with credential in one transaction.
func (s *CredentialStore) Set(ctx context.Context, credential models.Credential) error {
	if credential == "" {
		return ErrEmptyCredential
	}

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	key := cryptox.DeriveKey(s.secret, salt)
	defer common.WipeByteArray(key)

	ciphertext, nonce, err := cryptox.Seal([]byte(credential), key)
	if err != nil {
		return fmt.Errorf("seal error: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		return repo.Put(ctx, &credentials.Record{
			Name:       common.CredentialName,
			Ciphertext: ciphertext,
			Nonce:      nonce,
			Salt:       salt,
		})
	})
}

// Clear forgets the stored credential (logout).
func (s *CredentialStore) Clear(ctx context.Context) error {
	return s.newRepo(s.db).Delete(ctx, common.CredentialName)
}
