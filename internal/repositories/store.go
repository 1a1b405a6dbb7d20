package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store groups the repositories bound to one database handle, so a service
// can run several of them inside one transaction.
type Store struct {
	db *gorm.DB

	Users       UserRepository
	Wallets     WalletRepository
	Entries     EntryRepository
	Access      AccessRepository
	Invitations InvitationRepository
	Tags        TagRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		Users:       NewUserRepository(db),
		Wallets:     NewWalletRepository(db),
		Entries:     NewEntryRepository(db),
		Access:      NewAccessRepository(db),
		Invitations: NewInvitationRepository(db),
		Tags:        NewTagRepository(db),
	}
}

// ExecuteInTransaction runs fn with a Store bound to a single transaction.
// Any error returned by fn rolls the transaction back.
func (s *Store) ExecuteInTransaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
