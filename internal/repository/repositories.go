package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Common repository errors
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Repositories holds all repository instances
type Repositories struct {
	Company CompanyRepository
	Party   PartyRepository
	Invoice InvoiceRepository
	Ledger  LedgerRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Company: NewCompanyRepository(db),
		Party:   NewPartyRepository(db),
		Invoice: NewInvoiceRepository(db),
		Ledger:  NewLedgerRepository(db),
	}
}

func newID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

// translate maps driver errors onto repository errors
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}

// affected turns a zero-row update or delete into ErrNotFound
func affected(result *gorm.DB) error {
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
