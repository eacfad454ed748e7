package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database. Only the
// opening balance is stored; the effective balance is derived from the
// transaction log on read.
type AccountModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Kind           string          `gorm:"type:varchar(20);index;not null"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Linked         bool            `gorm:"default:false"`
	CardExpiry     string          `gorm:"type:varchar(5)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Kind:           entity.AccountKind(m.Kind),
		OpeningBalance: m.OpeningBalance,
		Linked:         m.Linked,
		CardExpiry:     m.CardExpiry,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:             account.ID,
		UserID:         account.UserID,
		Name:           account.Name,
		Kind:           string(account.Kind),
		OpeningBalance: account.OpeningBalance,
		Linked:         account.Linked,
		CardExpiry:     account.CardExpiry,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}
