package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fundflow/internal/models/db_models"
)

type AccountRepository interface {
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	UpdateCustomerID(ctx context.Context, id string, customerID string) error
	UpdateConnectedAccount(ctx context.Context, id string, connectedAccountID, link *string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdateCustomerID(ctx context.Context, id string, customerID string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("customer_id", customerID).Error
}

// UpdateConnectedAccount writes both processor-side columns in a single
// update so set and clear are atomic. Passing nils clears them together.
func (a *accountRepository) UpdateConnectedAccount(ctx context.Context, id string, connectedAccountID, link *string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"connected_account_id":   connectedAccountID,
			"connected_account_link": link,
		}).Error
}
