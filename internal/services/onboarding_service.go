package services

import (
	"context"

	"go.uber.org/zap"

	"fundflow/internal/gateway"
	"fundflow/internal/repositories"
	"fundflow/pkg/utils"
)

type OnboardingServiceInterface interface {
	BeginOnboarding(ctx context.Context, userID string) (string, error)
	CheckStatus(ctx context.Context, userID string) (*gateway.ConnectedAccount, error)
	DeleteOnboarding(ctx context.Context, userID string) error
}

type OnboardingService struct {
	accountRepo repositories.AccountRepository
	gw          gateway.PaymentGateway
	logger      *zap.Logger
}

func NewOnboardingService(accountRepo repositories.AccountRepository, gw gateway.PaymentGateway, logger *zap.Logger) OnboardingServiceInterface {
	return &OnboardingService{
		accountRepo: accountRepo,
		gw:          gw,
		logger:      logger,
	}
}

// BeginOnboarding drives the vendor through NotOnboarded -> Pending. It is
// safe to call repeatedly: an already-onboarded vendor gets the stored link
// back, and a vendor whose link creation previously failed gets a fresh link
// minted against the connected account persisted on the first attempt.
func (o *OnboardingService) BeginOnboarding(ctx context.Context, userID string) (string, error) {
	account, err := o.accountRepo.FindById(ctx, userID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if account.IsOnboarded() {
		if account.ConnectedAccountLink != nil && *account.ConnectedAccountLink != "" {
			return *account.ConnectedAccountLink, nil
		}

		// Account survived a failed link creation; retry only the link.
		link, err := o.gw.CreateAccountLink(ctx, *account.ConnectedAccountID)
		if err != nil {
			return "", err
		}
		if err := o.accountRepo.UpdateConnectedAccount(ctx, userID, account.ConnectedAccountID, &link.URL); err != nil {
			return "", utils.ErrDatabaseError
		}
		return link.URL, nil
	}

	connected, err := o.gw.CreateConnectedAccount(ctx, account.Email)
	if err != nil {
		return "", err
	}

	link, linkErr := o.gw.CreateAccountLink(ctx, connected.ID)
	if linkErr != nil {
		// Partial progress is recoverable: persist the account id even
		// though no link exists yet, then surface the failure.
		if err := o.accountRepo.UpdateConnectedAccount(ctx, userID, &connected.ID, nil); err != nil {
			o.logger.Error("failed to persist connected account after link failure",
				zap.String("user_id", userID),
				zap.String("account_id", connected.ID),
				zap.Error(err))
			return "", utils.ErrDatabaseError
		}
		return "", utils.ErrOnboardingLinkFailed
	}

	if err := o.accountRepo.UpdateConnectedAccount(ctx, userID, &connected.ID, &link.URL); err != nil {
		return "", utils.ErrDatabaseError
	}

	o.logger.Info("vendor onboarding started",
		zap.String("user_id", userID),
		zap.String("account_id", connected.ID))
	return link.URL, nil
}

func (o *OnboardingService) CheckStatus(ctx context.Context, userID string) (*gateway.ConnectedAccount, error) {
	account, err := o.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if !account.IsOnboarded() {
		return nil, utils.ErrNotOnboarded
	}

	// Capability flags are returned verbatim from the processor.
	return o.gw.RetrieveConnectedAccount(ctx, *account.ConnectedAccountID)
}

// DeleteOnboarding clears both processor columns in one update, and only
// after the gateway confirmed the deletion. A gateway failure leaves local
// state untouched.
func (o *OnboardingService) DeleteOnboarding(ctx context.Context, userID string) error {
	account, err := o.accountRepo.FindById(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}
	if !account.IsOnboarded() {
		return utils.ErrNotOnboarded
	}

	if err := o.gw.DeleteConnectedAccount(ctx, *account.ConnectedAccountID); err != nil {
		return err
	}

	if err := o.accountRepo.UpdateConnectedAccount(ctx, userID, nil, nil); err != nil {
		return utils.ErrDatabaseError
	}

	o.logger.Info("vendor onboarding deleted", zap.String("user_id", userID))
	return nil
}
