package handlers

import (
	"context"

	"go.uber.org/zap"

	"wordhoard-backend/application/commands"
	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/domain/core/valueobjects"
	apperrors "wordhoard-backend/pkg/errors"
)

// AccountHandler handles account lifecycle and profile commands
type AccountHandler struct {
	accounts ports.AccountRepository
	locks    ports.LockManager
	adminCap *valueobjects.AdminCap
	eventBus ports.EventPublisher
	logger   *zap.Logger
}

// NewAccountHandler creates a new account command handler
func NewAccountHandler(
	accounts ports.AccountRepository,
	locks ports.LockManager,
	adminCap *valueobjects.AdminCap,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		locks:    locks,
		adminCap: adminCap,
		eventBus: eventBus,
		logger:   logger,
	}
}

// HandleCreateAccount executes the create account command
func (h *AccountHandler) HandleCreateAccount(ctx context.Context, cmd *commands.CreateAccountCommand) (*commands.CreateAccountResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	account := aggregates.NewAccount()
	if cmd.DisplayName != "" || cmd.Bio != "" {
		account.SetProfile(cmd.DisplayName, cmd.Bio)
	}

	if err := h.accounts.Save(ctx, account); err != nil {
		return nil, apperrors.Wrap(err, "failed to save account")
	}

	publishEvents(ctx, h.eventBus, h.logger, account.GetUncommittedEvents())
	account.MarkEventsAsCommitted()

	h.logger.Info("account created", zap.String("accountID", account.ID().String()))

	return &commands.CreateAccountResult{AccountID: account.ID().String()}, nil
}

// HandleUpdateProfile executes the update profile command
func (h *AccountHandler) HandleUpdateProfile(ctx context.Context, cmd *commands.UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, accountKey(cmd.AccountID))
	if err != nil {
		return err
	}
	defer release()

	account, err := h.accounts.GetByID(ctx, valueobjects.AccountID(cmd.AccountID))
	if err != nil {
		return err
	}

	account.SetProfile(cmd.DisplayName, cmd.Bio)

	if err := h.accounts.Save(ctx, account); err != nil {
		return apperrors.Wrap(err, "failed to save account")
	}

	publishEvents(ctx, h.eventBus, h.logger, account.GetUncommittedEvents())
	account.MarkEventsAsCommitted()

	return nil
}

// HandleAppendLetters executes the admin-gated append letters command.
// Letters normally enter the ledger only through claims; this is the
// bootstrap and compensation path.
func (h *AccountHandler) HandleAppendLetters(ctx context.Context, cmd *commands.AppendLettersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.adminCap.Authorize(cmd.AdminToken); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, accountKey(cmd.AccountID))
	if err != nil {
		return err
	}
	defer release()

	account, err := h.accounts.GetByID(ctx, valueobjects.AccountID(cmd.AccountID))
	if err != nil {
		return err
	}

	normalized := account.AppendLetters(cmd.Letters)

	if err := h.accounts.Save(ctx, account); err != nil {
		return apperrors.Wrap(err, "failed to save account")
	}

	publishEvents(ctx, h.eventBus, h.logger, account.GetUncommittedEvents())
	account.MarkEventsAsCommitted()

	h.logger.Info("letters appended",
		zap.String("accountID", cmd.AccountID),
		zap.Int("count", len(normalized)),
	)

	return nil
}

// HandleAddBookmark executes the add bookmark command
func (h *AccountHandler) HandleAddBookmark(ctx context.Context, cmd *commands.AddBookmarkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, accountKey(cmd.AccountID))
	if err != nil {
		return err
	}
	defer release()

	account, err := h.accounts.GetByID(ctx, valueobjects.AccountID(cmd.AccountID))
	if err != nil {
		return err
	}

	if err := account.AddBookmark(valueobjects.ContentRef(cmd.Ref), cmd.Kind, cmd.Note); err != nil {
		return err
	}

	if err := h.accounts.Save(ctx, account); err != nil {
		return apperrors.Wrap(err, "failed to save account")
	}

	publishEvents(ctx, h.eventBus, h.logger, account.GetUncommittedEvents())
	account.MarkEventsAsCommitted()

	return nil
}

// HandleRemoveBookmark executes the remove bookmark command
func (h *AccountHandler) HandleRemoveBookmark(ctx context.Context, cmd *commands.RemoveBookmarkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, accountKey(cmd.AccountID))
	if err != nil {
		return err
	}
	defer release()

	account, err := h.accounts.GetByID(ctx, valueobjects.AccountID(cmd.AccountID))
	if err != nil {
		return err
	}

	if err := account.RemoveBookmark(valueobjects.ContentRef(cmd.Ref)); err != nil {
		return err
	}

	if err := h.accounts.Save(ctx, account); err != nil {
		return apperrors.Wrap(err, "failed to save account")
	}

	publishEvents(ctx, h.eventBus, h.logger, account.GetUncommittedEvents())
	account.MarkEventsAsCommitted()

	return nil
}
