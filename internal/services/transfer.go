package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
	"github.com/zenithpay/wallet-ledger/internal/repositories"
)

// WalletLedger is the sole mutation path for wallet balances.
type WalletLedger interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	LockPair(ctx context.Context, a, b uuid.UUID) (map[uuid.UUID]*models.Wallet, error)
	Debit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, allowFrozen bool) (decimal.Decimal, error)
}

// UserGetter reads users for tier resolution.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// TransferStore persists transfer records.
type TransferStore interface {
	Save(ctx context.Context, t *models.Transfer) error
	GetByIdempotencyKey(ctx context.Context, key string) (*models.Transfer, error)
	GetByID(ctx context.Context, transferID uuid.UUID) (*models.Transfer, error)
	MarkReversed(ctx context.Context, transferID uuid.UUID, reversedAt time.Time) error
}

// TotalsWriter updates the per-day aggregates on completed transfers.
type TotalsWriter interface {
	RecordSend(ctx context.Context, userID uuid.UUID, date time.Time, amount decimal.Decimal) error
	RecordReceive(ctx context.Context, userID uuid.UUID, date time.Time, amount decimal.Decimal) error
}

// FeeCalculator computes the platform fee for a transfer.
type FeeCalculator interface {
	Compute(ctx context.Context, amount decimal.Decimal, category, userType string) (decimal.Decimal, error)
}

// LimitChecker validates an amount against the sender tier's caps.
type LimitChecker interface {
	Check(ctx context.Context, userID uuid.UUID, userType string, amount decimal.Decimal, today time.Time) error
}

// TxRunner executes a function inside one atomic unit of work.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventWriter publishes transfer events to Kafka.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// TransferCommand is a request to move funds between two users' wallets.
type TransferCommand struct {
	SenderID       uuid.UUID
	RecipientID    uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	IdempotencyKey string
	Method         string
	Note           *string
}

// TransferEvent is the Kafka payload published for completed and reversed
// transfers.
type TransferEvent struct {
	TransferID  string `json:"transfer_id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Amount      string `json:"amount"`
	Fee         string `json:"fee"`
	NetAmount   string `json:"net_amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Timestamp   int64  `json:"timestamp"`
}

// TransferService orchestrates P2P transfers: idempotency, validation, fee
// computation, limit enforcement, the atomic debit/credit pair, the transfer
// record and the daily aggregates.
type TransferService struct {
	wallets   WalletLedger
	users     UserGetter
	transfers TransferStore
	totals    TotalsWriter
	fees      FeeCalculator
	limits    LimitChecker
	tx        TxRunner
	events    EventWriter
}

func NewTransferService(
	wallets WalletLedger,
	users UserGetter,
	transfers TransferStore,
	totals TotalsWriter,
	fees FeeCalculator,
	limits LimitChecker,
	tx TxRunner,
	events EventWriter,
) *TransferService {
	return &TransferService{
		wallets:   wallets,
		users:     users,
		transfers: transfers,
		totals:    totals,
		fees:      fees,
		limits:    limits,
		tx:        tx,
		events:    events,
	}
}

// Transfer executes a P2P transfer. Retries with the same idempotency key
// return the original record without any new mutation. Business declines
// roll back the unit of work, persist a failed record for auditing and
// return it together with the business error; infrastructure failures leave
// no record and must be retried by the caller with the same key.
func (s *TransferService) Transfer(ctx context.Context, cmd TransferCommand) (*models.Transfer, error) {
	existing, err := s.transfers.GetByIdempotencyKey(ctx, cmd.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("idempotent replay", "idempotency_key", cmd.IdempotencyKey, "transfer_id", existing.TransferID)
		return existing, nil
	}

	var completed *models.Transfer
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		t, err := s.execute(ctx, cmd)
		completed = t
		return err
	})
	if err == nil {
		s.publish(ctx, completed)
		return completed, nil
	}

	// Lost the idempotency-key race: the winner's record is the result.
	if errors.Is(err, repositories.ErrDuplicateKey) {
		winner, readErr := s.transfers.GetByIdempotencyKey(ctx, cmd.IdempotencyKey)
		if readErr != nil {
			return nil, readErr
		}
		if winner != nil {
			return winner, nil
		}
		return nil, err
	}

	if errs.IsBusiness(err) {
		return s.recordFailure(ctx, cmd, err), err
	}
	return nil, err
}

// execute runs inside the unit of work. Lock acquisition, validation, fee,
// limits, the debit/credit pair and the record/aggregate writes all see one
// transaction; any error rolls the whole unit back.
func (s *TransferService) execute(ctx context.Context, cmd TransferCommand) (*models.Transfer, error) {
	if cmd.SenderID == cmd.RecipientID {
		return nil, errs.ErrSelfTransferNotAllowed
	}
	if !cmd.Amount.IsPositive() {
		return nil, errs.ErrInvalidAmount
	}

	sender, err := s.users.GetByID(ctx, cmd.SenderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, errs.ErrWalletNotFound
	}

	senderWallet, err := s.wallets.GetByUserID(ctx, cmd.SenderID)
	if err != nil {
		return nil, err
	}
	recipientWallet, err := s.wallets.GetByUserID(ctx, cmd.RecipientID)
	if err != nil {
		return nil, err
	}
	if senderWallet == nil || recipientWallet == nil {
		return nil, errs.ErrWalletNotFound
	}

	locked, err := s.wallets.LockPair(ctx, senderWallet.WalletID, recipientWallet.WalletID)
	if err != nil {
		return nil, err
	}
	senderWallet = locked[senderWallet.WalletID]
	recipientWallet = locked[recipientWallet.WalletID]
	if senderWallet == nil || recipientWallet == nil {
		return nil, errs.ErrWalletNotFound
	}

	if err := validateWallet(senderWallet); err != nil {
		return nil, err
	}
	if err := validateWallet(recipientWallet); err != nil {
		return nil, err
	}
	if senderWallet.Currency != recipientWallet.Currency || senderWallet.Currency != cmd.Currency {
		return nil, errs.ErrCurrencyMismatch
	}

	fee, err := s.fees.Compute(ctx, cmd.Amount, models.FeeCategoryP2P, sender.UserType)
	if err != nil {
		return nil, err
	}
	net := cmd.Amount.Sub(fee)
	if !net.IsPositive() {
		return nil, errs.ErrBelowMinimum
	}

	now := time.Now().UTC()
	if err := s.limits.Check(ctx, cmd.SenderID, sender.UserType, cmd.Amount, now); err != nil {
		return nil, err
	}

	if senderWallet.AvailableBalance.LessThan(cmd.Amount) {
		return nil, errs.ErrInsufficientFunds
	}

	if _, err := s.wallets.Debit(ctx, senderWallet.WalletID, cmd.Amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrInsufficientFunds
		}
		return nil, err
	}
	if _, err := s.wallets.Credit(ctx, recipientWallet.WalletID, net, false); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrWalletFrozen
		}
		return nil, err
	}

	transfer := &models.Transfer{
		TransferID:        uuid.New(),
		IdempotencyKey:    cmd.IdempotencyKey,
		SenderUserID:      cmd.SenderID,
		RecipientUserID:   cmd.RecipientID,
		SenderWalletID:    senderWallet.WalletID,
		RecipientWalletID: recipientWallet.WalletID,
		Amount:            cmd.Amount,
		Fee:               fee,
		NetAmount:         net,
		Currency:          cmd.Currency,
		Method:            cmd.Method,
		Note:              cmd.Note,
		Status:            models.TransferStatusCompleted,
		CreatedAt:         now,
		CompletedAt:       &now,
	}
	if err := s.transfers.Save(ctx, transfer); err != nil {
		return nil, err
	}

	if err := s.totals.RecordSend(ctx, cmd.SenderID, now, cmd.Amount); err != nil {
		return nil, err
	}
	if err := s.totals.RecordReceive(ctx, cmd.RecipientID, now, net); err != nil {
		return nil, err
	}

	return transfer, nil
}

// Reverse applies the administrative completed→reversed transition: the
// recipient is debited the credited net amount and the sender refunded the
// full amount, inside one unit of work. The refund credit is allowed onto a
// frozen sender wallet.
func (s *TransferService) Reverse(ctx context.Context, transferID uuid.UUID) (*models.Transfer, error) {
	var reversed *models.Transfer
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		t, err := s.transfers.GetByID(ctx, transferID)
		if err != nil {
			return err
		}
		if t == nil {
			return errs.ErrTransferNotFound
		}
		if t.Status != models.TransferStatusCompleted {
			return errs.ErrTransferNotReversible
		}

		if _, err := s.wallets.LockPair(ctx, t.SenderWalletID, t.RecipientWalletID); err != nil {
			return err
		}

		if _, err := s.wallets.Debit(ctx, t.RecipientWalletID, t.NetAmount); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrInsufficientFunds
			}
			return err
		}
		if _, err := s.wallets.Credit(ctx, t.SenderWalletID, t.Amount, true); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := s.transfers.MarkReversed(ctx, t.TransferID, now); err != nil {
			return err
		}

		t.Status = models.TransferStatusReversed
		t.ReversedAt = &now
		reversed = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, reversed)
	return reversed, nil
}

// GetStatus returns a transfer by id.
func (s *TransferService) GetStatus(ctx context.Context, transferID uuid.UUID) (*models.Transfer, error) {
	t, err := s.transfers.GetByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errs.ErrTransferNotFound
	}
	return t, nil
}

// recordFailure persists a failed transfer attempt outside the rolled-back
// unit of work so the decline is auditable. Best effort: a duplicate key
// means another attempt already recorded the outcome.
func (s *TransferService) recordFailure(ctx context.Context, cmd TransferCommand, cause error) *models.Transfer {
	now := time.Now().UTC()
	code := errs.CodeOf(cause)
	msg := cause.Error()

	failed := &models.Transfer{
		TransferID:      uuid.New(),
		IdempotencyKey:  cmd.IdempotencyKey,
		SenderUserID:    cmd.SenderID,
		RecipientUserID: cmd.RecipientID,
		Amount:          cmd.Amount,
		Fee:             decimal.Zero,
		NetAmount:       decimal.Zero,
		Currency:        cmd.Currency,
		Method:          cmd.Method,
		Note:            cmd.Note,
		Status:          models.TransferStatusFailed,
		ErrorCode:       &code,
		ErrorMessage:    &msg,
		CreatedAt:       now,
	}

	if err := s.transfers.Save(repositories.DetachTx(ctx), failed); err != nil {
		logger.Log.Errorw("failed to record declined transfer",
			"idempotency_key", cmd.IdempotencyKey, "code", code, "error", err)
	}
	return failed
}

func validateWallet(w *models.Wallet) error {
	if !w.IsActive {
		return errs.ErrWalletInactive
	}
	if w.IsFrozen {
		return errs.ErrWalletFrozen
	}
	return nil
}

// publish emits the transfer event to Kafka. Event delivery is best effort
// and never fails the transfer, which has already committed.
func (s *TransferService) publish(ctx context.Context, t *models.Transfer) {
	if s.events == nil || t == nil {
		return
	}

	event := TransferEvent{
		TransferID:  t.TransferID.String(),
		SenderID:    t.SenderUserID.String(),
		RecipientID: t.RecipientUserID.String(),
		Amount:      t.Amount.String(),
		Fee:         t.Fee.String(),
		NetAmount:   t.NetAmount.String(),
		Currency:    t.Currency,
		Status:      t.Status,
		Timestamp:   time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transfer event", "transfer_id", event.TransferID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransferID),
		Value: data,
	}

	if err := s.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transfer event", "transfer_id", event.TransferID, "error", err)
	} else {
		logger.Log.Infow("transfer event published", "transfer_id", event.TransferID, "status", event.Status)
	}
}
