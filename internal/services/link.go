package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

// LinkStore persists transfer links.
type LinkStore interface {
	Save(ctx context.Context, link *models.TransferLink) error
	GetByTokenForUpdate(ctx context.Context, token string) (*models.TransferLink, error)
	MarkClaimed(ctx context.Context, linkID, transferID uuid.UUID, claimedAt time.Time) error
	MarkExpired(ctx context.Context, linkID uuid.UUID) error
	MarkCancelled(ctx context.Context, linkID uuid.UUID) error
}

// TransferMaker funds a claimed link through the regular transfer path.
type TransferMaker interface {
	Transfer(ctx context.Context, cmd TransferCommand) (*models.Transfer, error)
}

// linkTokenBytes gives 256 bits of entropy per token.
const linkTokenBytes = 32

// LinkService issues and redeems claimable, expiring payment links. Creating
// a link moves no funds; the transfer happens at claim time, keyed by the
// link token so a link funds at most one transfer.
type LinkService struct {
	links     LinkStore
	transfers TransferMaker
	tx        TxRunner
}

func NewLinkService(links LinkStore, transfers TransferMaker, tx TxRunner) *LinkService {
	return &LinkService{links: links, transfers: transfers, tx: tx}
}

// CreateLink issues a pending link that expires after ttl. recipientID may
// pre-bind the link to a single claimant.
func (s *LinkService) CreateLink(ctx context.Context, senderID uuid.UUID, recipientID *uuid.UUID, amount decimal.Decimal, currency string, ttl time.Duration) (*models.TransferLink, error) {
	if !amount.IsPositive() {
		return nil, errs.ErrInvalidAmount
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	link := &models.TransferLink{
		LinkID:      uuid.New(),
		Token:       token,
		SenderID:    senderID,
		RecipientID: recipientID,
		Amount:      amount,
		Currency:    currency,
		Status:      models.LinkStatusPending,
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
	}

	if err := s.links.Save(ctx, link); err != nil {
		logger.Log.Errorw("failed to save transfer link", "sender_id", senderID, "error", err)
		return nil, err
	}
	return link, nil
}

// Claim redeems a link for the claimant. The link row lock serializes
// concurrent claims; the transfer's idempotency key (the token) is the
// second line of defense. An expired link is lazily marked expired on this
// read and never moves funds.
func (s *LinkService) Claim(ctx context.Context, token string, claimantID uuid.UUID) (*models.Transfer, error) {
	var transfer *models.Transfer
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		link, err := s.links.GetByTokenForUpdate(ctx, token)
		if err != nil {
			return err
		}
		if link == nil {
			return errs.ErrLinkNotFound
		}

		switch link.Status {
		case models.LinkStatusPending:
		case models.LinkStatusClaimed:
			return errs.ErrLinkAlreadyClaimed
		case models.LinkStatusCancelled:
			return errs.ErrLinkCancelled
		default:
			return errs.ErrLinkExpired
		}

		now := time.Now().UTC()
		if now.After(link.ExpiresAt) {
			if err := s.links.MarkExpired(ctx, link.LinkID); err != nil {
				return err
			}
			return errs.ErrLinkExpired
		}

		if link.RecipientID != nil && *link.RecipientID != claimantID {
			return errs.ErrLinkNotClaimable
		}

		t, err := s.transfers.Transfer(ctx, TransferCommand{
			SenderID:       link.SenderID,
			RecipientID:    claimantID,
			Amount:         link.Amount,
			Currency:       link.Currency,
			IdempotencyKey: link.Token,
			Method:         models.TransferMethodLink,
		})
		if err != nil {
			return err
		}
		if t.Status != models.TransferStatusCompleted {
			// Replay of a previously declined claim: surface the recorded
			// decline instead of funding the link.
			if t.ErrorCode != nil {
				if recorded := errs.FromCode(*t.ErrorCode); recorded != nil {
					return recorded
				}
			}
			return errs.ErrLinkAlreadyClaimed
		}

		if err := s.links.MarkClaimed(ctx, link.LinkID, t.TransferID, now); err != nil {
			return err
		}
		transfer = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// Cancel voids a pending link on the sender's request.
func (s *LinkService) Cancel(ctx context.Context, token string, senderID uuid.UUID) error {
	return s.tx.Do(ctx, func(ctx context.Context) error {
		link, err := s.links.GetByTokenForUpdate(ctx, token)
		if err != nil {
			return err
		}
		if link == nil || link.SenderID != senderID {
			return errs.ErrLinkNotFound
		}

		switch link.Status {
		case models.LinkStatusPending:
			return s.links.MarkCancelled(ctx, link.LinkID)
		case models.LinkStatusClaimed:
			return errs.ErrLinkAlreadyClaimed
		case models.LinkStatusCancelled:
			return errs.ErrLinkCancelled
		default:
			return errs.ErrLinkExpired
		}
	})
}

// generateToken returns an unguessable URL-safe token.
func generateToken() (string, error) {
	buf := make([]byte, linkTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
