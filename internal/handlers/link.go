package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
	"github.com/zenithpay/wallet-ledger/internal/services"
)

// LinkCreator defines the service interface for issuing transfer links.
type LinkCreator interface {
	CreateLink(ctx context.Context, senderID uuid.UUID, recipientID *uuid.UUID, amount decimal.Decimal, currency string, ttl time.Duration) (*models.TransferLink, error)
}

// LinkClaimer defines the service interface for claiming transfer links.
type LinkClaimer interface {
	Claim(ctx context.Context, token string, claimantID uuid.UUID) (*models.Transfer, error)
}

// CreateLinkRequest represents the JSON body for issuing a transfer link
// swagger:model CreateLinkRequest
type CreateLinkRequest struct {
	// Amount the claimant will receive a transfer for
	// required: true
	// example: 25.00
	Amount decimal.Decimal `json:"amount"`

	// Currency
	// required: true
	// example: USD
	Currency string `json:"currency"`

	// Optional recipient the link is bound to
	RecipientID *string `json:"recipient_id,omitempty"`

	// Link lifetime in seconds; the server default applies when omitted
	TTLSeconds int `json:"ttl_seconds,omitempty"`
}

// LinkView is the JSON rendering of a transfer link
// swagger:model LinkView
type LinkView struct {
	// Claim token
	Token string `json:"token"`

	// Amount
	// example: 25.00
	Amount string `json:"amount"`

	// Currency
	// example: USD
	Currency string `json:"currency"`

	// Status: pending, claimed, expired or cancelled
	Status string `json:"status"`

	// Expiry deadline
	ExpiresAt time.Time `json:"expires_at"`

	// Funded transfer id once claimed
	TransferID string `json:"transfer_id,omitempty"`
}

func newLinkView(l *models.TransferLink) LinkView {
	v := LinkView{
		Token:     l.Token,
		Amount:    l.Amount.StringFixed(2),
		Currency:  l.Currency,
		Status:    l.Status,
		ExpiresAt: l.ExpiresAt,
	}
	if l.TransferID != nil {
		v.TransferID = l.TransferID.String()
	}
	return v
}

// NewCreateLinkHandler returns an HTTP handler issuing a claimable transfer
// link from the authenticated sender. No funds move until claim time.
// @Summary Create a transfer link
// @Tags transfer-links
// @Accept json
// @Produce json
// @Param request body handlers.CreateLinkRequest true "Link Request"
// @Success 200 {object} handlers.LinkView
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /transfer-links [post]
// @Security BearerAuth
func NewCreateLinkHandler(
	svc LinkCreator,
	authz Authorizer,
	tokenGetter TransferTokener,
	defaultTTL, maxTTL time.Duration,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		if err := authz.Require(claims.Role, services.PermLinkCreate); err != nil {
			writeError(w, err)
			return
		}

		var req CreateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode link request", "error", err)
			writeBadRequest(w, "Invalid request body")
			return
		}

		if !req.Amount.IsPositive() {
			writeBadRequest(w, "Invalid amount")
			return
		}

		ttl := defaultTTL
		if req.TTLSeconds > 0 {
			ttl = time.Duration(req.TTLSeconds) * time.Second
		}
		if ttl > maxTTL {
			ttl = maxTTL
		}

		var recipientID *uuid.UUID
		if req.RecipientID != nil {
			id, err := uuid.Parse(*req.RecipientID)
			if err != nil {
				writeBadRequest(w, "Invalid recipient id")
				return
			}
			recipientID = &id
		}

		link, err := svc.CreateLink(ctx, claims.UserID, recipientID, req.Amount, req.Currency, ttl)
		if err != nil {
			logger.Log.Errorw("failed to create transfer link", "sender_id", claims.UserID, "error", err)
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newLinkView(link))
	}
}

// NewClaimLinkHandler returns an HTTP handler redeeming a transfer link for
// the authenticated claimant.
// @Summary Claim a transfer link
// @Description Funds a transfer from the link's sender to the authenticated claimant. A link funds at most one transfer; concurrent claims lose with a conflict.
// @Tags transfer-links
// @Produce json
// @Param token path string true "Link token"
// @Success 200 {object} handlers.TransferView "Transfer completed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Unknown token"
// @Failure 409 {object} handlers.ErrorResponse "Already claimed or cancelled"
// @Failure 410 {object} handlers.ErrorResponse "Expired"
// @Router /transfer-links/{token}/claim [post]
// @Security BearerAuth
func NewClaimLinkHandler(
	svc LinkClaimer,
	authz Authorizer,
	tokenGetter TransferTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		if err := authz.Require(claims.Role, services.PermLinkClaim); err != nil {
			writeError(w, err)
			return
		}

		token := chi.URLParam(r, "token")
		if token == "" {
			writeBadRequest(w, "Missing link token")
			return
		}

		transfer, err := svc.Claim(ctx, token, claims.UserID)
		if err != nil {
			logger.Log.Warnw("link claim declined", "claimant_id", claims.UserID, "error", err)
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newTransferView(transfer))
	}
}
