package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/jwt"
	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
	"github.com/zenithpay/wallet-ledger/internal/services"
)

// TransferTokener defines only the methods needed by the transfer handlers.
type TransferTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransferCreator defines the service interface for creating transfers.
type TransferCreator interface {
	Transfer(ctx context.Context, cmd services.TransferCommand) (*models.Transfer, error)
}

// TransferGetter defines the service interface for reading transfer status.
type TransferGetter interface {
	GetStatus(ctx context.Context, transferID uuid.UUID) (*models.Transfer, error)
}

// Authorizer checks role permissions before ledger calls.
type Authorizer interface {
	Require(role string, perm services.Permission) error
}

// TransferView is the JSON rendering of a transfer record
// swagger:model TransferView
type TransferView struct {
	// Transfer id
	TransferID string `json:"transfer_id"`

	// Sender user id
	SenderID string `json:"sender_id"`

	// Recipient user id
	RecipientID string `json:"recipient_id"`

	// Gross amount debited from the sender
	// example: 100.00
	Amount string `json:"amount"`

	// Platform fee retained
	// example: 1.00
	Fee string `json:"fee"`

	// Net amount credited to the recipient
	// example: 99.00
	NetAmount string `json:"net_amount"`

	// Currency
	// example: USD
	Currency string `json:"currency"`

	// Transfer method
	// example: p2p
	Method string `json:"method"`

	// Status: pending, completed, failed or reversed
	Status string `json:"status"`

	// Decline code when status is failed
	ErrorCode string `json:"error_code,omitempty"`

	// Decline reason when status is failed
	ErrorMessage string `json:"error_message,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ReversedAt  *time.Time `json:"reversed_at,omitempty"`
}

func newTransferView(t *models.Transfer) TransferView {
	v := TransferView{
		TransferID:  t.TransferID.String(),
		SenderID:    t.SenderUserID.String(),
		RecipientID: t.RecipientUserID.String(),
		Amount:      t.Amount.StringFixed(2),
		Fee:         t.Fee.StringFixed(2),
		NetAmount:   t.NetAmount.StringFixed(2),
		Currency:    t.Currency,
		Method:      t.Method,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
		ReversedAt:  t.ReversedAt,
	}
	if t.ErrorCode != nil {
		v.ErrorCode = *t.ErrorCode
	}
	if t.ErrorMessage != nil {
		v.ErrorMessage = *t.ErrorMessage
	}
	return v
}

// CreateTransferRequest represents the JSON body for creating a transfer
// swagger:model CreateTransferRequest
type CreateTransferRequest struct {
	// Recipient user id
	// required: true
	RecipientID string `json:"recipient_id"`

	// Amount to transfer
	// required: true
	// example: 100.00
	Amount decimal.Decimal `json:"amount"`

	// Currency
	// required: true
	// example: USD
	Currency string `json:"currency"`

	// Client-supplied idempotency key; retries with the same key are safe
	// required: true
	IdempotencyKey string `json:"idempotency_key"`

	// Optional note to the recipient
	Note *string `json:"note,omitempty"`
}

// NewCreateTransferHandler returns an HTTP handler creating a P2P transfer
// from the authenticated user to the recipient.
// @Summary Create a P2P transfer
// @Description Moves funds from the authenticated sender to a recipient wallet, net of the platform fee. Declined transfers return a structured reason and are recorded for auditing.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body handlers.CreateTransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferView "Transfer completed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Transfer declined"
// @Router /transfers [post]
// @Security BearerAuth
func NewCreateTransferHandler(
	svc TransferCreator,
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

		if err := authz.Require(claims.Role, services.PermTransferCreate); err != nil {
			writeError(w, err)
			return
		}

		var req CreateTransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode transfer request", "error", err)
			writeBadRequest(w, "Invalid request body")
			return
		}

		recipientID, err := uuid.Parse(req.RecipientID)
		if err != nil {
			writeBadRequest(w, "Invalid recipient id")
			return
		}
		if req.IdempotencyKey == "" {
			writeBadRequest(w, "Missing idempotency key")
			return
		}
		if !req.Amount.IsPositive() {
			writeBadRequest(w, "Invalid amount")
			return
		}

		transfer, err := svc.Transfer(ctx, services.TransferCommand{
			SenderID:       claims.UserID,
			RecipientID:    recipientID,
			Amount:         req.Amount,
			Currency:       req.Currency,
			IdempotencyKey: req.IdempotencyKey,
			Method:         models.TransferMethodP2P,
			Note:           req.Note,
		})
		if err != nil {
			// A declined transfer still carries its audit record.
			if transfer != nil && errs.IsBusiness(err) {
				writeDecline(w, err, transfer)
				return
			}
			logger.Log.Errorw("transfer failed", "sender_id", claims.UserID, "error", err)
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newTransferView(transfer))
	}
}

// NewGetTransferHandler returns an HTTP handler reading a transfer's status.
// @Summary Get transfer status
// @Tags transfers
// @Produce json
// @Param transferID path string true "Transfer id"
// @Success 200 {object} handlers.TransferView
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /transfers/{transferID} [get]
// @Security BearerAuth
func NewGetTransferHandler(
	svc TransferGetter,
	tokenGetter TransferTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		transferID, err := uuid.Parse(chi.URLParam(r, "transferID"))
		if err != nil {
			writeBadRequest(w, "Invalid transfer id")
			return
		}

		transfer, err := svc.GetStatus(ctx, transferID)
		if err != nil {
			writeError(w, err)
			return
		}

		// Participants only.
		if transfer.SenderUserID != claims.UserID && transfer.RecipientUserID != claims.UserID &&
			claims.Role != models.TierAdmin {
			writeError(w, errs.ErrTransferNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newTransferView(transfer))
	}
}

func claimsFromRequest(ctx context.Context, tokenGetter TransferTokener, r *http.Request) (*jwt.Claims, error) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		return nil, err
	}
	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		return nil, err
	}
	return claims, nil
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

// DeclineResponse couples the structured decline reason with the recorded
// failed transfer.
// swagger:model DeclineResponse
type DeclineResponse struct {
	Code     string       `json:"code"`
	Error    string       `json:"error"`
	Transfer TransferView `json:"transfer"`
}

func writeDecline(w http.ResponseWriter, err error, t *models.Transfer) {
	code := errs.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusUnprocessableEntity
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(DeclineResponse{
		Code:     code,
		Error:    err.Error(),
		Transfer: newTransferView(t),
	})
}
