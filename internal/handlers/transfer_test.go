package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithpay/wallet-ledger/internal/errs"
	"github.com/zenithpay/wallet-ledger/internal/jwt"
	"github.com/zenithpay/wallet-ledger/internal/models"
	"github.com/zenithpay/wallet-ledger/internal/services"
)

func testTokener(t *testing.T, userID uuid.UUID, role string) (*jwt.JWT, string) {
	t.Helper()

	j := jwt.New("test-secret", time.Hour)
	token, err := j.Generate(context.Background(), userID, role)
	require.NoError(t, err)
	return j, token
}

func TestCreateTransferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	recipientID := uuid.New()
	tokener, token := testTokener(t, senderID, models.TierStandard)

	now := time.Now().UTC()
	completed := &models.Transfer{
		TransferID:      uuid.New(),
		IdempotencyKey:  "key-1",
		SenderUserID:    senderID,
		RecipientUserID: recipientID,
		Amount:          decimal.RequireFromString("100"),
		Fee:             decimal.RequireFromString("1.00"),
		NetAmount:       decimal.RequireFromString("99.00"),
		Currency:        "USD",
		Method:          models.TransferMethodP2P,
		Status:          models.TransferStatusCompleted,
		CreatedAt:       now,
		CompletedAt:     &now,
	}

	svc := NewMockTransferCreator(ctrl)
	svc.EXPECT().Transfer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd services.TransferCommand) (*models.Transfer, error) {
			assert.Equal(t, senderID, cmd.SenderID)
			assert.Equal(t, recipientID, cmd.RecipientID)
			assert.Equal(t, "key-1", cmd.IdempotencyKey)
			assert.Equal(t, models.TransferMethodP2P, cmd.Method)
			return completed, nil
		},
	)

	handler := NewCreateTransferHandler(svc, services.NewAuthzService(), tokener)

	body, _ := json.Marshal(CreateTransferRequest{
		RecipientID:    recipientID.String(),
		Amount:         decimal.RequireFromString("100"),
		Currency:       "USD",
		IdempotencyKey: "key-1",
	})
	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view TransferView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "100.00", view.Amount)
	assert.Equal(t, "1.00", view.Fee)
	assert.Equal(t, "99.00", view.NetAmount)
	assert.Equal(t, models.TransferStatusCompleted, view.Status)
}

func TestCreateTransferHandler_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	tokener, token := testTokener(t, senderID, models.TierStandard)

	code := errs.ErrInsufficientFunds.Code
	msg := errs.ErrInsufficientFunds.Message
	failed := &models.Transfer{
		TransferID:   uuid.New(),
		Status:       models.TransferStatusFailed,
		ErrorCode:    &code,
		ErrorMessage: &msg,
	}

	svc := NewMockTransferCreator(ctrl)
	svc.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(failed, errs.ErrInsufficientFunds)

	handler := NewCreateTransferHandler(svc, services.NewAuthzService(), tokener)

	body, _ := json.Marshal(CreateTransferRequest{
		RecipientID:    uuid.New().String(),
		Amount:         decimal.RequireFromString("100"),
		Currency:       "USD",
		IdempotencyKey: "key-poor",
	})
	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var decline DeclineResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&decline))
	assert.Equal(t, errs.ErrInsufficientFunds.Code, decline.Code)
	assert.Equal(t, models.TransferStatusFailed, decline.Transfer.Status)
	assert.Equal(t, errs.ErrInsufficientFunds.Code, decline.Transfer.ErrorCode)
}

func TestCreateTransferHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := jwt.New("test-secret", time.Hour)
	handler := NewCreateTransferHandler(NewMockTransferCreator(ctrl), services.NewAuthzService(), tokener)

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(nil))
	rec := httptest.NewRecorder()

	handler(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTransferHandler_PermissionDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, token := testTokener(t, uuid.New(), "unknown_role")
	handler := NewCreateTransferHandler(NewMockTransferCreator(ctrl), services.NewAuthzService(), tokener)

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(nil))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateTransferHandler_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, token := testTokener(t, uuid.New(), models.TierStandard)
	handler := NewCreateTransferHandler(NewMockTransferCreator(ctrl), services.NewAuthzService(), tokener)

	tests := []struct {
		name string
		req  CreateTransferRequest
	}{
		{
			name: "invalid recipient id",
			req: CreateTransferRequest{
				RecipientID:    "not-a-uuid",
				Amount:         decimal.RequireFromString("10"),
				Currency:       "USD",
				IdempotencyKey: "k",
			},
		},
		{
			name: "missing idempotency key",
			req: CreateTransferRequest{
				RecipientID: uuid.New().String(),
				Amount:      decimal.RequireFromString("10"),
				Currency:    "USD",
			},
		},
		{
			name: "non-positive amount",
			req: CreateTransferRequest{
				RecipientID:    uuid.New().String(),
				Amount:         decimal.Zero,
				Currency:       "USD",
				IdempotencyKey: "k",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.req)
			req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			handler(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetTransferHandler_ParticipantsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The caller is neither sender nor recipient.
	outsiderID := uuid.New()
	tokener, token := testTokener(t, outsiderID, models.TierStandard)

	transfer := &models.Transfer{
		TransferID:      uuid.New(),
		SenderUserID:    uuid.New(),
		RecipientUserID: uuid.New(),
		Amount:          decimal.RequireFromString("100"),
		Currency:        "USD",
		Status:          models.TransferStatusCompleted,
	}

	svc := NewMockTransferGetter(ctrl)
	svc.EXPECT().GetStatus(gomock.Any(), transfer.TransferID).Return(transfer, nil)

	r := chi.NewRouter()
	r.Get("/transfers/{transferID}", NewGetTransferHandler(svc, tokener))

	req := httptest.NewRequest(http.MethodGet, "/transfers/"+transfer.TransferID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTransferHandler_AsSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	tokener, token := testTokener(t, senderID, models.TierStandard)

	transfer := &models.Transfer{
		TransferID:      uuid.New(),
		SenderUserID:    senderID,
		RecipientUserID: uuid.New(),
		Amount:          decimal.RequireFromString("100"),
		Currency:        "USD",
		Status:          models.TransferStatusCompleted,
	}

	svc := NewMockTransferGetter(ctrl)
	svc.EXPECT().GetStatus(gomock.Any(), transfer.TransferID).Return(transfer, nil)

	r := chi.NewRouter()
	r.Get("/transfers/{transferID}", NewGetTransferHandler(svc, tokener))

	req := httptest.NewRequest(http.MethodGet, "/transfers/"+transfer.TransferID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var view TransferView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, transfer.TransferID.String(), view.TransferID)
}
