package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/services"
)

// Registerer defines the interface for user registration.
type Registerer interface {
	Register(ctx context.Context, username, password, email, userType, currency string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// User tier: standard, agent, agent_plus or merchant; defaults to standard
	UserType string `json:"user_type,omitempty"`

	// Wallet currency
	// example: USD
	Currency string `json:"currency"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler registering a user and
// provisioning their primary wallet.
// @Summary Register user
// @Description Creates a user and their primary wallet in one unit of work.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.RegisterResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username or email taken"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode register request", "error", err)
			writeBadRequest(w, "Invalid request body")
			return
		}

		if req.Username == "" || req.Password == "" || req.Email == "" {
			writeBadRequest(w, "Username, password and email are required")
			return
		}
		if req.Currency == "" {
			req.Currency = "USD"
		}

		err := svc.Register(ctx, req.Username, req.Password, req.Email, req.UserType, req.Currency)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrUnknownUserType):
				writeBadRequest(w, err.Error())
			default:
				logger.Log.Errorw("failed to register user", "username", req.Username, "error", err)
				writeError(w, err)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{Message: "User registered successfully"})
	}
}
