package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownUserType    = errors.New("unknown user type")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, email, userType string) (uuid.UUID, error)
}

// WalletProvisioner creates the user's primary wallet during onboarding.
type WalletProvisioner interface {
	Create(ctx context.Context, wallet *models.Wallet) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role string) (string, error)
}

// AuthService handles registration and login. Registration provisions the
// user's primary wallet in the same unit of work as the user row, seeded
// with the tier's limits, so a registered user always has a wallet.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	wallets WalletProvisioner
	limits  TransferLimitGetter
	tx      TxRunner
	jwt     JWTGenerator
}

func NewAuthService(
	reader UserReader,
	writer UserWriter,
	wallets WalletProvisioner,
	limits TransferLimitGetter,
	tx TxRunner,
	jwt JWTGenerator,
) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		wallets: wallets,
		limits:  limits,
		tx:      tx,
		jwt:     jwt,
	}
}

// Register creates a user and their primary wallet.
func (svc *AuthService) Register(ctx context.Context, username, password, email, userType, currency string) error {
	if userType == "" {
		userType = models.TierStandard
	}
	switch userType {
	case models.TierStandard, models.TierAgent, models.TierAgentPlus, models.TierMerchant:
	default:
		return ErrUnknownUserType
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.tx.Do(ctx, func(ctx context.Context) error {
		userID, err := svc.writer.Save(ctx, username, string(hashedPassword), email, userType)
		if err != nil {
			logger.Log.Errorw("failed to save user", "err", err)
			return err
		}

		wallet := &models.Wallet{
			WalletID: uuid.New(),
			UserID:   &userID,
			Currency: currency,
		}
		if limit, err := svc.limits.GetActive(ctx, userType); err == nil && limit != nil {
			wallet.DailyLimit = decimal.NewNullDecimal(limit.DailyLimit)
			wallet.MonthlyLimit = decimal.NewNullDecimal(limit.MonthlyLimit)
			wallet.PerTransactionLimit = decimal.NewNullDecimal(limit.PerTransactionLimit)
		}

		if err := svc.wallets.Create(ctx, wallet); err != nil {
			logger.Log.Errorw("failed to provision wallet", "user_id", userID, "err", err)
			return err
		}
		return nil
	})
}

// Login authenticates a user and returns a JWT token carrying the user id
// and role.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.UserType)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
