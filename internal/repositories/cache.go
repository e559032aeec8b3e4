package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zenithpay/wallet-ledger/internal/logger"
	"github.com/zenithpay/wallet-ledger/internal/models"
)

// ConfigCacheRepository caches fee configurations and transfer limits in
// Redis. Both change only through the admin surface, so a short TTL keeps
// transfer-time lookups off Postgres without an invalidation protocol.
type ConfigCacheRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewConfigCacheRepository(rdb *redis.Client, ttl time.Duration) *ConfigCacheRepository {
	return &ConfigCacheRepository{rdb: rdb, ttl: ttl}
}

func feeConfigKey(category, userType string) string {
	return fmt.Sprintf("fee_config:%s:%s", category, userType)
}

func transferLimitKey(userType string) string {
	return fmt.Sprintf("transfer_limit:%s", userType)
}

// GetFeeConfig returns the cached fee config or nil on a miss. Cache errors
// degrade to a miss; the caller falls through to Postgres.
func (r *ConfigCacheRepository) GetFeeConfig(ctx context.Context, category, userType string) (*models.FeeConfig, error) {
	data, err := r.rdb.Get(ctx, feeConfigKey(category, userType)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Warnw("fee config cache read failed", "category", category, "user_type", userType, "error", err)
		return nil, nil
	}

	var cfg models.FeeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.Log.Warnw("fee config cache payload invalid", "category", category, "user_type", userType, "error", err)
		return nil, nil
	}
	return &cfg, nil
}

// SetFeeConfig stores a fee config under its (category, user_type) key.
func (r *ConfigCacheRepository) SetFeeConfig(ctx context.Context, cfg *models.FeeConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, feeConfigKey(cfg.Category, cfg.UserType), data, r.ttl).Err()
}

// GetTransferLimit returns the cached tier limits or nil on a miss.
func (r *ConfigCacheRepository) GetTransferLimit(ctx context.Context, userType string) (*models.TransferLimit, error) {
	data, err := r.rdb.Get(ctx, transferLimitKey(userType)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Warnw("transfer limit cache read failed", "user_type", userType, "error", err)
		return nil, nil
	}

	var limit models.TransferLimit
	if err := json.Unmarshal(data, &limit); err != nil {
		logger.Log.Warnw("transfer limit cache payload invalid", "user_type", userType, "error", err)
		return nil, nil
	}
	return &limit, nil
}

// SetTransferLimit stores tier limits under their user_type key.
func (r *ConfigCacheRepository) SetTransferLimit(ctx context.Context, limit *models.TransferLimit) error {
	data, err := json.Marshal(limit)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, transferLimitKey(limit.UserType), data, r.ttl).Err()
}
