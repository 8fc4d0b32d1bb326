package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const ruleTokenKeyPrefix = "cobranca:rule:token:"

// NewRedisClientFromEnv creates the Redis client used by the rule cache.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (default: 0)
func NewRedisClientFromEnv() *redis.Client {
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			db = parsed
		}
	}
	return redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
}

// RuleCache is a read-through cache in front of the rule repository for the
// webhook hot path: every ingestion call resolves a rule by token, and rules
// change rarely. Redis faults never fail a request — the cache degrades to
// the repository.
//
// Writes invalidate by token (old and new) so a regenerated token stops
// resolving within one request, not one TTL.
type RuleCache struct {
	inner interfaces.IBillingRuleRepository
	rdb   *redis.Client
	ttl   time.Duration
}

var _ interfaces.IBillingRuleRepository = (*RuleCache)(nil)

func NewRuleCache(inner interfaces.IBillingRuleRepository, rdb *redis.Client) *RuleCache {
	ttl := 60 * time.Second
	if v := os.Getenv("RULE_CACHE_TTL_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ttl = time.Duration(parsed) * time.Second
		}
	}
	return &RuleCache{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *RuleCache) GetByToken(ctx context.Context, token string) (entities.BillingRule, error) {
	key := ruleTokenKeyPrefix + token

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var rule entities.BillingRule
		if err := json.Unmarshal(raw, &rule); err == nil {
			return rule, nil
		}
		log.Printf("[rule][cache] corrupt cache entry dropped key=%s", key)
		c.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[rule][cache] redis get failed, falling back err=%v", err)
	}

	rule, err := c.inner.GetByToken(ctx, token)
	if err != nil {
		return entities.BillingRule{}, err
	}
	if rule.ID != "" {
		if raw, err := json.Marshal(rule); err == nil {
			if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
				log.Printf("[rule][cache] redis set failed key=%s err=%v", key, err)
			}
		}
	}
	return rule, nil
}

func (c *RuleCache) Create(ctx context.Context, r entities.BillingRule) (entities.BillingRule, error) {
	return c.inner.Create(ctx, r)
}

func (c *RuleCache) GetByID(ctx context.Context, id string) (entities.BillingRule, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *RuleCache) Update(ctx context.Context, r entities.BillingRule) (entities.BillingRule, error) {
	// Read the stored rule first: a token regeneration must also evict the
	// key the old token is cached under.
	previous, err := c.inner.GetByID(ctx, r.ID)
	if err != nil {
		return entities.BillingRule{}, err
	}

	updated, err := c.inner.Update(ctx, r)
	if err != nil {
		return entities.BillingRule{}, err
	}

	keys := []string{ruleTokenKeyPrefix + updated.Token}
	if previous.ID != "" && previous.Token != updated.Token {
		keys = append(keys, ruleTokenKeyPrefix+previous.Token)
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[rule][cache] invalidation failed rule_id=%s err=%v", updated.ID, err)
	}
	return updated, nil
}

func (c *RuleCache) ListByTenantID(ctx context.Context, tenantID string) ([]entities.BillingRule, error) {
	return c.inner.ListByTenantID(ctx, tenantID)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
