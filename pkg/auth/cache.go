package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/seriousplay/MegaSpace/pkg/types"
	"github.com/seriousplay/MegaSpace/pkg/utils"
)

const tokenCacheTTL = time.Hour * 24

func tokenCacheKey(tokenValue string) string {
	return fmt.Sprintf("user:token:%s", utils.MD5(tokenValue))
}

type cachedResolver struct {
	next  Resolver
	cache types.Cache
}

// NewCachedResolver 在身份服务前挂一层 token 缓存，命中则省掉一次外部调用
func NewCachedResolver(next Resolver, cache types.Cache) Resolver {
	return &cachedResolver{next: next, cache: cache}
}

func (r *cachedResolver) Resolve(ctx context.Context, token string) (*types.UserTokenMeta, error) {
	if token != "" {
		if metaStr, err := r.cache.Get(ctx, tokenCacheKey(token)); err == nil && metaStr != "" {
			var meta types.UserTokenMeta
			if err := json.Unmarshal([]byte(metaStr), &meta); err == nil && meta.ExpireAt > time.Now().Unix() {
				return &meta, nil
			}
		}
	}

	meta, err := r.next.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(meta); err == nil {
		if err := r.cache.SetEx(ctx, tokenCacheKey(token), string(raw), tokenCacheTTL); err != nil {
			slog.Error("failed to cache resolved identity", slog.String("error", err.Error()))
		}
	}

	return meta, nil
}
