package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

// Resolver 将请求携带的 bearer 凭证交换为用户身份。
// 凭证缺失、格式错误或被身份服务拒绝时返回 401。
type Resolver interface {
	Resolve(ctx context.Context, token string) (*types.UserTokenMeta, error)
}

type IdentityServiceConfig struct {
	// Mode 可选 service(默认，走身份服务) / jwt(本地校验)
	Mode          string `toml:"mode"`
	Endpoint      string `toml:"endpoint"`
	ServiceKey    string `toml:"service_key"`
	Timeout       int    `toml:"timeout"` // seconds
	PublicKeyPath string `toml:"public_key_path"`
}

type httpResolver struct {
	cfg    IdentityServiceConfig
	client *http.Client
}

// NewHTTPResolver 通过托管身份服务校验 bearer token
func NewHTTPResolver(cfg IdentityServiceConfig) Resolver {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = time.Second * 10
	}
	return &httpResolver{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type identityResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}

func (r *httpResolver) Resolve(ctx context.Context, token string) (*types.UserTokenMeta, error) {
	if token == "" {
		return nil, errors.New("auth.httpResolver.empty_token", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.Endpoint+"/auth/v1/user", nil)
	if err != nil {
		return nil, errors.New("auth.httpResolver.new_request", i18n.ERROR_INTERNAL, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", r.cfg.ServiceKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.New("auth.httpResolver.do", i18n.ERROR_INTERNAL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, errors.New("auth.httpResolver.rejected", i18n.ERROR_INVALID_TOKEN, fmt.Errorf("identity service status %d", resp.StatusCode)).Code(http.StatusUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("auth.httpResolver.status", i18n.ERROR_INTERNAL, fmt.Errorf("identity service status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("auth.httpResolver.read_body", i18n.ERROR_INTERNAL, err)
	}

	var identity identityResponse
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, errors.New("auth.httpResolver.unmarshal", i18n.ERROR_INTERNAL, err)
	}
	if identity.ID == "" {
		return nil, errors.New("auth.httpResolver.empty_identity", i18n.ERROR_INVALID_TOKEN, nil).Code(http.StatusUnauthorized)
	}

	expireAt := identity.ExpiresAt
	if expireAt == 0 {
		expireAt = time.Now().Add(time.Hour).Unix()
	}

	return &types.UserTokenMeta{
		Appid:    types.DEFAULT_APPID,
		UserID:   identity.ID,
		ExpireAt: expireAt,
	}, nil
}
