package auth

import (
	"context"
	"net/http"

	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/security"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

const (
	MODE_SERVICE = "service"
	MODE_JWT     = "jwt"
)

type jwtResolver struct {
	publicKey []byte
}

// NewJWTResolver 本地校验 RSA 签名的 JWT，不经过外部身份服务。
// 适用于身份服务不可达的私有化部署。
func NewJWTResolver(publicKey []byte) Resolver {
	return &jwtResolver{publicKey: publicKey}
}

func (r *jwtResolver) Resolve(ctx context.Context, token string) (*types.UserTokenMeta, error) {
	claims, err := security.VerifyToken(token, r.publicKey)
	if err != nil {
		return nil, errors.New("jwtResolver.Resolve", i18n.ERROR_INVALID_TOKEN, err).Code(http.StatusUnauthorized)
	}

	appid := claims.Appid
	if appid == "" {
		appid = types.DEFAULT_APPID
	}

	return &types.UserTokenMeta{
		Appid:    appid,
		UserID:   claims.User,
		ExpireAt: claims.ExpireTime,
	}, nil
}
