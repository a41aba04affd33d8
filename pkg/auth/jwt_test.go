package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genTestKeyPair(t *testing.T) (*rsa.PrivateKey, []byte) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return privateKey, publicPEM
}

func signTestToken(t *testing.T, privateKey *rsa.PrivateKey, userID string, expireAt int64) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"aid": "megaspace",
		"u":   userID,
		"exp": expireAt,
		"nbf": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := token.SignedString(privateKey)
	require.NoError(t, err)
	return signed
}

func TestJWTResolver(t *testing.T) {
	privateKey, publicPEM := genTestKeyPair(t)
	resolver := NewJWTResolver(publicPEM)

	expireAt := time.Now().Add(time.Hour).Unix()
	token := signTestToken(t, privateKey, "user-42", expireAt)

	meta, err := resolver.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", meta.UserID)
	assert.Equal(t, "megaspace", meta.Appid)
	assert.Equal(t, expireAt, meta.ExpireAt)
}

func TestJWTResolverExpiredToken(t *testing.T) {
	privateKey, publicPEM := genTestKeyPair(t)
	resolver := NewJWTResolver(publicPEM)

	token := signTestToken(t, privateKey, "user-42", time.Now().Add(-time.Hour).Unix())

	_, err := resolver.Resolve(context.Background(), token)
	assert.Error(t, err)
}

func TestJWTResolverMalformedToken(t *testing.T) {
	_, publicPEM := genTestKeyPair(t)
	resolver := NewJWTResolver(publicPEM)

	for _, token := range []string{"", "garbage", "one.two"} {
		_, err := resolver.Resolve(context.Background(), token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestJWTResolverWrongKey(t *testing.T) {
	privateKey, _ := genTestKeyPair(t)
	_, otherPublicPEM := genTestKeyPair(t)
	resolver := NewJWTResolver(otherPublicPEM)

	token := signTestToken(t, privateKey, "user-42", time.Now().Add(time.Hour).Unix())

	_, err := resolver.Resolve(context.Background(), token)
	assert.Error(t, err)
}
