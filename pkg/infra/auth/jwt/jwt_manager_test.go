package jwt

import (
	"testing"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/config"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/user"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerWithSecret(secret string) Manager {
	return NewJwtManager(&config.ServerConfig{SecretKey: secret, TokenTTL: time.Hour})
}

func signTokenWithSecret(secret string, claims jwtlib.Claims) (string, error) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func student() *user.User {
	return &user.User{ID: uuid.New(), Email: "ada@example.com", Role: user.RoleStudent}
}

func TestCreateToken_AndValidate_Success(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")

	token, err := mgr.CreateToken(student())
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, mgr.ValidateToken(token))
}

func TestCreateToken_MissingSecret(t *testing.T) {
	mgr := newManagerWithSecret("")

	_, err := mgr.CreateToken(student())
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestDecodeToken_CarriesIdentity(t *testing.T) {
	mgr := newManagerWithSecret("decode-secret")
	u := student()

	token, err := mgr.CreateToken(u)
	require.NoError(t, err)

	claims, err := mgr.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, user.RoleStudent, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	id, err := claims.UserUUID()
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestCreateToken_DefaultTTL(t *testing.T) {
	mgr := NewJwtManager(&config.ServerConfig{SecretKey: "ttl"})

	token, err := mgr.CreateToken(student())
	require.NoError(t, err)
	claims, err := mgr.DecodeToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	claims := &Claims{
		UserID:           uuid.NewString(),
		RegisteredClaims: jwtlib.RegisteredClaims{IssuedAt: jwtlib.NewNumericDate(time.Now())},
	}
	signed, err := signTokenWithSecret("other-secret", claims)
	require.NoError(t, err)

	mgr := newManagerWithSecret("test-secret")
	assert.Equal(t, ErrInvalidToken, mgr.ValidateToken(signed))
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "expire-secret"
	claims := &Claims{
		UserID: uuid.NewString(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	signed, err := signTokenWithSecret(secret, claims)
	require.NoError(t, err)

	mgr := newManagerWithSecret(secret)
	assert.Equal(t, ErrExpiredToken, mgr.ValidateToken(signed))
}

func TestDecodeToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{UserID: uuid.NewString()}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte("alg-secret"))
	require.NoError(t, err)

	mgr := newManagerWithSecret("alg-secret")
	_, err = mgr.DecodeToken(signed)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestDecodeToken_MissingUserID(t *testing.T) {
	signed, err := signTokenWithSecret("secret", &Claims{})
	require.NoError(t, err)

	mgr := newManagerWithSecret("secret")
	_, err = mgr.DecodeToken(signed)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestDecodeToken_Malformed(t *testing.T) {
	mgr := newManagerWithSecret("secret")

	_, err := mgr.DecodeToken("not.a.token")
	assert.Equal(t, ErrInvalidToken, err)
}
