package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohitShalgar4/campus360/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "campus360.test",
	})
}

func testIdentity() *models.Identity {
	return &models.Identity{
		ID:    42,
		Email: "jane.doe@mgmcen.ac.in",
		Name:  "Jane Doe",
		Role:  models.RoleStudent,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(24 * time.Hour)

	token, expiresIn, err := svc.GenerateToken(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, int((24 * time.Hour).Seconds()), expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane.doe@mgmcen.ac.in", claims.Email)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "campus360.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(testIdentity())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := testJWTService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campus360.test",
	})

	token, _, err := svc.GenerateToken(testIdentity())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := testJWTService(time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc123", want: "abc123"},
		{name: "raw token", header: "abc123", want: "abc123"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
