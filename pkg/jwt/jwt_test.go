package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicefy/invoicefy-api/pkg/jwt"
)

const (
	secret = "unit-test-secret"
	issuer = "invoicefy-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "biz-1", "Business Owner", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, businessID, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "biz-1", businessID)
	assert.Equal(t, "Business Owner", role)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "biz-1", "Business Owner", issuer, 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "biz-1", "Business Owner", issuer, -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "biz-1", "Business Owner", issuer, 60)
	assert.Error(t, err)
}
