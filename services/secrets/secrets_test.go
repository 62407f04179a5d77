package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	store, err := New("test-master-secret")
	assert.NoError(t, err)
	assert.False(t, store.PlainMode())

	cases := []string{
		"",
		"hello",
		`{"client_id":"abc","client_secret":"s3cret"}`,
		strings.Repeat("x", 4096),
		"unicode: øßæ 漢字",
	}
	for _, plaintext := range cases {
		envelope, err := store.Encrypt(plaintext)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(envelope, "enc:v1:"))
		assert.Equal(t, plaintext, store.Decrypt(envelope))
	}
}

func TestEncryptProducesFreshNonce(t *testing.T) {
	store, err := New("test-master-secret")
	assert.NoError(t, err)

	a, err := store.Encrypt("same input")
	assert.NoError(t, err)
	b, err := store.Encrypt("same input")
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecryptMalformedInputPassesThrough(t *testing.T) {
	store, err := New("test-master-secret")
	assert.NoError(t, err)

	for _, input := range []string{
		"not an envelope",
		"enc:v1:!!!not-base64!!!",
		"enc:v1:",
		"plain:!!!not-base64!!!",
		"",
	} {
		assert.Equal(t, input, store.Decrypt(input))
	}
}

func TestDecryptWrongKeyPassesThrough(t *testing.T) {
	a, err := New("master-a")
	assert.NoError(t, err)
	b, err := New("master-b")
	assert.NoError(t, err)

	envelope, err := a.Encrypt("secret value")
	assert.NoError(t, err)
	assert.Equal(t, envelope, b.Decrypt(envelope))
}

func TestPlainMode(t *testing.T) {
	store, err := New("")
	assert.NoError(t, err)
	assert.True(t, store.PlainMode())

	envelope, err := store.Encrypt("dev secret")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(envelope, "plain:"))
	assert.Equal(t, "dev secret", store.Decrypt(envelope))
}

func TestGuardProduction(t *testing.T) {
	plain, err := New("")
	assert.NoError(t, err)
	assert.Error(t, plain.GuardProduction("production"))
	assert.Error(t, plain.GuardProduction("staging"))
	assert.NoError(t, plain.GuardProduction("local"))

	encrypted, err := New("master")
	assert.NoError(t, err)
	assert.NoError(t, encrypted.GuardProduction("production"))
}

func TestEncryptedStoreReadsPlainEnvelopes(t *testing.T) {
	plain, err := New("")
	assert.NoError(t, err)
	encrypted, err := New("master")
	assert.NoError(t, err)

	envelope, err := plain.Encrypt("migrated later")
	assert.NoError(t, err)
	assert.Equal(t, "migrated later", encrypted.Decrypt(envelope))
}
