package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterRequest{
		Username:     "  alice  ",
		Password:     "  pass1234  ",
		BusinessName: " My Shop ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "pass1234", req.Password)
	assert.Equal(t, "My Shop", req.BusinessName)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	desc := "order <script>alert('x')</script> notes"
	req := CreatePaymentRequest{
		CryptoType:  "ETH",
		Description: &desc,
	}
	SanitizeStruct(&req)

	assert.Contains(t, *req.Description, "&lt;script&gt;")
	assert.NotContains(t, *req.Description, "<script>")
}

func TestSanitizeStruct_SecretsOnlyTrimmed(t *testing.T) {
	req := ImportWalletRequest{
		CryptoType:         " ETH ",
		PrivateKey:         " 0xabc&def ",
		EncryptionPassword: "p<ss>&word",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "ETH", req.CryptoType)
	assert.Equal(t, "0xabc&def", req.PrivateKey)
	assert.Equal(t, "p<ss>&word", req.EncryptionPassword)
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	url := "  https://example.com/webhook  "
	req := RegisterRequest{
		Username:     "bob",
		Password:     "password123",
		BusinessName: "Bob Shop",
		WebhookURL:   &url,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "https://example.com/webhook", *req.WebhookURL)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := RegisterRequest{
		Username:     "carol",
		Password:     "password123",
		BusinessName: "Carol Shop",
		WebhookURL:   nil,
	}
	SanitizeStruct(&req)
	assert.Nil(t, req.WebhookURL)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"order-001",
		"ORDER_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"order 001",   // space
		"order<001>",  // angle brackets
		"order;DROP",  // semicolon
		"",            // empty
		"hello world", // space
		"order\n001",  // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
