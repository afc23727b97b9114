package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters shared by password hashing and the key vault KDF.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64MB
	argon2Threads = 4
	argon2KeyLen  = 32
	argon2SaltLen = 16
)

type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

var defaultArgon2Params = argon2Params{
	memory:  argon2Memory,
	time:    argon2Time,
	threads: argon2Threads,
	keyLen:  argon2KeyLen,
}

func (p argon2Params) derive(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, p.time, p.memory, p.threads, p.keyLen)
}

// encode renders "v=19$m=65536,t=1,p=4".
func (p argon2Params) encode() string {
	return fmt.Sprintf("v=%d$m=%d,t=%d,p=%d", argon2.Version, p.memory, p.time, p.threads)
}

func parseArgon2Params(versionPart, paramsPart string) (argon2Params, error) {
	var params argon2Params
	var version int
	if _, err := fmt.Sscanf(versionPart, "v=%d", &version); err != nil {
		return params, fmt.Errorf("parsing version: %w", err)
	}
	if version != argon2.Version {
		return params, fmt.Errorf("unsupported argon2 version %d", version)
	}
	if _, err := fmt.Sscanf(paramsPart, "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, fmt.Errorf("parsing params: %w", err)
	}
	return params, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

var b64 = base64.RawStdEncoding

// Argon2HashService implements ports.HashService using Argon2id.
type Argon2HashService struct{}

// NewArgon2HashService creates a new Argon2id hash service.
func NewArgon2HashService() *Argon2HashService {
	return &Argon2HashService{}
}

// Hash generates an Argon2id hash of the password.
// Returns format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func (s *Argon2HashService) Hash(password string) (string, error) {
	salt, err := randomBytes(argon2SaltLen)
	if err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := defaultArgon2Params.derive([]byte(password), salt)

	return "$argon2id$" + defaultArgon2Params.encode() + "$" +
		b64.EncodeToString(salt) + "$" + b64.EncodeToString(hash), nil
}

// Verify checks if a password matches the given Argon2id hash.
func (s *Argon2HashService) Verify(password string, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("invalid hash format: expected 6 parts, got %d", len(parts))
	}
	if parts[1] != "argon2id" {
		return false, fmt.Errorf("unsupported algorithm: %s", parts[1])
	}

	params, err := parseArgon2Params(parts[2], parts[3])
	if err != nil {
		return false, err
	}
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}
	hash, err := b64.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}
	params.keyLen = uint32(len(hash))

	return subtle.ConstantTimeCompare(hash, params.derive([]byte(password), salt)) == 1, nil
}
