// Package service provides the token issuer for SurveyAuth.
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/yndnr/surveyauth-go/internal/core/domain"
	"github.com/yndnr/surveyauth-go/pkg/token"
)

// Default issuer parameters.
const (
	DefaultSaltLength = 2
	DefaultHashLength = 8

	// DefaultMaxRange caps the number of tokens one range call may materialise.
	DefaultMaxRange int64 = 1_000_000

	// MaxHashLength is the length of a full hex encoded SHA-256 digest.
	MaxHashLength = token.HexDigestLength
)

// IssuerConfig holds configuration for an Issuer.
//
// Zero values select defaults. For SaltLength and HashLength this means
// an explicit 0 cannot be told apart from "not specified"; both become
// the default length.
type IssuerConfig struct {
	// PrivateKey is the shared secret mixed into every hash. Required.
	PrivateKey string

	// SaltLength is the number of hex characters in a salt (default: 2).
	SaltLength int

	// HashLength is the number of hex characters kept from the digest (default: 8, max: 64).
	HashLength int

	// Parallelism bounds the workers used by range generation
	// (default: GOMAXPROCS).
	Parallelism int

	// MaxRange is the largest range GenerateTokensWithIDRange accepts
	// (default: DefaultMaxRange).
	MaxRange int64

	// Rand is the secure random source for salts (default: crypto/rand.Reader).
	// It must be safe for concurrent use when Parallelism > 1.
	Rand io.Reader
}

// Issuer generates and verifies tokens for one private key and one
// pair of length parameters.
type Issuer struct {
	privateKey  string
	saltLength  int
	hashLength  int
	parallelism int
	maxRange    int64
	rand        io.Reader
}

// NewIssuer creates an Issuer from cfg.
//
// Returns ErrMissingKey if no private key is given and
// ErrInvalidArgument for negative lengths or a hash length above 64.
func NewIssuer(cfg IssuerConfig) (*Issuer, error) {
	if cfg.PrivateKey == "" {
		return nil, domain.ErrMissingKey
	}

	if cfg.SaltLength == 0 {
		cfg.SaltLength = DefaultSaltLength
	}
	if cfg.HashLength == 0 {
		cfg.HashLength = DefaultHashLength
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}
	if cfg.MaxRange == 0 {
		cfg.MaxRange = DefaultMaxRange
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.Reader
	}

	switch {
	case cfg.SaltLength < 0:
		return nil, domain.ErrInvalidArgument.WithDetails("salt length must be positive")
	case cfg.HashLength < 0:
		return nil, domain.ErrInvalidArgument.WithDetails("hash length must be positive")
	case cfg.HashLength > MaxHashLength:
		return nil, domain.ErrInvalidArgument.WithDetails(
			fmt.Sprintf("hash length must not exceed %d", MaxHashLength))
	case cfg.Parallelism < 0:
		return nil, domain.ErrInvalidArgument.WithDetails("parallelism must be positive")
	case cfg.MaxRange < 0:
		return nil, domain.ErrInvalidArgument.WithDetails("max range must be positive")
	}

	return &Issuer{
		privateKey:  cfg.PrivateKey,
		saltLength:  cfg.SaltLength,
		hashLength:  cfg.HashLength,
		parallelism: cfg.Parallelism,
		maxRange:    cfg.MaxRange,
		rand:        cfg.Rand,
	}, nil
}

// SaltLength returns the configured salt length.
func (i *Issuer) SaltLength() int { return i.saltLength }

// HashLength returns the configured hash length.
func (i *Issuer) HashLength() int { return i.hashLength }

// TokenLength returns the length of a canonical token string.
func (i *Issuer) TokenLength() int { return i.saltLength + i.hashLength }

// GenerateSalt draws a fresh salt of SaltLength lowercase hex characters.
func (i *Issuer) GenerateSalt() (string, error) {
	salt, err := token.GenerateHexFrom(i.rand, i.saltLength)
	if err != nil {
		return "", domain.ErrEntropy.WithCause(err)
	}
	return salt, nil
}

// deriveToken computes the token for id and salt.
//
// The digest input is "{id}_{privateKey}_{salt}"; the token hash is the
// first hashLength characters of its hex SHA-256 digest.
func (i *Issuer) deriveToken(id int64, salt string) (domain.Token, error) {
	if len(salt) != i.saltLength {
		return domain.Token{}, domain.ErrBadSaltLength.WithDetails(
			fmt.Sprintf("expected %d characters, got %d", i.saltLength, len(salt)))
	}
	if id < 0 {
		return domain.Token{}, domain.ErrNegativeIdentity.WithDetails(strconv.FormatInt(id, 10))
	}

	preimage := strconv.FormatInt(id, 10) + "_" + i.privateKey + "_" + salt
	digest := token.Hash(preimage)

	return domain.NewToken(id, salt, digest[:i.hashLength]), nil
}

// GenerateTokenWithID issues a token for id with a fresh random salt.
// Two calls for the same id normally return different tokens.
func (i *Issuer) GenerateTokenWithID(id int64) (domain.Token, error) {
	if id < 0 {
		return domain.Token{}, domain.ErrNegativeIdentity.WithDetails(strconv.FormatInt(id, 10))
	}
	salt, err := i.GenerateSalt()
	if err != nil {
		return domain.Token{}, err
	}
	return i.deriveToken(id, salt)
}

// GenerateTokensWithIDRange issues one token per identity in
// [fromID, toID], in ascending identity order. Each token gets its own
// salt. Tokens are generated concurrently; any failure discards the
// whole batch.
func (i *Issuer) GenerateTokensWithIDRange(ctx context.Context, fromID, toID int64) ([]domain.Token, error) {
	if fromID > toID {
		return nil, domain.ErrInvalidRange.WithDetails(fmt.Sprintf("%d > %d", fromID, toID))
	}
	if fromID < 0 {
		return nil, domain.ErrNegativeIdentity.WithDetails(strconv.FormatInt(fromID, 10))
	}
	// fromID >= 0, so the span cannot overflow.
	if span := toID - fromID; span >= i.maxRange {
		return nil, domain.ErrRangeTooLarge.WithDetails(
			fmt.Sprintf("%d identities requested, limit is %d", span+1, i.maxRange))
	}

	count := int(toID - fromID + 1)
	tokens := make([]domain.Token, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.parallelism)

	for idx := 0; idx < count; idx++ {
		if gctx.Err() != nil {
			break
		}
		id := fromID + int64(idx)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tok, err := i.GenerateTokenWithID(id)
			if err != nil {
				return err
			}
			tokens[idx] = tok
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// VerifyTokenWithID reports whether tok was issued for id by a holder of
// this issuer's private key.
//
// The token is recomputed from id and the presented salt, then compared
// with the presented token in constant time.
func (i *Issuer) VerifyTokenWithID(id int64, tok domain.Token) (bool, error) {
	expected, err := i.deriveToken(id, tok.Salt())
	if err != nil {
		return false, err
	}
	return token.Equal(expected.String(), tok.String()), nil
}

// VerifyTokenString parses s with this issuer's lengths and verifies it.
//
// Returns ErrInvalidFormat if s is not exactly SaltLength+HashLength
// characters long.
func (i *Issuer) VerifyTokenString(id int64, s string) (bool, error) {
	tok, err := domain.ParseToken(id, s, i.saltLength, i.hashLength)
	if err != nil {
		return false, err
	}
	return i.VerifyTokenWithID(id, tok)
}
