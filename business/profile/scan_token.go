package profile

import (
	"errors"
	"fmt"
	"time"

	"glowSkincare/domain"

	"github.com/golang-jwt/jwt/v5"
)

const (
	scanTokenTTL    = 30 * time.Minute
	scanTokenIssuer = "glow-skincare/face-scan"
)

var ErrInvalidScanToken = fmt.Errorf("%w: invalid or expired scan token", domain.ErrValidation)

type scanClaims struct {
	SkinTone   domain.SkinTone `json:"skin_tone"`
	SkinType   domain.SkinType `json:"skin_type"`
	Confidence float64         `json:"confidence"`
	jwt.RegisteredClaims
}

// ScanSealer signs a face-scan estimate so the confirmation request carries
// it back without the client being able to edit it.
type ScanSealer struct {
	key []byte
	now func() time.Time
}

func NewScanSealer(key string) *ScanSealer {
	return &ScanSealer{key: []byte(key), now: time.Now}
}

func (s *ScanSealer) Seal(estimate domain.FaceScanEstimate) (string, error) {
	now := s.now()
	claims := scanClaims{
		SkinTone:   estimate.SkinTone,
		SkinType:   estimate.SkinType,
		Confidence: estimate.Confidence,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    scanTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(scanTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign scan estimate: %w", err)
	}

	return token, nil
}

func (s *ScanSealer) Open(token string) (domain.FaceScanEstimate, error) {
	if token == "" {
		return domain.FaceScanEstimate{}, ErrInvalidScanToken
	}

	claims := &scanClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(scanTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.FaceScanEstimate{}, errors.Join(ErrInvalidScanToken, err)
	}
	if !parsed.Valid {
		return domain.FaceScanEstimate{}, ErrInvalidScanToken
	}

	return domain.FaceScanEstimate{
		SkinTone:   claims.SkinTone,
		SkinType:   claims.SkinType,
		Confidence: claims.Confidence,
	}, nil
}
