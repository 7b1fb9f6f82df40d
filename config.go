package claimx

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultMinRefresh  = 5 * time.Minute
	defaultHTTPTimeout = 5 * time.Second
)

// VerifierConfig describes all issuers whose signatures the verifier
// should check.
type VerifierConfig struct {
	Issuers []IssuerConfig
}

// IssuerConfig contains JWKS parameters for a specific issuer.
type IssuerConfig struct {
	Name        string
	JWKSURL     string
	MinRefresh  time.Duration
	HTTPTimeout time.Duration
}

// normalize sets default values for optional fields.
func (c *IssuerConfig) normalize() {
	if c.MinRefresh <= 0 {
		c.MinRefresh = defaultMinRefresh
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = defaultHTTPTimeout
	}
}

// validate ensures the issuer configuration is usable.
func (c IssuerConfig) validate() error {
	switch {
	case c.Name == "":
		return errors.New("issuer name is required")
	case c.JWKSURL == "":
		return errors.New("JWKS URL is required")
	}
	return nil
}

// issuerIndex returns the config mapped by issuer name.
func (c VerifierConfig) issuerIndex() (map[string]IssuerConfig, error) {
	if len(c.Issuers) == 0 {
		return nil, errors.New("at least one issuer must be configured")
	}
	index := make(map[string]IssuerConfig, len(c.Issuers))
	for _, issuer := range c.Issuers {
		if err := issuer.validate(); err != nil {
			return nil, fmt.Errorf("issuer %q: %w", issuer.Name, err)
		}
		if _, exists := index[issuer.Name]; exists {
			return nil, fmt.Errorf("duplicate issuer name %q", issuer.Name)
		}
		clone := issuer
		clone.normalize()
		index[clone.Name] = clone
	}
	return index, nil
}
