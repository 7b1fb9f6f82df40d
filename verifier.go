package claimx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jws"
)

// Verifier checks token signatures against per-issuer JWKS and hands the
// verified payload bytes to this package's claims decoder. It performs no
// claims-value policy checks; expiry and audience decisions belong to the
// caller.
type Verifier struct {
	mu            sync.RWMutex
	issuers       map[string]*issuerState
	defaultIssuer string
}

type issuerState struct {
	cfg   IssuerConfig
	cache *jwk.Cache
}

// NewVerifier builds a verifier from the given configuration.
func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	index, err := cfg.issuerIndex()
	if err != nil {
		return nil, err
	}

	defaultIssuer := ""
	if len(cfg.Issuers) == 1 {
		defaultIssuer = cfg.Issuers[0].Name
	}

	v := &Verifier{
		issuers:       make(map[string]*issuerState, len(index)),
		defaultIssuer: defaultIssuer,
	}
	for name, issuerCfg := range index {
		cache := jwk.NewCache(context.Background())
		httpClient := &http.Client{
			Timeout: issuerCfg.HTTPTimeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
			},
		}
		if err := cache.Register(
			issuerCfg.JWKSURL,
			jwk.WithMinRefreshInterval(issuerCfg.MinRefresh),
			jwk.WithHTTPClient(httpClient),
		); err != nil {
			return nil, fmt.Errorf("register jwks for %q: %w", name, err)
		}
		v.issuers[name] = &issuerState{cfg: issuerCfg, cache: cache}
	}

	return v, nil
}

// Warmup refreshes JWKS for the specified issuer.
func (v *Verifier) Warmup(ctx context.Context, issuerName string) error {
	state, ok := v.lookupIssuer(issuerName)
	if !ok {
		return newError(ErrCodeIssuerNotRegistered, fmt.Errorf("issuer %q not found", issuerName))
	}
	refreshCtx := ctx
	if state.cfg.HTTPTimeout > 0 {
		var cancel context.CancelFunc
		refreshCtx, cancel = context.WithTimeout(ctx, state.cfg.HTTPTimeout)
		defer cancel()
	}
	if _, err := state.cache.Refresh(refreshCtx, state.cfg.JWKSURL); err != nil {
		return newError(ErrCodeJWKSUnavailable, err)
	}
	return nil
}

// Verify checks the token signature using the issuer identified by
// issuerName and decodes the verified payload.
func (v *Verifier) Verify(ctx context.Context, token, issuerName string) (*Payload, error) {
	if issuerName == "" {
		issuerName = v.defaultIssuer
	}
	if issuerName == "" {
		return nil, newError(ErrCodeIssuerNotRegistered, errors.New("issuer not specified"))
	}

	if token == "" {
		return nil, newError(ErrCodeInvalidToken, errors.New("token is empty"))
	}
	state, ok := v.lookupIssuer(issuerName)
	if !ok {
		return nil, newError(ErrCodeIssuerNotRegistered, fmt.Errorf("issuer %q not found", issuerName))
	}

	keySet, err := state.cache.Get(ctx, state.cfg.JWKSURL)
	if err != nil {
		return nil, newError(ErrCodeJWKSUnavailable, err)
	}

	payloadJSON, err := jws.Verify(
		[]byte(token),
		jws.WithKeySet(keySet, jws.WithInferAlgorithmFromKey(true)),
	)
	if err != nil {
		return nil, newError(ErrCodeInvalidToken, err)
	}

	tree, err := ParseClaimsTree(payloadJSON)
	if err != nil {
		return nil, newError(ErrCodeMalformedToken, err)
	}
	return DecodePayload(tree)
}

func (v *Verifier) lookupIssuer(name string) (*issuerState, bool) {
	if name == "" {
		name = v.defaultIssuer
	}
	if name == "" {
		return nil, false
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	state, ok := v.issuers[name]
	return state, ok
}
