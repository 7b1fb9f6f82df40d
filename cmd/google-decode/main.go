package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bionicotaku/lingo-utils-claimx"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/impersonate"
)

func main() {
	var (
		defaultAudience    = os.Getenv("GOOGLE_AUDIENCE")
		defaultServiceAcct = os.Getenv("GOOGLE_SERVICE_ACCOUNT")
		defaultToken       = os.Getenv("GOOGLE_ID_TOKEN")
		defaultJWKSURL     = os.Getenv("GOOGLE_JWKS_URL")
	)

	audience := flag.String("audience", defaultAudience, "Audience for the minted token (env GOOGLE_AUDIENCE)")
	serviceAccount := flag.String("service-account", defaultServiceAcct, "Service account to impersonate (env GOOGLE_SERVICE_ACCOUNT)")
	token := flag.String("token", defaultToken, "Existing ID token; if empty the CLI mints one via ADC (env GOOGLE_ID_TOKEN)")
	jwksURL := flag.String("jwks-url", defaultJWKSURL, "Optional JWKS URL; when set the signature is verified (env GOOGLE_JWKS_URL)")
	timeout := flag.Duration("timeout", 10*time.Second, "Timeout for token fetch and JWKS refresh")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *token == "" {
		if *audience == "" {
			flag.Usage()
			log.Fatal("audience is required to mint a token")
		}
		minted, err := mintToken(ctx, *audience, *serviceAccount)
		if err != nil {
			log.Fatalf("failed to obtain identity token: %v", err)
		}
		*token = minted
		log.Println("acquired Google identity token")
	}

	payload, err := decodePayload(ctx, *token, *jwksURL)
	if err != nil {
		log.Fatalf("decode failed: %v", err)
	}

	printPayload(payload, *jwksURL != "")
}

func mintToken(ctx context.Context, audience, serviceAccount string) (string, error) {
	var (
		source oauth2.TokenSource
		err    error
	)
	if serviceAccount != "" {
		source, err = impersonate.IDTokenSource(ctx, impersonate.IDTokenConfig{
			Audience:        audience,
			TargetPrincipal: serviceAccount,
			IncludeEmail:    true,
		})
	} else {
		source, err = idtoken.NewTokenSource(ctx, audience)
	}
	if err != nil {
		return "", err
	}

	tok, err := oauth2.ReuseTokenSource(nil, source).Token()
	if err != nil {
		return "", fmt.Errorf("fetch token: %w", err)
	}
	return tok.AccessToken, nil
}

func decodePayload(ctx context.Context, token, jwksURL string) (*claimx.Payload, error) {
	if jwksURL == "" {
		decoded, err := claimx.DecodeCompact(token)
		if err != nil {
			return nil, err
		}
		return decoded.Payload(), nil
	}

	verifier, err := claimx.NewVerifier(claimx.VerifierConfig{
		Issuers: []claimx.IssuerConfig{{
			Name:    "google",
			JWKSURL: jwksURL,
		}},
	})
	if err != nil {
		return nil, err
	}
	if err := verifier.Warmup(ctx, "google"); err != nil {
		return nil, err
	}
	return verifier.Verify(ctx, token, "google")
}

func printPayload(payload *claimx.Payload, verified bool) {
	if verified {
		fmt.Println("== Google Identity Token Decoded (signature verified) ==")
	} else {
		fmt.Println("== Google Identity Token Decoded (signature NOT verified) ==")
	}
	fmt.Printf("subject      : %s\n", payload.Subject())
	fmt.Printf("issuer       : %s\n", payload.Issuer())
	fmt.Printf("audience     : %s\n", payload.Audience())
	if exp := payload.ExpiresAt(); exp != nil {
		fmt.Printf("expires_at   : %s\n", exp.Format(time.RFC3339))
	}
	if iat := payload.IssuedAt(); iat != nil {
		fmt.Printf("issued_at    : %s\n", iat.Format(time.RFC3339))
	}
	if email := payload.Claim("email").AsString(); email != nil {
		fmt.Printf("email        : %s\n", *email)
	}
}
