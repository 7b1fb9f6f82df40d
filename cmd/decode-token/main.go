package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-utils-claimx"
)

func main() {
	envPath := defaultEnvPath()
	if err := loadEnvFile(envPath); err != nil {
		log.Printf("warning: load %s: %v", envPath, err)
	}

	token := flag.String("token", os.Getenv("CLAIMX_TOKEN"), "Compact JWT to decode (env CLAIMX_TOKEN)")
	envFlag := flag.String("env", envPath, "Path to .env file")
	flag.Parse()

	if *envFlag != "" && *envFlag != envPath {
		if err := loadEnvFile(*envFlag); err != nil {
			log.Printf("warning: load %s: %v", *envFlag, err)
		}
		if *token == "" {
			*token = os.Getenv("CLAIMX_TOKEN")
		}
	}
	if *token == "" && flag.NArg() > 0 {
		*token = flag.Arg(0)
	}
	if *token == "" {
		flag.Usage()
		log.Fatal("token is required (via flag, positional argument, .env, or CLAIMX_TOKEN)")
	}

	decoded, err := claimx.DecodeCompact(strings.TrimSpace(*token))
	if err != nil {
		log.Fatalf("decode failed: %v", err)
	}

	printToken(decoded)
}

func printToken(token *claimx.Token) {
	header := token.Header()
	payload := token.Payload()

	fmt.Println("== Token Decoded (signature NOT verified) ==")
	fmt.Printf("alg          : %s\n", header.Algorithm())
	if header.Type() != "" {
		fmt.Printf("typ          : %s\n", header.Type())
	}
	if header.KeyID() != "" {
		fmt.Printf("kid          : %s\n", header.KeyID())
	}
	fmt.Printf("issuer       : %s\n", payload.Issuer())
	fmt.Printf("subject      : %s\n", payload.Subject())
	fmt.Printf("audience     : %s\n", payload.Audience())
	if exp := payload.ExpiresAt(); exp != nil {
		fmt.Printf("expires_at   : %s\n", exp.Format(time.RFC3339))
	}
	if nbf := payload.NotBefore(); nbf != nil {
		fmt.Printf("not_before   : %s\n", nbf.Format(time.RFC3339))
	}
	if iat := payload.IssuedAt(); iat != nil {
		fmt.Printf("issued_at    : %s\n", iat.Format(time.RFC3339))
	}
	if payload.ID() != "" {
		fmt.Printf("jti          : %s\n", payload.ID())
	}
	fmt.Println("claims:")
	for name, claim := range payload.Claims() {
		if s := claim.AsString(); s != nil {
			fmt.Printf("  %s: %s\n", name, *s)
			continue
		}
		fmt.Printf("  %s: (%s)\n", name, claim.Raw().Kind())
	}
}

func defaultEnvPath() string {
	if path := os.Getenv("CLAIMX_ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			log.Printf("warning: invalid line %d in %s", lineNum, filepath.Base(path))
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			log.Printf("warning: set env %s: %v", key, err)
		}
	}
	return scanner.Err()
}
