// Command devtoken mints access tokens signed with the clubhouse dev key,
// for local use when no identity provider is configured.
//
//	devtoken -sub asha -email asha@cmrit.ac.in
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/pkg/cryptox"
	"github.com/aussiebroadwan/clubhouse/pkg/idx"
	"github.com/aussiebroadwan/clubhouse/pkg/jwtx"
)

func main() {
	keyFile := flag.String("key", envOr("AUTH_DEV_KEY_FILE", "clubhouse-dev.key"), "dev signing key file, created if missing")
	issuer := flag.String("iss", envOr("AUTH_ISSUER", "campus-idp"), "issuer claim")
	audience := flag.String("aud", envOr("AUTH_AUDIENCE", "clubhouse"), "comma separated audience claim")
	subject := flag.String("sub", "", "subject (identity id); a new ULID when empty")
	email := flag.String("email", "", "email claim")
	name := flag.String("name", "", "name claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	pemKey, created, err := cryptox.LoadOrCreateEd25519Key(*keyFile)
	if err != nil {
		log.Fatalf("failed to load key: %v", err)
	}
	if created {
		fmt.Fprintf(os.Stderr, "created dev key %s\n", *keyFile)
	}
	kid, err := cryptox.KeyID(pemKey)
	if err != nil {
		log.Fatalf("failed to derive key id: %v", err)
	}
	signer, err := jwtx.NewSigner(kid, pemKey)
	if err != nil {
		log.Fatalf("failed to create signer: %v", err)
	}

	sub := *subject
	if sub == "" {
		sub = idx.New().String()
	}
	claims := jwtx.NewIdentityClaims(sub, *email, *name, *issuer, strings.Split(*audience, ","), *ttl, time.Now())

	tok, err := signer.Sign(claims)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(tok)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
