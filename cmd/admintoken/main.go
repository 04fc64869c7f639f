// Command admintoken mints an operator JWT for the receipt listing endpoint.
//
//	MPG_ADMIN_JWT_SECRET=... go run ./cmd/admintoken -sub ops
package main

import (
	"flag"
	"fmt"
	"os"

	"micropay-gateway/config"
	"micropay-gateway/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	subject := flag.String("sub", "operator", "token subject")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Admin.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "admin.jwt_secret is not set; the receipt listing is unauthenticated")
		os.Exit(1)
	}

	tokenSvc := service.NewJWTTokenService(cfg.Admin.JWTSecret, cfg.Admin.JWTExpiry, cfg.Admin.JWTIssuer)
	token, expiresAt, err := tokenSvc.Generate(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to mint token: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "expires %s\n", expiresAt.UTC().Format("2006-01-02T15:04:05Z"))
	fmt.Println(token)
}
