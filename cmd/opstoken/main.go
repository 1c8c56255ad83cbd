// Command opstoken prints an operator token signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"

	"github.com/LONJEZ/Delivery-app/cmd"
	"github.com/LONJEZ/Delivery-app/internal/pkg/auth"

	"github.com/labstack/gommon/log"
)

func main() {
	subject := flag.String("subject", "operator", "token subject")
	ttl := flag.Duration("ttl", auth.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	issuer, err := auth.NewIssuer(config.JWTSecret, *ttl)
	if err != nil {
		log.Fatalf("Error creating issuer: %v", err)
	}

	token, err := issuer.Issue(*subject, auth.RoleOperator)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Println(token)
}
