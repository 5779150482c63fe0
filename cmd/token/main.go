// Command token issues a bearer token accepted by the ledger API.
//
//	token -subject 5d9ccd9d-7050-47ab-adcf-e0fe89b913c5
package main

import (
	"flag"
	"fmt"
	"os"

	"bank-ledger/config"
	"bank-ledger/internal/service"

	"github.com/google/uuid"
)

func main() {
	subjectFlag := flag.String("subject", "", "token subject (UUID); random when empty")
	flag.Parse()

	cfg, err := config.Load(os.Getenv("LEDGER_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "jwt.secret is not set")
		os.Exit(1)
	}

	subject := uuid.New()
	if *subjectFlag != "" {
		if subject, err = uuid.Parse(*subjectFlag); err != nil {
			fmt.Fprintf(os.Stderr, "invalid subject: %v\n", err)
			os.Exit(2)
		}
	}

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	token, expiresAt, err := tokenSvc.Generate(subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "subject %s, expires %s\n", subject, expiresAt.Format("2006-01-02T15:04:05Z07:00"))
}
