// Command token mints an access token for local development and tests.
//
// Flags:
//
//	--subject   token subject (default: dev)
//	--username  username stored on created records
//	--org       organization id
//	--roles     comma-separated roles (default: SHARK_ATTACK_READ,SHARK_ATTACK_WRITE)
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/heartmarshall/facts-mng/internal/auth"
	"github.com/heartmarshall/facts-mng/internal/config"
	"github.com/heartmarshall/facts-mng/internal/service/sharkattack"
	"github.com/heartmarshall/facts-mng/pkg/ctxutil"
)

func main() {
	subject := flag.String("subject", "dev", "token subject")
	username := flag.String("username", "dev", "username")
	org := flag.String("org", "", "organization id")
	roles := flag.String("roles", sharkattack.RoleRead+","+sharkattack.RoleWrite, "comma-separated roles")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var list []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			list = append(list, r)
		}
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := jwt.GenerateAccessToken(ctxutil.Identity{
		Subject:        *subject,
		Username:       *username,
		OrganizationID: *org,
		Roles:          list,
	})
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
