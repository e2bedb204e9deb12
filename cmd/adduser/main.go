// Command adduser creates a catalog user directly against the database.
// It exists to bootstrap the first admin account: registration over HTTP
// is open, but granting the admin role to an operator should not depend
// on the HTTP surface being reachable.
//
// The password is prompted on the terminal and never echoed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/dmitrijs2005/bookkeeper/internal/server/config"
	"github.com/dmitrijs2005/bookkeeper/internal/server/shared/db"
	"github.com/dmitrijs2005/bookkeeper/internal/server/users"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {

	var (
		dsn      string
		username string
		role     string
	)

	defaults := &config.Config{}
	defaults.LoadDefaults()

	fs := flag.NewFlagSet("adduser", flag.ExitOnError)
	fs.StringVar(&dsn, "d", defaults.DatabaseDSN, "database DSN")
	fs.StringVar(&username, "n", "", "username")
	fs.StringVar(&role, "r", users.RoleAdmin, "role (user or admin)")
	_ = fs.Parse(os.Args[1:])

	if username == "" {
		return fmt.Errorf("username is required (-n)")
	}
	if !users.ValidRole(role) {
		return fmt.Errorf("unknown role %q", role)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("error reading password: %w", err)
	}
	if len(password) == 0 {
		return fmt.Errorf("password must not be empty")
	}

	m, err := db.NewPostgresRepositoryManager(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	cfg := defaults
	cfg.DatabaseDSN = dsn

	svc := users.NewService(m.Users(), cfg)

	ctx := context.Background()
	user, err := svc.Register(ctx, username, string(password), role)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	fmt.Printf("created user %s (role %s)\n", user.UserName, user.Role)
	return nil
}
