// Command store-token saves a Fitbit access token for later runs.
//
//	store-token YOUR_ACCESS_TOKEN
//
// The token is written to CREDENTIALS_PATH, or ~/.config/fitbit-sleep/credentials.env.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blaisecz/fitbit-sleep/internal/config"
	"github.com/blaisecz/fitbit-sleep/internal/credentials"
	"github.com/blaisecz/fitbit-sleep/internal/logging"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	path := flag.String("path", cfg.CredentialsPath, "credentials file (default ~/.config/fitbit-sleep/credentials.env)")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	token := flag.Arg(0)
	if token == "" {
		fmt.Fprintln(os.Stderr, "Usage: store-token [-path FILE] YOUR_ACCESS_TOKEN")
		os.Exit(2)
	}

	if err := storeAndVerify(*path, token); err != nil {
		logger.Fatal("failed to store access token", zap.Error(err))
	}
	fmt.Println("Stored and verified the access token.")
}

// storeAndVerify saves token and reads it back.
func storeAndVerify(path, token string) error {
	store, err := credentials.NewStore(path)
	if err != nil {
		return err
	}
	if err := store.Save(token); err != nil {
		return err
	}

	stored, err := store.Load()
	if err != nil {
		return fmt.Errorf("read back %s: %w", store.Path, err)
	}
	if stored != strings.TrimSpace(token) {
		return fmt.Errorf("token read back from %s does not match", store.Path)
	}
	return nil
}
