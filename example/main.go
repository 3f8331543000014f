// FILE: lixenwraith/dotenv/example/main.go
package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/dotenv"
)

// AppConfig is filled from APP_* variables.
type AppConfig struct {
	Host    string        `env:"HOST"`
	Port    int           `env:"PORT"`
	Debug   bool          `env:"DEBUG"`
	Timeout time.Duration `env:"TIMEOUT"`
	Tags    []string      `env:"TAGS"`
}

const envContent = `# demo settings
export APP_HOST=example.com
APP_PORT=8443
APP_DEBUG=yes
APP_TIMEOUT=1m30s
APP_TAGS=web,,api
APP_URL=https://${APP_HOST}:${APP_PORT}/v1
APP_MOTD='line one\nline two'
APP_QUOTE=''it\'s quoted''
`

func main() {
	// =========================================================================
	// PART 1: INITIAL SETUP
	// Write a project .env and start from a nested subdirectory.
	// =========================================================================
	root, err := os.MkdirTemp("", "dotenv-demo")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(root)

	nested := filepath.Join(root, "services", "api")
	if err := os.MkdirAll(nested, 0755); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(envContent), 0644); err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// =========================================================================
	// PART 2: LOAD
	// The isolated store is pre-seeded; seeded keys are never overwritten.
	// =========================================================================
	env, err := dotenv.NewBuilder().
		WithStore(dotenv.NewMapStore(map[string]string{"APP_PORT": "9000"})).
		WithWorkDir(nested).
		WithLogger(logger).
		WithLoad().
		Build()
	if err != nil {
		log.Fatal("Failed to build env:", err)
	}

	// =========================================================================
	// PART 3: TYPED ACCESS
	// =========================================================================
	url, _ := env.String("APP_URL")
	log.Printf("APP_URL   = %s", url)

	motd, _ := env.Multiline("APP_MOTD")
	log.Printf("APP_MOTD  =\n%s", motd)

	quote, _ := env.String("APP_QUOTE")
	log.Printf("APP_QUOTE = %s", quote)

	retries, _ := env.Int("APP_RETRIES", 3)
	log.Printf("APP_RETRIES (default) = %d", retries)

	if origin, ok := env.Origin("APP_HOST"); ok {
		log.Printf("APP_HOST loaded from %s", origin)
	}

	var cfg AppConfig
	if err := env.Scan("APP_", &cfg); err != nil {
		log.Fatal("Failed to scan config:", err)
	}
	log.Printf("Scanned: %+v", cfg)

	// =========================================================================
	// PART 4: EXPORT
	// =========================================================================
	log.Println("Loaded values as TOML:")
	if err := env.Export(os.Stdout, dotenv.FormatTOML); err != nil {
		log.Fatal(err)
	}
}
