// Command verduleria-cli holds the operator chores: hashing the admin API
// key and loading a starter catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"

	"github.com/MikeMC777/verduleria-ecom/internal/config"
	"github.com/MikeMC777/verduleria-ecom/internal/pgstore"
	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

const usage = "expected 'hash-key' or 'seed' subcommand"

func main() {
	hashCmd := flag.NewFlagSet("hash-key", flag.ExitOnError)
	key := hashCmd.String("key", "", "API key to hash for ADMIN_API_KEY_HASH")

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	force := seedCmd.Bool("force", false, "add the sample catalog even if vegetables exist")

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "hash-key":
		_ = hashCmd.Parse(os.Args[2:])
		if *key == "" {
			fmt.Println("key is required")
			hashCmd.PrintDefaults()
			os.Exit(1)
		}
		hashKey(*key)
	case "seed":
		_ = seedCmd.Parse(os.Args[2:])
		seed(*force)
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}

func hashKey(key string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash key: %v", err)
	}
	fmt.Printf("ADMIN_API_KEY_HASH=%s\n", hash)
}

func seed(force bool) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	ctx := context.Background()

	var repo vegetable.Repository
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := pgstore.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer pool.Close()
		// the server may not have run yet
		if err := pgstore.InitSchema(ctx, pool); err != nil {
			log.Fatalf("Failed to init schema: %v", err)
		}
		repo = vegetable.NewPGRepo(pool)
	default:
		r, err := vegetable.OpenFileRepo(filepath.Join(cfg.DataDir, "vegetables.json"))
		if err != nil {
			log.Fatalf("Failed to open catalog: %v", err)
		}
		repo = r
	}

	n, err := vegetable.Seed(ctx, repo, vegetable.SampleCatalog(), force)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if n == 0 {
		fmt.Println("Catalog already has vegetables, nothing added (use -force to add anyway).")
		return
	}
	fmt.Printf("Added %d vegetables.\n", n)
}
