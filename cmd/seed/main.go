// Command seed wipes the users table and repopulates it with freshly
// generated usernames. Demo and test data only.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/vrotondo/session-auth-service/internal/db"
)

func main() {
	count := flag.Int("count", 25, "number of users to create")
	flag.Parse()

	if err := run(*count); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(count int) error {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}

	ctx := context.Background()

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	if err := db.RunUsersMigration(ctx, sqlDB); err != nil {
		return err
	}

	fmt.Println("Deleting all records...")
	if _, err := sqlDB.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return err
	}

	fmt.Println("Creating users...")
	usernames := Usernames(count)

	for _, username := range usernames {
		if _, err := sqlDB.ExecContext(ctx, `
			INSERT INTO users (username) VALUES ($1)
		`, username); err != nil {
			return err
		}
	}

	fmt.Println("Complete.")
	fmt.Printf("Created %d users:\n", len(usernames))
	for i, username := range usernames {
		if i == 5 {
			fmt.Println("  ...")
			break
		}
		fmt.Printf("  - %s\n", username)
	}

	return nil
}
