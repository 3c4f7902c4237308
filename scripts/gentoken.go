// One-off: go run scripts/gentoken.go <user-id>
// Mints a token for local testing. JWT_SECRET must be set.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/atul-mandavkar/inotebook-backend/internal/auth"
)

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}
	userID := int64(1)
	if len(os.Args) > 1 {
		id, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad user id: %v\n", err)
			os.Exit(1)
		}
		userID = id
	}
	token, err := auth.NewTokenService(secret).Issue(userID)
	if err != nil {
		panic(err)
	}
	fmt.Print(token)
}
