package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Insurance Quotes API
// @version         1.0
// @description     Quote requests, underwriting decisions and policies for the customer-core and policy-management services.

// @host      localhost:8080
// @BasePath  /v1

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
