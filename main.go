package main

import (
	"os"

	"storefront/commands"
)

// @title Storefront API
// @version 1.0
// @description Product catalog filtering and shopping cart.
// @BasePath /
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
