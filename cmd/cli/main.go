package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/thanwa-dev/priceboard/cmd/cli/root"

	_ "github.com/thanwa-dev/priceboard/cmd/cli/admins"
	_ "github.com/thanwa-dev/priceboard/cmd/cli/prices"
)

func main() {
	_ = godotenv.Load()

	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
