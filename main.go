package main

import (
	"os"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
