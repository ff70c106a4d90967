// Command seed loads the sample FAQs, blogs and gallery images into MongoDB.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/app"
)

func main() {
	if err := app.Seed(context.Background(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error seeding database: %v\n", err)
		os.Exit(1)
	}
}
