package app

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/golnavaz/golnavaz/backend/go-services/internal/catalog/repository"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/config"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/database"
	"github.com/golnavaz/golnavaz/backend/go-services/internal/seed"
	"github.com/golnavaz/golnavaz/backend/go-services/pkg/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace FAQs, blogs and gallery images with the sample content",
	Long: `Clears the products, blogs, gallery and faqs collections and inserts the
fixed sample FAQs, blog posts and gallery images. Products are not re-seeded.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return Seed(cmd.Context(), cmd.OutOrStdout())
	},
}

// Seed runs one seeding pass against the configured database, writing the
// progress lines to out.
func Seed(ctx context.Context, out io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warnf("mongo disconnect: %v", err)
		}
	}()

	store, err := repository.NewMongoCatalogStore(ctx, client.Database(cfg.MongoDB.Database))
	if err != nil {
		return err
	}
	_, err = seed.NewSeeder(store, out).Run(ctx)
	return err
}
