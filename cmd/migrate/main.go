package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"hotel-booking-engine/internal/infra/gormstore"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dirURL  string
	timeout time.Duration
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Booking engine schema migrations",
	}
	rootCmd.PersistentFlags().StringVar(&dirURL, "dir", "file://migrations", "migration directory URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")

	rootCmd.AddCommand(upCmd, statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations to the configured store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadStoreConfig()
		if err != nil {
			return err
		}

		if cfg.Store.Driver == config.StoreDriverSQLite {
			db, cleanup, err := gormstore.Open(cfg.SQLite)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := gormstore.Migrate(db); err != nil {
				return err
			}
			cmd.Println("sqlite schema is up to date")
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		client, err := newAtlasClient()
		if err != nil {
			return err
		}
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
			URL:    cfg.DB.BuildDSN(),
			DirURL: dirURL,
		})
		if err != nil {
			return errs.Wrap(err, "apply migrations")
		}

		for _, f := range res.Applied {
			cmd.Printf("applied %s\n", f.Name)
		}
		cmd.Printf("now at version %q (%d applied)\n", res.Target, len(res.Applied))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadStoreConfig()
		if err != nil {
			return err
		}
		if cfg.Store.Driver == config.StoreDriverSQLite {
			cmd.Println("sqlite schema is managed by the application on startup")
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		client, err := newAtlasClient()
		if err != nil {
			return err
		}
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    cfg.DB.BuildDSN(),
			DirURL: dirURL,
		})
		if err != nil {
			return errs.Wrap(err, "migration status")
		}

		cmd.Printf("status:  %s\n", st.Status)
		cmd.Printf("current: %s\n", st.Current)
		cmd.Printf("next:    %s\n", st.Next)
		for _, f := range st.Pending {
			cmd.Printf("pending  %s\n", f.Name)
		}
		return nil
	},
}

func newAtlasClient() (*atlasexec.Client, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	client, err := atlasexec.NewClient(wd, "atlas")
	if err != nil {
		return nil, errs.Wrap(err, "atlas client")
	}
	return client, nil
}
