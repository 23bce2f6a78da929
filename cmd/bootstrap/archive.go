package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/infra/archive"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var ArchiveModule = fx.Module("archive",
	fx.Provide(
		NewInvoiceArchive,
	),
)

func NewInvoiceArchive(cfg config.Config) (shared.InvoiceArchive, error) {
	if cfg.Archive.Table == "" {
		return archive.Noop{}, nil
	}

	client, err := archive.NewClient(context.Background(), cfg.Archive)
	if err != nil {
		return nil, err
	}
	slog.Info("invoice archive enabled", "table", cfg.Archive.Table, "region", cfg.Archive.Region)
	return archive.NewDynamoArchive(client, cfg.Archive.Table), nil
}
