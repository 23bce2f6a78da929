// Package archive keeps a copy of issued invoices in DynamoDB.
package archive

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type PutItemAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// invoiceItem is keyed by invoice id; one item per booking invoice.
type invoiceItem struct {
	ID                  string `dynamodbav:"id"`
	BookingID           string `dynamodbav:"booking_id"`
	Reference           string `dynamodbav:"reference"`
	DiscountID          string `dynamodbav:"discount_id,omitempty"`
	RoomTotal           string `dynamodbav:"room_total"`
	ChargeTotal         string `dynamodbav:"charge_total"`
	Subtotal            string `dynamodbav:"subtotal"`
	DiscountAmount      string `dynamodbav:"discount_amount"`
	AmountAfterDiscount string `dynamodbav:"amount_after_discount"`
	VATRate             string `dynamodbav:"vat_rate"`
	VATAmount           string `dynamodbav:"vat_amount"`
	FinalTotal          string `dynamodbav:"final_total"`
	Downpayment         string `dynamodbav:"downpayment"`
	ExtensionPayments   string `dynamodbav:"extension_payments"`
	Balance             string `dynamodbav:"balance"`
	PaymentMethod       string `dynamodbav:"payment_method"`
	Status              string `dynamodbav:"status"`
	CreatedAt           string `dynamodbav:"created_at"`
}

type DynamoArchive struct {
	ddb       PutItemAPI
	tableName string
}

var _ shared.InvoiceArchive = (*DynamoArchive)(nil)

func NewDynamoArchive(ddb PutItemAPI, tableName string) *DynamoArchive {
	return &DynamoArchive{ddb: ddb, tableName: tableName}
}

// Archive is idempotent: an item that already exists counts as archived.
func (a *DynamoArchive) Archive(ctx context.Context, inv *billing.Invoice, reference string) error {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv, reference))
	if err != nil {
		return errs.Wrap(err, "failed to marshal invoice")
	}

	_, err = a.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(a.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	var exists *types.ConditionalCheckFailedException
	if errors.As(err, &exists) {
		return nil
	}
	if err != nil {
		return errs.Wrapf(err, "failed to archive invoice %s", inv.ID())
	}
	return nil
}

func toInvoiceItem(inv *billing.Invoice, reference string) invoiceItem {
	bd := inv.Breakdown().Rounded()
	it := invoiceItem{
		ID:                  inv.ID().String(),
		BookingID:           inv.BookingID().String(),
		Reference:           reference,
		RoomTotal:           money.Format(bd.RoomTotal),
		ChargeTotal:         money.Format(bd.ChargeTotal),
		Subtotal:            money.Format(bd.Subtotal),
		DiscountAmount:      money.Format(bd.DiscountAmount),
		AmountAfterDiscount: money.Format(bd.AmountAfterDiscount),
		VATRate:             bd.VATRate.String(),
		VATAmount:           money.Format(bd.VATAmount),
		FinalTotal:          money.Format(bd.FinalTotal),
		Downpayment:         money.Format(bd.Downpayment),
		ExtensionPayments:   money.Format(bd.ExtensionPayments),
		Balance:             money.Format(bd.Balance),
		PaymentMethod:       string(inv.PaymentMethod()),
		Status:              string(inv.Status()),
		CreatedAt:           inv.CreatedAt().UTC().Format(time.RFC3339),
	}
	if id := inv.DiscountID(); id != nil {
		it.DiscountID = id.String()
	}
	return it
}

// NewClient builds a DynamoDB client. Endpoint points it at DynamoDB Local.
func NewClient(ctx context.Context, cfg config.ArchiveConfig) (*dynamodb.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.Endpoint != "" {
		// Local DynamoDB does not validate credentials, but the SDK requires them.
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load aws config")
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// Noop is used when no archive table is configured.
type Noop struct{}

func (Noop) Archive(_ context.Context, inv *billing.Invoice, _ string) error {
	slog.Debug("invoice archive disabled", "invoice_id", inv.ID().String())
	return nil
}
