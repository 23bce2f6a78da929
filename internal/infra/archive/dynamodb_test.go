//go:build unit

package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/pkg/money"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	inputs []*dynamodb.PutItemInput
	err    error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func newInvoice(t *testing.T) *billing.Invoice {
	t.Helper()
	bd := billing.Breakdown{
		RoomTotal:           money.MustParse("9000"),
		ChargeTotal:         money.MustParse("0"),
		Subtotal:            money.MustParse("9000"),
		DiscountAmount:      money.MustParse("0"),
		AmountAfterDiscount: money.MustParse("9000"),
		VATRate:             money.MustParse("0.12"),
		VATAmount:           money.MustParse("1080"),
		FinalTotal:          money.MustParse("10080"),
		Downpayment:         money.MustParse("1000"),
		ExtensionPayments:   money.MustParse("0"),
		Balance:             money.MustParse("9080"),
	}
	return billing.NewInvoice(uuid.New(), bd, billing.MethodCash, nil, time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
}

func TestDynamoArchive_Archive(t *testing.T) {
	t.Run("writes a conditional put keyed by invoice id", func(t *testing.T) {
		fake := &fakeDynamo{}
		inv := newInvoice(t)

		err := NewDynamoArchive(fake, "invoices").Archive(context.Background(), inv, "BK-20250610-ABCDEF")
		require.NoError(t, err)
		require.Len(t, fake.inputs, 1)

		in := fake.inputs[0]
		assert.Equal(t, "invoices", *in.TableName)
		assert.Equal(t, "attribute_not_exists(#id)", *in.ConditionExpression)

		var it invoiceItem
		require.NoError(t, attributevalue.UnmarshalMap(in.Item, &it))
		assert.Equal(t, inv.ID().String(), it.ID)
		assert.Equal(t, "BK-20250610-ABCDEF", it.Reference)
		assert.Equal(t, "10080.00", it.FinalTotal)
		assert.Equal(t, "9080.00", it.Balance)
		assert.Empty(t, it.DiscountID)
	})

	t.Run("already archived is not an error", func(t *testing.T) {
		fake := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		err := NewDynamoArchive(fake, "invoices").Archive(context.Background(), newInvoice(t), "BK-1")
		assert.NoError(t, err)
	})

	t.Run("other failures surface", func(t *testing.T) {
		fake := &fakeDynamo{err: errors.New("throttled")}
		err := NewDynamoArchive(fake, "invoices").Archive(context.Background(), newInvoice(t), "BK-1")
		assert.ErrorContains(t, err, "throttled")
	})
}
