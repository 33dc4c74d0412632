// internal/domain/member/member_test.go
package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

func TestRankFor(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   Rank
	}{
		{"zero", 0, RankNormal},
		{"just below silver", 999_999, RankNormal},
		{"silver threshold", 1_000_000, RankSilver},
		{"just below gold", 9_999_999, RankSilver},
		{"gold threshold", 10_000_000, RankGold},
		{"just below platinum", 99_999_999, RankGold},
		{"platinum threshold", 100_000_000, RankPlatinum},
		{"diamond threshold", 1_000_000_000, RankDiamond},
		{"far beyond diamond", 5_000_000_000, RankDiamond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RankFor(tt.amount))
		})
	}
}

func TestDiscountRate(t *testing.T) {
	assert.Equal(t, 0, RankNormal.DiscountRate())
	assert.Equal(t, 5, RankSilver.DiscountRate())
	assert.Equal(t, 10, RankGold.DiscountRate())
	assert.Equal(t, 15, RankPlatinum.DiscountRate())
	assert.Equal(t, 30, RankDiamond.DiscountRate())
	assert.Equal(t, 0, Rank("unknown").DiscountRate())
}

func TestRankMonotonicity(t *testing.T) {
	amounts := []int64{0, 500_000, 1_000_000, 5_000_000, 10_000_000, 99_999_999, 100_000_000, 1_000_000_000}

	prev := -1
	for _, amount := range amounts {
		rate := RankFor(amount).DiscountRate()
		assert.GreaterOrEqual(t, rate, prev, "discount rate dropped at amount %d", amount)
		prev = rate
	}
}

func TestMemberInformation(t *testing.T) {
	m := Member{ID: 1, Username: "jude", CumulativePurchaseAmount: 12_000_000}

	info := m.Information()
	assert.Equal(t, RankGold, info.Rank)
	assert.Equal(t, int64(12_000_000), info.CumulativePurchaseAmount)
	assert.Equal(t, 10, info.DiscountRate)
}

func TestServiceAuthenticate(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService([]Member{{ID: 1, Username: "jude", PasswordHash: hash}})
	ctx := context.Background()

	m, err := svc.Authenticate(ctx, "jude", "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(1), m.ID)

	_, err = svc.Authenticate(ctx, "jude", "wrong")
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	_, err = svc.Authenticate(ctx, "nobody", "secret")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestServiceRecordPurchase(t *testing.T) {
	svc := NewService([]Member{{ID: 1, Username: "jude", CumulativePurchaseAmount: 999_000}})
	ctx := context.Background()

	_, err := svc.RecordPurchase(ctx, 1, -1)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	info, err := svc.GetInformation(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, RankNormal, info.Rank, "failed purchase must not move the amount")

	// Crossing the silver threshold raises the rank
	info, err = svc.RecordPurchase(ctx, 1, 1_000)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), info.CumulativePurchaseAmount)
	assert.Equal(t, RankSilver, info.Rank)

	_, err = svc.RecordPurchase(ctx, 99, 1_000)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
