// internal/domain/member/entity.go
package member

// Rank represents a loyalty rank. The serialized values are the storefront's
// display names and are part of the wire contract.
type Rank string

const (
	RankNormal   Rank = "일반"
	RankSilver   Rank = "실버"
	RankGold     Rank = "골드"
	RankPlatinum Rank = "플래티넘"
	RankDiamond  Rank = "다이아몬드"
)

// rankTier couples a rank with the cumulative purchase amount required to
// reach it. Tiers are ordered by ascending threshold.
type rankTier struct {
	rank      Rank
	threshold int64
}

var rankTiers = []rankTier{
	{RankNormal, 0},
	{RankSilver, 1_000_000},
	{RankGold, 10_000_000},
	{RankPlatinum, 100_000_000},
	{RankDiamond, 1_000_000_000},
}

var discountRates = map[Rank]int{
	RankNormal:   0,
	RankSilver:   5,
	RankGold:     10,
	RankPlatinum: 15,
	RankDiamond:  30,
}

// RankFor returns the highest rank whose threshold is at or below the given
// cumulative purchase amount. It is total: any amount maps to a rank.
func RankFor(cumulativePurchaseAmount int64) Rank {
	rank := RankNormal
	for _, tier := range rankTiers {
		if cumulativePurchaseAmount < tier.threshold {
			break
		}
		rank = tier.rank
	}
	return rank
}

// DiscountRate returns the fixed member discount percentage for the rank.
// Unknown ranks get no discount.
func (r Rank) DiscountRate() int {
	return discountRates[r]
}

// Member represents a shopper account.
type Member struct {
	ID                       uint   `json:"id"`
	Username                 string `json:"username"`
	PasswordHash             string `json:"-"`
	CumulativePurchaseAmount int64  `json:"cumulativePurchaseAmount"`
}

// Information is the read model exposed to the storefront. Rank is derived
// from the cumulative purchase amount, never set directly.
type Information struct {
	Rank                     Rank  `json:"rank"`
	CumulativePurchaseAmount int64 `json:"cumulativePurchaseAmount"`
	DiscountRate             int   `json:"discountRate"`
}

// Information derives the member's current rank and discount rate.
func (m *Member) Information() Information {
	rank := RankFor(m.CumulativePurchaseAmount)
	return Information{
		Rank:                     rank,
		CumulativePurchaseAmount: m.CumulativePurchaseAmount,
		DiscountRate:             rank.DiscountRate(),
	}
}
