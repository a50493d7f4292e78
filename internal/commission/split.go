package commission

import "github.com/shopspring/decimal"

// SplitPolicy 매출 분배 방식
type SplitPolicy string

const (
	// PolicySimple 비용 배분 없는 구버전 분배 (레거시 페이지)
	PolicySimple SplitPolicy = "simple"
	// PolicyExpenseAware 비용 배분 포함 분배 (현행 기준)
	PolicyExpenseAware SplitPolicy = "expense_aware"
)

// 비용 배분 계수: 매도측은 매도보수의 30%, 매수측이 나머지를 흡수한다.
// 계수 합이 denom과 일치하므로 denom>0이면 배분된 비용의 합은 expense와 같다.
var (
	expenseSellerShare = decimal.NewFromFloat(0.30)
	expenseBuyerShare  = decimal.NewFromFloat(0.70)
)

// PerformanceSplit 매수/매도측 순매출
type PerformanceSplit struct {
	SellerPerformance int64
	BuyerPerformance  int64
}

// SplitPerformance 보수 합계를 매수/매도 매출로 분배한다.
// distRatePct: 매도(매물확보)측 분배율 %.
//
// PolicyExpenseAware에서 비용 차감 후 음수가 되는 쪽은 0으로 고정되고
// 부족분은 반대쪽으로 재배분되지 않는다. 합계 보존이 깨지는 기존 정산
// 동작을 그대로 따른 것이므로 수정하지 말 것.
func SplitPerformance(fee FeeResult, distRatePct float64, expense int64, policy SplitPolicy) PerformanceSplit {
	buyerFee := fromInt(fee.BuyerFee)
	sellerFee := fromInt(fee.SellerFee)

	sellerGross := sellerFee.Mul(pct(distRatePct))
	buyerGross := buyerFee.Add(sellerFee).Sub(sellerGross)

	if policy == PolicySimple {
		return PerformanceSplit{
			SellerPerformance: RoundWon(sellerGross),
			BuyerPerformance:  RoundWon(buyerGross),
		}
	}

	denom := buyerFee.Add(sellerFee)
	expenseToSeller := decimal.Zero
	expenseToBuyer := decimal.Zero
	if denom.IsPositive() && expense > 0 {
		exp := fromInt(expense)
		expenseToSeller = exp.Mul(sellerFee.Mul(expenseSellerShare)).Div(denom)
		expenseToBuyer = exp.Mul(buyerFee.Add(sellerFee.Mul(expenseBuyerShare))).Div(denom)
	}

	return PerformanceSplit{
		SellerPerformance: clampWon(sellerGross.Sub(expenseToSeller)),
		BuyerPerformance:  clampWon(buyerGross.Sub(expenseToBuyer)),
	}
}

// clampWon 반올림 후 0 미만이면 0
func clampWon(d decimal.Decimal) int64 {
	n := RoundWon(d)
	if n < 0 {
		return 0
	}
	return n
}
