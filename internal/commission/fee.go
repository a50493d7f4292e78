package commission

import "github.com/shopspring/decimal"

// DealType 거래유형
type DealType string

const (
	DealSale        DealType = "매매"
	DealMonthlyRent DealType = "월세"
)

// 중개보수 요율 (고정 정책 상수)
const (
	// FeeTierThreshold 이상이면 상위 요율 적용
	FeeTierThreshold int64 = 50_000_000
	// MonthlyRentFactor 월세 → 보증금 환산 배수
	MonthlyRentFactor int64 = 100
)

var (
	feeRateHigh = decimal.NewFromFloat(0.009)
	feeRateLow  = decimal.NewFromFloat(0.007)
)

// DealRecord 협의 중인 거래 1건 (금액 단위: 원)
type DealRecord struct {
	DealType     DealType
	SalePrice    int64
	DepositPrice int64
	MonthlyRent  int64
	PremiumPrice int64
	Expense      int64
}

// FeeResult 매수/매도 중개보수
type FeeResult struct {
	BuyerFee  int64
	SellerFee int64
}

// BaseAmount 요율 적용 기준금액.
// 매매 → 매매가, 월세 → 월세*100 + 보증금. 그 외 유형은 ok=false.
func BaseAmount(deal DealRecord) (int64, bool) {
	switch deal.DealType {
	case DealSale:
		return deal.SalePrice, true
	case DealMonthlyRent:
		return deal.MonthlyRent*MonthlyRentFactor + deal.DepositPrice, true
	default:
		return 0, false
	}
}

// FeeRate 기준금액에 적용되는 요율
func FeeRate(baseAmount int64) decimal.Decimal {
	if baseAmount >= FeeTierThreshold {
		return feeRateHigh
	}
	return feeRateLow
}

// DeriveFee 거래유형/금액으로 중개보수 산출.
// 알 수 없는 거래유형이면 ok=false, 호출측은 기존 수수료 값을 유지해야 한다.
func DeriveFee(deal DealRecord) (FeeResult, bool) {
	base, ok := BaseAmount(deal)
	if !ok {
		return FeeResult{}, false
	}
	fee := RoundWon(fromInt(base).Mul(FeeRate(base)))
	return FeeResult{BuyerFee: fee, SellerFee: fee}, true
}
