package commission

import "math"

// MaxAllocationSlots 한 거래당 배분 가능한 최대 직원 수
const MaxAllocationSlots = 4

// 분배율 합계 비교 오차. 가중치는 보통 정수지만 소수 입력도 허용한다.
const weightEpsilon = 1e-6

// AllocationRow 직원 1명의 매출 배분 슬롯.
// StaffID가 비어 있으면 미배정 슬롯이며 저장 시 모든 값이 0으로 강제된다.
type AllocationRow struct {
	StaffID          string
	BuyerWeightPct   float64
	SellerWeightPct  float64
	BuyerAmount      int64
	SellerAmount     int64
	InvolvementSales int64
}

// Allocate 매수/매도 매출을 분배율대로 각 슬롯에 배분한다 (in-place).
// 미배정 슬롯은 입력된 가중치까지 폐기한다. InvolvementSales는 항상
// 재계산되며 사용자 입력값은 무시된다.
func Allocate(split PerformanceSplit, rows []AllocationRow) {
	for i := range rows {
		r := &rows[i]
		if r.StaffID == "" {
			r.BuyerWeightPct = 0
			r.SellerWeightPct = 0
			r.BuyerAmount = 0
			r.SellerAmount = 0
			r.InvolvementSales = 0
			continue
		}
		r.BuyerAmount = RoundWon(fromInt(split.BuyerPerformance).Mul(pct(r.BuyerWeightPct)))
		r.SellerAmount = RoundWon(fromInt(split.SellerPerformance).Mul(pct(r.SellerWeightPct)))
		r.InvolvementSales = r.BuyerAmount + r.SellerAmount
	}
}

// ValidateWeights 배정된 슬롯의 분배율 합이 양쪽 모두 100%인지 검사한다.
// 실패 시 어느 쪽이 어긋났는지 설명을 돌려준다. 차단 여부는 호출측 결정.
func ValidateWeights(rows []AllocationRow) (bool, string) {
	var totalBuyer, totalSeller float64
	for i := range rows {
		if rows[i].StaffID == "" {
			continue
		}
		totalBuyer += rows[i].BuyerWeightPct
		totalSeller += rows[i].SellerWeightPct
	}
	buyerOK := math.Abs(totalBuyer-100) < weightEpsilon
	sellerOK := math.Abs(totalSeller-100) < weightEpsilon

	switch {
	case !buyerOK && !sellerOK:
		return false, "클로징과 매물확보 비율의 합이 각각 100%이어야 합니다."
	case !buyerOK:
		return false, "클로징(매수) 비율의 합이 100%가 아닙니다."
	case !sellerOK:
		return false, "매물확보(매도) 비율의 합이 100%가 아닙니다."
	}
	return true, ""
}

// PreviewRow 입력 중 실시간 표시용 관여매출.
// 저장 시의 Allocate 결과와 반올림이 달라질 수 있으므로 참고값으로만 쓴다.
func PreviewRow(split PerformanceSplit, buyerWeightPct, sellerWeightPct float64) int64 {
	sum := fromInt(split.BuyerPerformance).Mul(pct(buyerWeightPct)).
		Add(fromInt(split.SellerPerformance).Mul(pct(sellerWeightPct)))
	return RoundWon(sum)
}
