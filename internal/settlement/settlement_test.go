package settlement

import (
	"testing"

	dealmodel "baikuk-backoffice-api/internal/model/deal"
)

func strp(s string) *string { return &s }

func TestSumForStaffFiltersByBranch(t *testing.T) {
	a := &dealmodel.PerformanceAllocation{
		StaffID1: strp("u1"), InvolvementSales1: 880_000,
		StaffID2: strp("u9"), InvolvementSales2: 120_000, // 타 지점
		StaffID3: nil, InvolvementSales3: 999,
	}
	staff := map[string]struct{}{"u1": {}}
	if got := sumForStaff(a, staff); got != 880_000 {
		t.Errorf("sum = %d, want 880000", got)
	}
}

func TestSumForStaffLegacyFallback(t *testing.T) {
	// 관여매출이 비어 있는 과거 행은 매수+매도 금액으로 합산
	a := &dealmodel.PerformanceAllocation{
		StaffID1: strp("u1"), InvolvementSales1: 0,
		BuyerAmount1: 500_000, SellerAmount1: 200_000,
	}
	staff := map[string]struct{}{"u1": {}}
	if got := sumForStaff(a, staff); got != 700_000 {
		t.Errorf("sum = %d, want 700000", got)
	}
}

func TestSumForStaffEmptySlotIgnored(t *testing.T) {
	a := &dealmodel.PerformanceAllocation{
		StaffID1: strp(""), InvolvementSales1: 123_456,
	}
	staff := map[string]struct{}{"": {}}
	if got := sumForStaff(a, staff); got != 0 {
		t.Errorf("empty staff slot must contribute 0, got %d", got)
	}
}
