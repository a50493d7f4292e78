package commission

import "testing"

func TestSplitNoExpense(t *testing.T) {
	fee := FeeResult{BuyerFee: 540_000, SellerFee: 540_000}
	got := SplitPerformance(fee, 50, 0, PolicyExpenseAware)
	if got.SellerPerformance != 270_000 || got.BuyerPerformance != 810_000 {
		t.Errorf("unexpected split: %+v", got)
	}
	// 비용이 없으면 합계가 보수 합과 정확히 일치
	if got.SellerPerformance+got.BuyerPerformance != fee.BuyerFee+fee.SellerFee {
		t.Error("split must conserve total fee when expense is zero")
	}
}

func TestSplitWithExpense(t *testing.T) {
	fee := FeeResult{BuyerFee: 540_000, SellerFee: 540_000}
	got := SplitPerformance(fee, 50, 200_000, PolicyExpenseAware)
	// expenseToSeller = 200,000 * (540,000*0.3)/1,080,000 = 30,000
	// expenseToBuyer  = 200,000 * (540,000+540,000*0.7)/1,080,000 = 170,000
	if got.SellerPerformance != 240_000 {
		t.Errorf("seller performance = %d, want 240000", got.SellerPerformance)
	}
	if got.BuyerPerformance != 640_000 {
		t.Errorf("buyer performance = %d, want 640000", got.BuyerPerformance)
	}
}

func TestSplitExpenseFullyAbsorbed(t *testing.T) {
	fee := FeeResult{BuyerFee: 330_000, SellerFee: 470_000}
	expense := int64(123_456)
	got := SplitPerformance(fee, 30, expense, PolicyExpenseAware)
	total := fee.BuyerFee + fee.SellerFee - expense
	diff := got.SellerPerformance + got.BuyerPerformance - total
	// 양쪽 각각 반올림하므로 1원 이내 오차만 허용
	if diff < -1 || diff > 1 {
		t.Errorf("expense not fully absorbed: diff=%d", diff)
	}
}

func TestSplitClampAtZero(t *testing.T) {
	// 비용이 보수 합보다 커서 차감 결과가 음수가 되는 경우
	fee := FeeResult{BuyerFee: 100_000, SellerFee: 100_000}
	got := SplitPerformance(fee, 100, 1_000_000, PolicyExpenseAware)
	if got.SellerPerformance < 0 || got.BuyerPerformance < 0 {
		t.Errorf("performance must never be negative: %+v", got)
	}
}

func TestSplitZeroDenom(t *testing.T) {
	got := SplitPerformance(FeeResult{}, 50, 300_000, PolicyExpenseAware)
	if got.SellerPerformance != 0 || got.BuyerPerformance != 0 {
		t.Errorf("zero fees must yield zero split: %+v", got)
	}
}

func TestSplitSimplePolicy(t *testing.T) {
	fee := FeeResult{BuyerFee: 540_000, SellerFee: 540_000}
	// simple 정책은 비용을 무시한다
	got := SplitPerformance(fee, 30, 999_999, PolicySimple)
	if got.SellerPerformance != 162_000 {
		t.Errorf("seller performance = %d, want 162000", got.SellerPerformance)
	}
	if got.BuyerPerformance != 918_000 {
		t.Errorf("buyer performance = %d, want 918000", got.BuyerPerformance)
	}
	if got.SellerPerformance+got.BuyerPerformance != fee.BuyerFee+fee.SellerFee {
		t.Error("simple split must conserve total fee")
	}
}
