package commission

import "testing"

func TestDownPayment(t *testing.T) {
	if got := DownPayment(30_000_000); got != 3_000_000 {
		t.Errorf("down payment = %d, want 3000000", got)
	}
	if got := DownPayment(0); got != 0 {
		t.Errorf("down payment = %d, want 0", got)
	}
}

func TestBalance(t *testing.T) {
	if got := Balance(30_000_000, 3_000_000, 1_000_000, 0, 0); got != 26_000_000 {
		t.Errorf("balance = %d, want 26000000", got)
	}
	// 지급액 합이 보증금을 넘으면 0으로 고정
	if got := Balance(10_000_000, 5_000_000, 4_000_000, 3_000_000, 0); got != 0 {
		t.Errorf("balance = %d, want 0", got)
	}
}
