package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatWithCommas 천 단위 콤마 표기. 12000000 → "12,000,000"
func FormatWithCommas(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteByte(',')
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	out := b.String()
	if neg {
		return "-" + out
	}
	return out
}

// FormatKoreanMoney 만원 단위 입력을 억/만으로 표기 (목록 표시용).
// 15000 → "1억 5,000", 9000 → "9,000"
func FormatKoreanMoney(man int64) string {
	if man < 10_000 {
		return FormatWithCommas(man)
	}
	eok := man / 10_000
	rest := man % 10_000
	if rest == 0 {
		return fmt.Sprintf("%d억", eok)
	}
	return fmt.Sprintf("%d억 %s", eok, FormatWithCommas(rest))
}

// FormatDealPrice 거래유형별 가격 표기.
// 매매 → 매매가, 월세 → "보증금 / 월세"
func FormatDealPrice(dealType string, salePrice, depositPrice, monthlyRent int64) string {
	switch dealType {
	case "매매":
		return FormatKoreanMoney(salePrice)
	case "월세":
		return FormatKoreanMoney(depositPrice) + " / " + FormatKoreanMoney(monthlyRent)
	default:
		return ""
	}
}
