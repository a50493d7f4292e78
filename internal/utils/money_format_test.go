package utils

import "testing"

func TestFormatWithCommas(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{12000000, "12,000,000"},
		{-540000, "-540,000"},
	}
	for _, c := range cases {
		if got := FormatWithCommas(c.in); got != c.want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatKoreanMoney(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{9000, "9,000"},
		{10000, "1억"},
		{15000, "1억 5,000"},
		{123456, "12억 3,456"},
	}
	for _, c := range cases {
		if got := FormatKoreanMoney(c.in); got != c.want {
			t.Errorf("FormatKoreanMoney(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDealPrice(t *testing.T) {
	if got := FormatDealPrice("매매", 60000, 0, 0); got != "6억" {
		t.Errorf("sale price = %q", got)
	}
	if got := FormatDealPrice("월세", 0, 3000, 200); got != "3,000 / 200" {
		t.Errorf("monthly rent price = %q", got)
	}
	if got := FormatDealPrice("전세", 1, 2, 3); got != "" {
		t.Errorf("unknown type = %q", got)
	}
}
