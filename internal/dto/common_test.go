package dto

import (
	"encoding/json"
	"testing"
)

func TestWonCoercion(t *testing.T) {
	var v struct {
		A Won `json:"a"`
		B Won `json:"b"`
		C Won `json:"c"`
		D Won `json:"d"`
	}
	raw := `{"a": 540000, "b": "1,234,567", "c": null, "d": "abc"}`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatal(err)
	}
	if v.A != 540000 {
		t.Errorf("a = %d", v.A)
	}
	if v.B != 1234567 {
		t.Errorf("b = %d", v.B)
	}
	// 누락/쓰레기 값은 오류가 아니라 0
	if v.C != 0 || v.D != 0 {
		t.Errorf("c = %d, d = %d", v.C, v.D)
	}
}

func TestPctCoercion(t *testing.T) {
	var v struct {
		R Pct `json:"r"`
		S Pct `json:"s"`
	}
	if err := json.Unmarshal([]byte(`{"r": "33.3", "s": 50}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.R != 33.3 || v.S != 50 {
		t.Errorf("r = %v, s = %v", v.R, v.S)
	}
}
