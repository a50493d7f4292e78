package utils

import "encoding/json"

// MapToJSON 구조체/맵 → JSON 문자열
func MapToJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// JSONToMap JSON 문자열 → 대상 구조체/맵
func JSONToMap(s string, out any) error {
	return json.Unmarshal([]byte(s), out)
}
