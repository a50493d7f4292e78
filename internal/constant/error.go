package constant

import "fmt"

// Error 업무 오류 인터페이스
type Error interface {
	error
	Code() int
	Message() string
	WithData(data interface{}) Error
}

// CustomError 코드 기반 오류 구현
type CustomError struct {
	code    int
	message string
	data    interface{}
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("code: %d, message: %s", e.code, e.message)
}

func (e *CustomError) Code() int {
	return e.code
}

func (e *CustomError) Message() string {
	return e.message
}

func (e *CustomError) WithData(data interface{}) Error {
	e.data = data
	return e
}

// NewError 코드로 오류 생성
func NewError(code int) Error {
	if info, exists := ErrorMessages[code]; exists {
		return &CustomError{code: code, message: info.KR}
	}
	return &CustomError{code: code, message: "알 수 없는 오류"}
}

// NewErrorWithMessage 코드 + 개별 메시지 (검증 실패 사유 전달용)
func NewErrorWithMessage(code int, message string) Error {
	return &CustomError{code: code, message: message}
}

// GetErrorInfo 코드의 메시지 조회
func GetErrorInfo(code int) (ErrorInfo, bool) {
	info, exists := ErrorMessages[code]
	return info, exists
}
