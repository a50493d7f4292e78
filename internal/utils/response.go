package utils

import "baikuk-backoffice-api/internal/constant"

// 통일 응답 형식 (한/영 메시지 지원)
type Response struct {
	Code    int         `json:"code"`
	Msg     string      `json:"msg"`              // 한국어 설명
	MsgEN   string      `json:"msg_en,omitempty"` // 영어 설명
	Data    interface{} `json:"data,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

// 성공 응답
func Success(data interface{}) Response {
	return Response{
		Code:  constant.CodeSuccess,
		Msg:   "성공",
		MsgEN: "Success",
		Data:  data,
	}
}

// 오류 응답 (constant에서 한/영 메시지를 찾는다)
func Error(code int) Response {
	if info, exists := constant.GetErrorInfo(code); exists {
		return Response{
			Code:  code,
			Msg:   info.KR,
			MsgEN: info.EN,
		}
	}
	return Response{
		Code:  code,
		Msg:   "알 수 없는 오류",
		MsgEN: "Unknown error",
	}
}

// 데이터를 포함한 오류 응답
func ErrorWithData(code int, data interface{}) Response {
	r := Error(code)
	r.Data = data
	return r
}

// 임의 메시지 오류 응답
func CustomError(code int, message string) Response {
	return Response{
		Code:  code,
		Msg:   message,
		MsgEN: "Custom error",
	}
}
