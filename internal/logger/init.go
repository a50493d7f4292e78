package logger

import "github.com/sirupsen/logrus"

// Save 매출 저장/정산 처리 로그
var Save *logrus.Logger

// Request HTTP 요청 로그
var Request *logrus.Logger

func Init() {
	Save = NewLogger("save")
	Request = NewLogger("request")
}
