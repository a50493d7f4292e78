package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 거래유형 커스텀 검증: 매매/월세만 저장 대상
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dealtype", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "매매" || s == "월세"
		})
	}
}
