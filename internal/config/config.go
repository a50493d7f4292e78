package config

import (
	"flag"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RabbitCfg struct {
	URL string `mapstructure:"url"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
type SecurityCfg struct {
	HMACSecret string `mapstructure:"hmacSecret"`
}
type PerformanceCfg struct {
	// 매출 저장 요청 타임아웃 (초)
	SaveTimeoutSec int `mapstructure:"saveTimeoutSec"`
	// 신규 폼의 분배율 기본값 %
	DefaultDistRatePct float64 `mapstructure:"defaultDistRatePct"`
	// 감사 로그 월별 샤드 수
	LogShardsPerMonth int `mapstructure:"logShardsPerMonth"`
}
type CorsCfg struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

type Root struct {
	Server    ServerCfg      `mapstructure:"server"`
	MysqlMain MysqlCfg       `mapstructure:"mysql_main"`
	MysqlDeal MysqlCfg       `mapstructure:"mysql_deal"`
	RabbitMQ  RabbitCfg      `mapstructure:"rabbitmq"`
	Redis     RedisCfg       `mapstructure:"redis"`
	Security  SecurityCfg    `mapstructure:"security"`
	Perf      PerformanceCfg `mapstructure:"performance"`
	Cors      CorsCfg        `mapstructure:"cors"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile("config/config." + *env + ".yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config file failed: %v", err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}

	// sane defaults
	if strings.TrimSpace(C.Server.Port) == "" {
		C.Server.Port = "8080"
	}
	if C.Perf.SaveTimeoutSec <= 0 {
		C.Perf.SaveTimeoutSec = 3
	}
	if C.Perf.DefaultDistRatePct <= 0 {
		C.Perf.DefaultDistRatePct = 30
	}
	if C.Perf.LogShardsPerMonth <= 0 {
		C.Perf.LogShardsPerMonth = 4
	}
	if len(C.Cors.AllowOrigins) == 0 {
		C.Cors.AllowOrigins = []string{"*"}
	}
}
