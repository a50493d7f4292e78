package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"baikuk-backoffice-api/internal/cache"
	"baikuk-backoffice-api/internal/config"
	"baikuk-backoffice-api/internal/dal"
	"baikuk-backoffice-api/internal/dao"
	"baikuk-backoffice-api/internal/handler"
	"baikuk-backoffice-api/internal/idgen"
	"baikuk-backoffice-api/internal/logger"
	"baikuk-backoffice-api/internal/middleware"
	"baikuk-backoffice-api/internal/mq"
	"baikuk-backoffice-api/internal/settlement"
	"baikuk-backoffice-api/internal/shard"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitMainDB()
	dal.InitDealDB()
	dal.InitRedis()
	dal.InitRabbitMQ()

	logger.Init()
	idgen.Init(1)
	shard.InitShardEngines()

	// staff cache shared by handlers and consumers
	staffCache := cache.NewStaffCache(dao.NewMainDao(), dal.RedisClient)
	stl := settlement.New(staffCache)

	// start consumers
	go mq.StartConsumers(stl)

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recover())
	r.Use(middleware.Trace())
	r.Use(middleware.RequestLogger())

	corsCfg := cors.DefaultConfig()
	if len(config.C.Cors.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = config.C.Cors.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Signature")
	r.Use(cors.New(corsCfg))

	v1 := r.Group("/api/v1")
	{
		dh := handler.NewDealHandler(staffCache)
		v1.POST("/performance", middleware.AuthHMAC(), dh.Create)
		v1.PUT("/performance/:id", middleware.AuthHMAC(), dh.Update)
		v1.GET("/performance/:id", dh.Get)
		v1.GET("/performance", dh.List)
		v1.POST("/performance/preview", dh.Preview)
		v1.GET("/performance/defaults", dh.FormDefaults)

		sh := handler.NewSettlementHandler(staffCache)
		v1.GET("/settlement/branches", sh.Branches)
		v1.GET("/settlement/:affiliation/monthly", sh.Monthly)

		th := handler.NewStaffHandler(staffCache)
		v1.GET("/staff", th.List)
		v1.POST("/staff/refresh", middleware.AuthHMAC(), th.Refresh)
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
