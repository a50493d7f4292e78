package dal

import (
	"fmt"
	"log"
	"time"

	"baikuk-backoffice-api/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DealDB 매출(performance)/배분 DB
var DealDB *gorm.DB

func InitDealDB() {
	c := config.C.MysqlDeal
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Charset)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect deal db failed: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)
	DealDB = db
}
