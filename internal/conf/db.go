package conf

import (
	"context"
	"sync"

	"ripplenet-backend/internal/model"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	gormdb *gorm.DB
	Redis  *redis.Client
	once   sync.Once
)

func MustGormDB() *gorm.DB {
	once.Do(func() {
		var err error
		if gormdb, err = newDBEngine(); err != nil {
			logrus.Fatalf("new gorm db failed: %s", err)
		}
		if err = migrateSchema(gormdb); err != nil {
			logrus.Fatalf("gorm db migrate schema failed: %s", err)
		}
	})
	return gormdb
}

func newDBEngine() (*gorm.DB, error) {
	logrus.Debugln("use PostgreSQL as db")

	logLevel := logger.Warn
	switch DatabaseSetting.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "info":
		logLevel = logger.Info
	}

	return gorm.Open(postgres.Open(DatabaseSetting.Dsn()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "p_",
			SingularTable: true,
		},
	})
}

func migrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Reshare{},
		&model.PostLike{},
		&model.PostMedia{},
		&model.PostHashtag{},
		&model.PostMention{},
		&model.Following{},
		&model.Blacklist{},
		&model.Mute{},
		&model.Interest{},
		&model.UserInterest{},
	)
}

func setupDBEngine() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     RedisSetting.Host,
		Password: RedisSetting.Password,
		DB:       RedisSetting.DB,
	})
	if err := Redis.Ping(context.TODO()).Err(); err != nil {
		logrus.Fatalf("new redis failed: %s", err)
	}
}
