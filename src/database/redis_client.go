package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// InitRedis เชื่อมต่อ Redis ถ้า REDIS_URI ถูกตั้งค่าไว้
// ไม่มี Redis ก็รันต่อได้ — งานลบไฟล์จะ fallback เป็น goroutine ตรง ๆ
func InitRedis(redisURI string) *redis.Client {
	if redisURI == "" {
		log.Println("⚠️ REDIS_URI non défini. Les tâches de fond utiliseront un fallback direct.")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisURI,
		Password: "",
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("⚠️ Redis injoignable:", err)
		return nil
	}

	log.Println("✅ Redis connecté")
	return client
}
