// api/db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/staffhubhq/staffhub/api/logging"
	"github.com/staffhubhq/staffhub/api/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func cacheTTL() time.Duration {
	ttl := viper.GetDuration("redis.defaultCacheTTL")
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return ttl
}

func setCached(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	encrypted, err := encrypt(payload)
	if err != nil {
		return fmt.Errorf("failed to encrypt cache entry: %w", err)
	}

	return RedisClient.Set(ctx, key, encrypted, cacheTTL()).Err()
}

func getCached(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := RedisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	decrypted, err := decrypt(raw)
	if err != nil {
		return false, fmt.Errorf("failed to decrypt cache entry: %w", err)
	}

	if err := json.Unmarshal(decrypted, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}
	return true, nil
}

func CacheDepartmentDetail(ctx context.Context, id string, detail *model.DepartmentDetail) error {
	return setCached(ctx, fmt.Sprintf("department:%s", id), detail)
}

func GetCachedDepartmentDetail(ctx context.Context, id string) (*model.DepartmentDetail, error) {
	var detail model.DepartmentDetail
	found, err := getCached(ctx, fmt.Sprintf("department:%s", id), &detail)
	if err != nil || !found {
		return nil, err
	}
	return &detail, nil
}

func DeleteCachedDepartmentDetail(ctx context.Context, id string) error {
	return RedisClient.Del(ctx, fmt.Sprintf("department:%s", id)).Err()
}

func CacheEmployeeDetail(ctx context.Context, id string, detail *model.EmployeeDetail) error {
	return setCached(ctx, fmt.Sprintf("employee:%s", id), detail)
}

func GetCachedEmployeeDetail(ctx context.Context, id string) (*model.EmployeeDetail, error) {
	var detail model.EmployeeDetail
	found, err := getCached(ctx, fmt.Sprintf("employee:%s", id), &detail)
	if err != nil || !found {
		return nil, err
	}
	return &detail, nil
}

func DeleteCachedEmployeeDetail(ctx context.Context, id string) error {
	return RedisClient.Del(ctx, fmt.Sprintf("employee:%s", id)).Err()
}
