// utils/attempts.go
package utils

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ValidateLoginAttempts counts failed logins per account in Redis and bails
// out after 5 within an hour. A nil client disables throttling.
func ValidateLoginAttempts(email string, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}

	key := "login_attempts:" + email
	attempts, err := rdb.Incr(context.Background(), key).Result()
	if err != nil {
		return err
	}

	// Set expiry if first attempt
	if attempts == 1 {
		rdb.Expire(context.Background(), key, 1*time.Hour)
	}

	if attempts > 5 {
		return errors.New("too many login attempts")
	}

	return nil
}

// ResetLoginAttempts clears the failure counter after a successful login.
func ResetLoginAttempts(email string, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	rdb.Del(context.Background(), "login_attempts:"+email)
}
