package cache

import (
	"context"
	"fmt"

	"github.com/David-iadg/consult-ia/internal/models"
)

func linkedInConnectionKey(userID uint) string {
	return fmt.Sprintf("linkedin:conn:%d", userID)
}

// LinkedInConnectionStore 将管理员的 LinkedIn 授权状态保存在 Redis，多实例共享且重启不丢失
type LinkedInConnectionStore struct{}

// NewLinkedInConnectionStore 创建 Redis 授权状态存储，需先调用 InitRedis
func NewLinkedInConnectionStore() *LinkedInConnectionStore {
	return &LinkedInConnectionStore{}
}

// Get 读取授权状态，不存在返回 (nil, nil)
func (LinkedInConnectionStore) Get(ctx context.Context, userID uint) (*models.LinkedInConnection, error) {
	var conn models.LinkedInConnection
	found, err := getJSON(ctx, linkedInConnectionKey(userID), &conn)
	if err != nil || !found {
		return nil, err
	}
	return &conn, nil
}

// Save 写入授权状态，不设过期时间
func (LinkedInConnectionStore) Save(ctx context.Context, userID uint, conn models.LinkedInConnection) error {
	return setJSON(ctx, linkedInConnectionKey(userID), conn, 0)
}
