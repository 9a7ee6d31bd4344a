package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/datpham0412/yourlocalshop/internal/domain/product"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// ProductCache 商品详情缓存(Cache-Aside)
// 设计说明:
// 1. 读路径:先查缓存,未命中回源数据库并写回
// 2. 写路径:商品更新/删除后删除缓存(而非更新,避免并发写序问题)
// 3. Key设计:product:{id},TTL 10分钟
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache 创建商品缓存
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *ProductCache) key(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// Get 读取缓存
// 未命中时返回(nil, nil),由调用方回源
func (c *ProductCache) Get(ctx context.Context, id uint) (*product.Product, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "读取商品缓存失败")
	}

	var p product.Product
	if err := json.Unmarshal(data, &p); err != nil {
		// 缓存数据损坏,视为未命中并删除
		c.client.Del(ctx, c.key(id))
		return nil, nil
	}
	return &p, nil
}

// Set 写回缓存
func (c *ProductCache) Set(ctx context.Context, p *product.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return apperrors.Wrap(err, "序列化商品缓存失败")
	}

	if err := c.client.Set(ctx, c.key(p.ID), data, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入商品缓存失败")
	}
	return nil
}

// Invalidate 删除缓存(商品更新/删除后调用)
func (c *ProductCache) Invalidate(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return apperrors.Wrap(err, "删除商品缓存失败")
	}
	return nil
}
