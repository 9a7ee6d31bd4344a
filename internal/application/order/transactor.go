package order

import "context"

// Transactor 事务执行器
// 由mysql.TxManager实现;fn内的仓储操作在同一事务中执行,
// fn返回error时回滚,返回nil时提交
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
