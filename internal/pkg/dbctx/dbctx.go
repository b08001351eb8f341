package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// New wraps ctx with no transaction.
func New(ctx context.Context) Context {
	return Context{Ctx: ctx}
}

// Conn returns the transaction when set, otherwise root, bound to the context.
func (c Context) Conn(root *gorm.DB) *gorm.DB {
	t := c.Tx
	if t == nil {
		t = root
	}
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return t.WithContext(ctx)
}
