package copier

import (
	"context"
	"errors"
)

var (
	ErrUnsupported = errors.New("not supported by this copier")
)

// Copier describes an ability that copies a monster for later fights. Each
// capability is optional; calling one that was not provided returns
// ErrUnsupported.
type Copier[T any] struct {
	// CouldCopy reports whether a copy is possible today in principle.
	CouldCopy func(ctx context.Context) (bool, error)
	// Prepare gets the character ready to copy right now.
	Prepare func(ctx context.Context) error
	// CanCopy reports whether a copy can be made immediately.
	CanCopy func(ctx context.Context) (bool, error)
	// CopiedTarget returns what is currently copied, if anything.
	CopiedTarget func(ctx context.Context) (T, error)
}

func New[T any](
	could func(context.Context) (bool, error),
	prepare func(context.Context) error,
	can func(context.Context) (bool, error),
	target func(context.Context) (T, error),
) *Copier[T] {
	return &Copier[T]{
		CouldCopy:    could,
		Prepare:      prepare,
		CanCopy:      can,
		CopiedTarget: target,
	}
}

func (c *Copier[T]) Could(ctx context.Context) (bool, error) {
	if c.CouldCopy == nil {
		return false, ErrUnsupported
	}
	return c.CouldCopy(ctx)
}

func (c *Copier[T]) Ready(ctx context.Context) error {
	if c.Prepare == nil {
		return ErrUnsupported
	}
	return c.Prepare(ctx)
}

func (c *Copier[T]) Can(ctx context.Context) (bool, error) {
	if c.CanCopy == nil {
		return false, ErrUnsupported
	}
	return c.CanCopy(ctx)
}

func (c *Copier[T]) Target(ctx context.Context) (T, error) {
	if c.CopiedTarget == nil {
		var zero T
		return zero, ErrUnsupported
	}
	return c.CopiedTarget(ctx)
}
