package cache

import (
	"context"
	"time"
)

// Nop — кеш, который ничего не хранит. Используется, когда Redis не настроен.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }
