package models

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователя с таким номером нет.
	ErrUserNotFound = errors.New("user not found")
	// ErrSubscriptionNotFound возвращается, если у пользователя нет подписок.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
