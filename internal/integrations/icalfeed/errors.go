package icalfeed

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("icalfeed client: internal error")

	// ErrInvalidFeed возвращается, когда фид не удалось получить или распарсить
	ErrInvalidFeed = errors.New("icalfeed client: invalid feed")
)
