package domain

import "fmt"

// OutOfBoundsError - нарушение контракта запросов к карте.
// Вызывающий обязан проверить InBounds, поэтому это паника, а не ошибка.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("map: coordinate (%d,%d) out of bounds %dx%d", e.X, e.Y, e.Width, e.Height)
}
