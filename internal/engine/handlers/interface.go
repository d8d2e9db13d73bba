package handlers

import (
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/systems"
)

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в лог сессии напрямую, он возвращает данные.
type Result struct {
	Acted   bool   // Действие потратило ход: сессия запускает шаг симуляции
	Msg     string // Текст лога (пусто - ничего не писать)
	MsgType string // Тип лога (INFO, COMBAT)
}

// HandlerFunc - это контракт для любой команды игрока (MOVE, WAIT).
// ctx передаётся по ссылке, хендлер мутирует состояние через systems.
type HandlerFunc func(ctx *systems.Context, cmd domain.Command) (Result, error)

// EmptyResult - вспомогательная функция для пустого ответа (ход не потрачен)
func EmptyResult() Result {
	return Result{}
}
