package domain

import (
	"fmt"
	"time"

	"cognitive-rogue/pkg/logger"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/sirupsen/logrus"
)

// Типы записей лога
const (
	LogTypeInfo   = "INFO"
	LogTypeCombat = "COMBAT"
	LogTypeSpeech = "SPEECH"
	LogTypeDeath  = "DEATH"
)

// LogEntry - запись в логе сообщений игрока
type LogEntry struct {
	ID        string
	Text      string
	Type      string
	Turn      int
	Timestamp int64
	Actors    []core.Entity // Участники события (атакующий, цель)
}

// DefaultLogCapacity - сколько последних записей хранит лог
const DefaultLogCapacity = 64

// GameLog - кольцевой лог сообщений для игрока.
// Каждая запись дублируется в logrus с component=game_log.
type GameLog struct {
	SessionID string
	capacity  int
	entries   []LogEntry
	seq       int
}

func NewGameLog(sessionID string, capacity int) *GameLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &GameLog{SessionID: sessionID, capacity: capacity}
}

// Add добавляет запись в лог
func (l *GameLog) Add(turn int, logType, text string, actors ...core.Entity) {
	l.seq++
	l.entries = append(l.entries, LogEntry{
		ID:        fmt.Sprintf("%s_%d", l.SessionID, l.seq),
		Text:      text,
		Type:      logType,
		Turn:      turn,
		Timestamp: time.Now().UnixMilli(),
		Actors:    actors,
	})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}

	fields := logrus.Fields{
		"session":   l.SessionID,
		"component": "game_log",
		"log_type":  logType,
		"turn":      turn,
	}
	for i, a := range actors {
		fields[fmt.Sprintf("actor%d", i)] = a.GetType() + ":" + a.GetID()
	}
	logger.Log.WithFields(fields).Info(text)
}

func (l *GameLog) Addf(turn int, logType, format string, args ...interface{}) {
	l.Add(turn, logType, fmt.Sprintf(format, args...))
}

// Recent возвращает до n последних записей, от старых к новым.
func (l *GameLog) Recent(n int) []LogEntry {
	if n <= 0 || len(l.entries) == 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]LogEntry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

func (l *GameLog) Len() int {
	return len(l.entries)
}
