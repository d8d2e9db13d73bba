package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"cognitive-rogue/internal/domain"
)

// ErrInvalidReplay - файл не является записью партии или повреждён
var ErrInvalidReplay = errors.New("invalid replay")

// Предел предварительного выделения под команды: счётчик из заголовка не доверенный
const maxPrealloc = 4096

func (s *ReplayService) Load(path string) (*domain.Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Файл не может содержать больше команд, чем в нём помещается записей
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	body := info.Size() - int64(binary.Size(ReplayFileHeader{}))
	return readReplay(f, body/int64(binary.Size(CommandRecord{})))
}

// ReadReplay читает запись из потока неизвестной длины.
func ReadReplay(r io.Reader) (*domain.Replay, error) {
	return readReplay(r, -1)
}

// readReplay читает запись; maxCommands < 0 означает, что размер источника неизвестен.
func readReplay(r io.Reader, maxCommands int64) (*domain.Replay, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrInvalidReplay, err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidReplay, header.Magic[:])
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalidReplay, header.Version, Version1)
	}
	if header.CommandCount < 0 {
		return nil, fmt.Errorf("%w: negative command count %d", ErrInvalidReplay, header.CommandCount)
	}
	if maxCommands >= 0 && int64(header.CommandCount) > maxCommands {
		return nil, fmt.Errorf("%w: command count %d exceeds file size (%d records)",
			ErrInvalidReplay, header.CommandCount, maxCommands)
	}

	replay := &domain.Replay{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Width:     int(header.Width),
		Height:    int(header.Height),
		MaxRooms:  int(header.MaxRooms),

		MinRoomSize: int(header.MinRoomSize),
		MaxRoomSize: int(header.MaxRoomSize),
		Margin:      int(header.Margin),
		Commands:    make([]domain.ReplayCommand, 0, min(int(header.CommandCount), maxPrealloc)),
	}

	// 2. Читаем команды
	for i := 0; i < int(header.CommandCount); i++ {
		var rec CommandRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("%w: command %d: %w", ErrInvalidReplay, i, err)
		}
		// В запись попадают только действия, потратившие ход
		if action := domain.ActionType(rec.Action); !action.AdvancesTurn() {
			return nil, fmt.Errorf("%w: command %d has action %s", ErrInvalidReplay, i, action)
		}
		replay.Commands = append(replay.Commands, domain.ReplayCommand{
			Turn: int(rec.Turn),
			Command: domain.Command{
				Action: domain.ActionType(rec.Action),
				Dx:     int(rec.Dx),
				Dy:     int(rec.Dy),
			},
		})
	}

	return replay, nil
}
