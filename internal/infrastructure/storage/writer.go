package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cognitive-rogue/internal/domain"
)

const (
	MagicHeader string = `RGRP` // 4 байта
	Version1    uint32 = 1
	Extension          = ".rgrp"
)

// ReplayFileHeader - это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic        [4]byte // 4 байта
	Version      uint32  // 4 байта
	Seed         int64   // 8 байт
	Timestamp    int64   // 8 байт
	Width        int32   // 4 байта
	Height       int32   // 4 байта
	MaxRooms     int32   // 4 байта
	MinRoomSize  int32   // 4 байта
	MaxRoomSize  int32   // 4 байта
	Margin       int32   // 4 байта
	CommandCount int32   // 4 байта
}

// CommandRecord - запись одной команды фиксированной длины.
type CommandRecord struct {
	Turn   int32 // 4
	Action uint8 // 1
	Dx     int8  // 1
	Dy     int8  // 1
	_      uint8 // 1, выравнивание
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	return &ReplayService{SaveDir: dir}
}

// Save пишет запись в SaveDir и возвращает путь к файлу.
func (s *ReplayService) Save(r *domain.Replay) (string, error) {
	if err := os.MkdirAll(s.SaveDir, 0o755); err != nil {
		return "", fmt.Errorf("create replay dir: %w", err)
	}
	filename := fmt.Sprintf("replay_%d_%d%s", r.Seed, r.Timestamp, Extension)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteReplay(f, r); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func WriteReplay(w io.Writer, r *domain.Replay) error {
	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := ReplayFileHeader{
		Version:      Version1,
		Seed:         r.Seed,
		Timestamp:    r.Timestamp,
		Width:        int32(r.Width),
		Height:       int32(r.Height),
		MaxRooms:     int32(r.MaxRooms),
		MinRoomSize:  int32(r.MinRoomSize),
		MaxRoomSize:  int32(r.MaxRoomSize),
		Margin:       int32(r.Margin),
		CommandCount: int32(len(r.Commands)),
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Пишем команды
	for i, rc := range r.Commands {
		cmd := rc.Command
		if cmd.Dx < -128 || cmd.Dx > 127 || cmd.Dy < -128 || cmd.Dy > 127 {
			return fmt.Errorf("command %d: delta (%d,%d) out of range", i, cmd.Dx, cmd.Dy)
		}
		rec := CommandRecord{
			Turn:   int32(rc.Turn),
			Action: uint8(cmd.Action),
			Dx:     int8(cmd.Dx),
			Dy:     int8(cmd.Dy),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write command %d: %w", i, err)
		}
	}

	return nil
}
