package types

// Glyph представляет упакованное представление цветного символа.
// Использует 32 бита (uint32) для хранения в формате:
//
//	[0:8] - символ (8 бит = 1 байт) - маска 0xFF
//	[8:32] - RGB-цвет (24 бита = 3 байта) - маска 0xFFFFFF
type Glyph uint32

// Константы для битовых операций с Glyph
const (
	// Размеры полей в битах
	bitsChar  = 8  // Символ - 8 бит (0-255)
	bitsColor = 24 // Цвет - 24 бита (RGB)

	// Сдвиги для упаковки/распаковки
	shiftColor = bitsChar // Смещение для записи/чтения цвета.

	// Маски для извлечения значений
	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeGlyph упаковывает цвет 0xRRGGBB и символ. Старший байт цвета отбрасывается.
//
//	MakeGlyph(0xFFFF00, '@') // 0xFFFF0040 - игрок
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color - 24-битный цвет глифа.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char - символ глифа.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// RGB раскладывает цвет глифа на компоненты (для tcell.NewRGBColor).
func (g Glyph) RGB() (r, gr, b int32) {
	c := g.Color()
	return int32(c >> 16 & 0xFF), int32(c >> 8 & 0xFF), int32(c & 0xFF)
}

// Greyscale возвращает тот же символ в оттенках серого.
// Используется для клеток, которые игрок помнит, но сейчас не видит.
func (g Glyph) Greyscale() Glyph {
	r, gr, b := g.RGB()
	// Яркость по BT.601, целочисленно
	y := uint32((r*299 + gr*587 + b*114) / 1000)
	return MakeGlyph(y<<16|y<<8|y, g.Char())
}
