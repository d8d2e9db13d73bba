package domain

// Rect - прямоугольная комната. Покрывает клетки [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// X2 и Y2 - первая клетка за правой и нижней границей.
func (r Rect) X2() int { return r.X + r.W }
func (r Rect) Y2() int { return r.Y + r.H }

// Center - центральная клетка комнаты (с округлением вниз).
func (r Rect) Center() Position {
	return Position{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects - строгая проверка пересечения AABB.
// Комнаты, которые только касаются гранями, не пересекаются.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains проверяет, лежит ли клетка внутри комнаты.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X2() && p.Y >= r.Y && p.Y < r.Y2()
}

// Within проверяет, что комната целиком лежит в сетке w x h с отступом margin.
func (r Rect) Within(width, height, margin int) bool {
	return r.X >= margin && r.Y >= margin &&
		r.X2() <= width-margin && r.Y2() <= height-margin
}
