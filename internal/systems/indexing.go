package systems

// MapIndexingSystem пересобирает индекс занятости с нуля.
// Блокируют стены и сущности с Position и BlocksTile. TileContent хранит всех.
func MapIndexingSystem(ctx *Context) {
	c := ctx.C
	m := ctx.Map

	m.ResetBlocked()
	m.ClearContent()

	for _, id := range ctx.World.Query().With(c.Positions).Execute() {
		pos, _ := c.Positions.Get(id)
		idx := m.IndexOf(pos)
		if c.Blockers.Has(id) {
			m.Blocked[idx] = true
		}
		m.TileContent[idx] = append(m.TileContent[idx], id)
	}
}
