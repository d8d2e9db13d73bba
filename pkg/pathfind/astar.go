// Package pathfind - поиск пути A* по абстрактному графу клеток.
package pathfind

import (
	"container/heap"
	"errors"
)

// ErrNoPath - маршрута нет. Восстановимая ситуация: вызывающий просто стоит на месте.
var ErrNoPath = errors.New("pathfind: no path found")

// DefaultMaxExpansions ограничивает число раскрытых узлов на один поиск.
const DefaultMaxExpansions = 4096

// Edge - ребро графа: соседняя клетка и стоимость перехода.
type Edge struct {
	To   int
	Cost int
}

// Graph - то, что A* знает о карте.
// Neighbors возвращает только проходимых соседей: отсутствие ребра = стена.
type Graph interface {
	Neighbors(idx int) []Edge
	Heuristic(from, to int) int
}

// Path - последовательность индексов клеток от старта до цели включительно.
type Path struct {
	Steps []int
	Cost  int
}

// Next возвращает первый шаг после стартовой клетки.
func (p Path) Next() (int, bool) {
	if len(p.Steps) < 2 {
		return 0, false
	}
	return p.Steps[1], true
}

// FindPath ищет кратчайший путь от start до goal.
func FindPath(g Graph, start, goal int) (Path, error) {
	return FindPathBounded(g, start, goal, DefaultMaxExpansions)
}

// FindPathBounded - FindPath с явным лимитом раскрытых узлов.
// При исчерпании лимита возвращает ErrNoPath.
func FindPathBounded(g Graph, start, goal, maxExpansions int) (Path, error) {
	if start == goal {
		return Path{Steps: []int{start}}, nil
	}

	open := make(openSet, 0, 64)
	heap.Init(&open)

	gScore := map[int]int{start: 0}
	cameFrom := make(map[int]int)
	inOpen := make(map[int]*node)
	closed := make(map[int]bool)

	order := 0
	startNode := &node{Index: start, Priority: g.Heuristic(start, goal), Order: order}
	heap.Push(&open, startNode)
	inOpen[start] = startNode

	expansions := 0
	for open.Len() > 0 {
		current := heap.Pop(&open).(*node)
		delete(inOpen, current.Index)

		if current.Index == goal {
			return Path{Steps: reconstruct(cameFrom, goal), Cost: gScore[goal]}, nil
		}

		closed[current.Index] = true
		expansions++
		if maxExpansions > 0 && expansions >= maxExpansions {
			break
		}

		for _, edge := range g.Neighbors(current.Index) {
			if closed[edge.To] {
				continue
			}

			tentative := gScore[current.Index] + edge.Cost
			if old, seen := gScore[edge.To]; seen && tentative >= old {
				continue
			}

			cameFrom[edge.To] = current.Index
			gScore[edge.To] = tentative
			f := tentative + g.Heuristic(edge.To, goal)

			if n, ok := inOpen[edge.To]; ok {
				open.update(n, f)
				continue
			}

			order++
			n := &node{Index: edge.To, Priority: f, Order: order}
			heap.Push(&open, n)
			inOpen[edge.To] = n
		}
	}

	return Path{}, ErrNoPath
}

func reconstruct(cameFrom map[int]int, current int) []int {
	steps := []int{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		steps = append(steps, prev)
		current = prev
	}

	// Разворачиваем: путь собирался от цели к старту
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
