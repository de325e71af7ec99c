// Package grid implements the weighted-maze path search for the
// vault door puzzle (spec §4.9): a breadth-first search over a fixed
// 4x4 grid of number and operator squares, starting at the bottom-left
// with an initial pending addition, looking for a path to the top-right
// that leaves an accumulator of exactly 30.
package grid

// squareKind distinguishes a numbered square from an operator square.
type squareKind uint8

const (
	kindNum squareKind = iota
	kindAdd
	kindSub
	kindMult
)

// square is one cell of the board: either a literal operand (kindNum,
// Value set) or a pending operator (kindAdd/kindSub/kindMult).
type square struct {
	kind  squareKind
	value int32
}

func num(v int32) square            { return square{kind: kindNum, value: v} }
func opSquare(k squareKind) square { return square{kind: k} }

// board is indexed [y][x], matching the layout the original vault
// renders: row 0 is the top row, row 3 the bottom row the player
// starts on.
var board = [4][4]square{
	{opSquare(kindMult), num(8), opSquare(kindSub), num(1)},
	{num(4), opSquare(kindMult), num(11), opSquare(kindMult)},
	{opSquare(kindAdd), num(4), opSquare(kindSub), num(18)},
	{num(22), opSquare(kindSub), num(9), opSquare(kindMult)},
}

// startX, startY is the player's entry square; goalX, goalY is the
// vault door. targetWeight is the accumulator value that opens it.
const (
	startX, startY = 0, 3
	goalX, goalY   = 3, 0
	targetWeight   = 30
)

// pendingOp is the operator awaited by the next numbered square. The
// zero value, opNone, means no operator is pending and the current
// square must itself be an operator.
type pendingOp uint8

const (
	opNone pendingOp = iota
	opAdd
	opSub
	opMult
)

func squareOp(k squareKind) pendingOp {
	switch k {
	case kindAdd:
		return opAdd
	case kindSub:
		return opSub
	case kindMult:
		return opMult
	default:
		return opNone
	}
}

// state is one BFS vertex: position, accumulated weight, and the
// pending operator. Grounded on original_source/src/grid.rs's
// (x, y, weight, op) visited tuple.
type state struct {
	x, y    int
	weight  int32
	pending pendingOp
}

// apply applies the square at (x, y) to (weight, pending), per the
// original's match over (square, op): a numbered square consumes the
// pending operator, an operator square sets it. A numbered square with
// no pending operator, or an operator square with one already pending,
// can never occur on this board — apply panics if it does, signaling a
// board/BFS bug rather than a reachable runtime condition.
func (s square) apply(weight int32, pending pendingOp) (int32, pendingOp) {
	if s.kind == kindNum {
		switch pending {
		case opAdd:
			return weight + s.value, opNone
		case opSub:
			return weight - s.value, opNone
		case opMult:
			return weight * s.value, opNone
		default:
			panic("grid: numbered square with no pending operator")
		}
	}
	if pending != opNone {
		panic("grid: operator square with an operator already pending")
	}
	return weight, squareOp(s.kind)
}

// Result is a discovered path to the vault door.
type Result struct {
	Path   []string // ordered moves: "left", "right", "up", "down"
	Weight int32
	Found  bool
}

// Search runs the breadth-first search and returns the first path
// found that reaches the goal with an accumulator of exactly 30, along
// with the move sequence that produces it. Ties (several shortest
// paths) resolve to whichever the move-expansion order below discovers
// first, matching the original's left/right/up/down ordering.
func Search() Result {
	type queued struct {
		s    state
		path []string
	}

	visited := make(map[state]bool)
	queue := []queued{{s: state{x: startX, y: startY, weight: 0, pending: opAdd}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited[cur.s] {
			continue
		}
		visited[cur.s] = true

		newWeight, newPending := board[cur.s.y][cur.s.x].apply(cur.s.weight, cur.s.pending)

		if cur.s.x == goalX && cur.s.y == goalY {
			if newWeight == targetWeight {
				return Result{Path: cur.path, Weight: newWeight, Found: true}
			}
			continue
		}

		x, y := cur.s.x, cur.s.y

		tryMove := func(nx, ny int, label string) {
			next := state{x: nx, y: ny, weight: newWeight, pending: newPending}
			if visited[next] {
				return
			}
			newPath := make([]string, len(cur.path), len(cur.path)+1)
			copy(newPath, cur.path)
			newPath = append(newPath, label)
			queue = append(queue, queued{s: next, path: newPath})
		}

		if x > 0 && y != 3 {
			tryMove(x-1, y, "left")
		}
		if x < 3 {
			tryMove(x+1, y, "right")
		}
		if y > 0 {
			tryMove(x, y-1, "up")
		}
		if y < 3 && x != 0 {
			tryMove(x, y+1, "down")
		}
	}

	return Result{}
}
