package tictactoe

var corners = [4]Move{{0, 0}, {0, 2}, {2, 0}, {2, 2}}

// BestMove picks a move for me: complete a line, block the opponent's
// line, take the centre, take a corner, else the first free cell in row
// order. ok is false when the board is full.
func BestMove(b *Board, me Mark) (m Move, ok bool) {
	if m, ok := completing(b, me); ok {
		return m, true
	}
	if m, ok := completing(b, me.Other()); ok {
		return m, true
	}
	if centre := (Move{1, 1}); b.Free(centre) {
		return centre, true
	}
	for _, c := range corners {
		if b.Free(c) {
			return c, true
		}
	}
	return firstFree(b)
}

// completing finds a free cell that gives mark a line.
func completing(b *Board, mark Mark) (Move, bool) {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			m := Move{i, j}
			if !b.Free(m) {
				continue
			}
			_ = b.Place(m, mark)
			won := b.Winner() == mark
			b.clear(m)
			if won {
				return m, true
			}
		}
	}
	return Move{}, false
}

func firstFree(b *Board) (Move, bool) {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if m := (Move{i, j}); b.Free(m) {
				return m, true
			}
		}
	}
	return Move{}, false
}
