// Package stack decomposes a wagered total into the chip stack shown on
// a cell.
package stack

// Denomination is one element of a rendered chip stack. Plates are the
// oversized 5000 and 10000 markers that compress large totals.
type Denomination struct {
	Value int
	Plate bool
}

// ladder is the fixed set of chip values used for greedy breakdown, in
// descending order.
var ladder = [...]int{1000, 500, 100, 50, 25, 10, 5, 1}

// Plate thresholds. Both are inclusive: a total of exactly 5000 shows
// the 5000 plate alone.
const (
	largePlate = 10000
	smallPlate = 5000
)

// Decompose maps a cumulative amount to its canonical display stack: at
// most one plate, then ladder chips greedily covering the remainder in
// descending value order. A total of zero (or less) yields an empty
// stack.
//
// The decomposition works from the total alone and deliberately ignores
// which chips were actually placed: two placement histories reaching
// the same total render identically. Callers must not try to reconcile
// the stack with placement history, and must not cache the result —
// it is recomputed from the authoritative total on every render.
func Decompose(total int) []Denomination {
	if total <= 0 {
		return nil
	}

	var stack []Denomination
	remainder := total

	switch {
	case remainder >= largePlate:
		stack = append(stack, Denomination{Value: largePlate, Plate: true})
		remainder -= largePlate
	case remainder >= smallPlate:
		stack = append(stack, Denomination{Value: smallPlate, Plate: true})
		remainder -= smallPlate
	}

	for _, value := range ladder {
		for remainder >= value {
			stack = append(stack, Denomination{Value: value})
			remainder -= value
		}
	}

	return stack
}
