package layout

import "fmt"

// PocketColor represents the wheel color of a numbered pocket
type PocketColor int

const (
	Green PocketColor = iota
	Red
	Black
)

func (c PocketColor) String() string {
	return [...]string{"green", "red", "black"}[c]
}

// redPockets is the standard European red set. Everything else from 1-36 is black.
var redPockets = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// ColorOf returns the wheel color for a pocket number (0-36).
func ColorOf(pocket int) PocketColor {
	switch {
	case pocket == 0:
		return Green
	case redPockets[pocket]:
		return Red
	default:
		return Black
	}
}

// CellID is a stable identifier for a betting target. The same semantic
// cell always maps to the same CellID and distinct cells never collide:
// numbered pockets use a "pocket-N" form, outside bets use their
// category name directly.
type CellID string

// Category names the outside-bet groups. The values double as CellIDs
// for their cells and as the classification input for odds derivation.
type Category string

const (
	CategoryRed          Category = "red"
	CategoryBlack        Category = "black"
	CategoryEven         Category = "even"
	CategoryOdd          Category = "odd"
	CategoryLow          Category = "1-18"
	CategoryHigh         Category = "19-36"
	CategoryFirstDozen   Category = "first-dozen"
	CategorySecondDozen  Category = "second-dozen"
	CategoryThirdDozen   Category = "third-dozen"
	CategoryFirstColumn  Category = "first-column"
	CategorySecondColumn Category = "second-column"
	CategoryThirdColumn  Category = "third-column"
)

// Cell is an addressable betting target on the table: either a single
// numbered pocket (straight bet) or an outside-bet category.
type Cell struct {
	ID       CellID
	Pocket   int      // valid when IsPocket
	Category Category // valid when !IsPocket
	IsPocket bool
	Label    string
}

// PocketCell returns the cell for a numbered pocket.
func PocketCell(pocket int) Cell {
	return Cell{
		ID:       CellID(fmt.Sprintf("pocket-%d", pocket)),
		Pocket:   pocket,
		IsPocket: true,
		Label:    fmt.Sprintf("%d", pocket),
	}
}

// OutsideCell returns the cell for an outside-bet category.
func OutsideCell(cat Category) Cell {
	return Cell{
		ID:       CellID(cat),
		Category: cat,
		Label:    outsideLabels[cat],
	}
}

var outsideLabels = map[Category]string{
	CategoryRed:          "Red",
	CategoryBlack:        "Black",
	CategoryEven:         "Even",
	CategoryOdd:          "Odd",
	CategoryLow:          "1-18",
	CategoryHigh:         "19-36",
	CategoryFirstDozen:   "1st 12",
	CategorySecondDozen:  "2nd 12",
	CategoryThirdDozen:   "3rd 12",
	CategoryFirstColumn:  "Col 1",
	CategorySecondColumn: "Col 2",
	CategoryThirdColumn:  "Col 3",
}

// Pockets returns all 37 pocket cells in wheel-number order (0-36).
func Pockets() []Cell {
	cells := make([]Cell, 0, 37)
	for n := 0; n <= 36; n++ {
		cells = append(cells, PocketCell(n))
	}
	return cells
}

// OutsideBets returns the outside-bet cells in display order: dozens,
// columns, then the even-money bets.
func OutsideBets() []Cell {
	cats := []Category{
		CategoryFirstDozen, CategorySecondDozen, CategoryThirdDozen,
		CategoryFirstColumn, CategorySecondColumn, CategoryThirdColumn,
		CategoryLow, CategoryEven, CategoryRed, CategoryBlack, CategoryOdd, CategoryHigh,
	}
	cells := make([]Cell, 0, len(cats))
	for _, cat := range cats {
		cells = append(cells, OutsideCell(cat))
	}
	return cells
}

// Members returns the pocket numbers a grouped outside bet covers. It is
// display metadata only: the widget highlights member pockets but never
// settles bets. Even-money categories are resolved per pocket by ColorOf
// and parity, so only dozens and columns have explicit member sets.
func Members(cat Category) []int {
	switch cat {
	case CategoryFirstDozen:
		return rangeMembers(1, 12)
	case CategorySecondDozen:
		return rangeMembers(13, 24)
	case CategoryThirdDozen:
		return rangeMembers(25, 36)
	case CategoryFirstColumn:
		return columnMembers(1)
	case CategorySecondColumn:
		return columnMembers(2)
	case CategoryThirdColumn:
		return columnMembers(3)
	case CategoryLow:
		return rangeMembers(1, 18)
	case CategoryHigh:
		return rangeMembers(19, 36)
	default:
		return nil
	}
}

func rangeMembers(lo, hi int) []int {
	members := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		members = append(members, n)
	}
	return members
}

// columnMembers returns the 12 pockets of a table column (1-3). Column 1
// holds 1, 4, 7... up to 34.
func columnMembers(col int) []int {
	members := make([]int, 0, 12)
	for n := col; n <= 36; n += 3 {
		members = append(members, n)
	}
	return members
}
