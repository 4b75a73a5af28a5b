package layout

import "strings"

// evenMoney is the fixed set of categories paying even money.
var evenMoney = map[Category]bool{
	CategoryLow:   true,
	CategoryHigh:  true,
	CategoryEven:  true,
	CategoryOdd:   true,
	CategoryRed:   true,
	CategoryBlack: true,
}

// Odds returns the payout-odds label for a cell. Straight bets on a
// pocket pay 35:1, dozens and columns 2:1, the even-money categories
// 1:1. An unclassified category yields "N/A", which is not an error.
func Odds(cell Cell) string {
	if cell.IsPocket {
		return "35:1"
	}
	cat := string(cell.Category)
	if strings.Contains(cat, "column") || strings.Contains(cat, "dozen") {
		return "2:1"
	}
	if evenMoney[cell.Category] {
		return "1:1"
	}
	return "N/A"
}

// Descriptor is a denormalized, render-facing view of one bet: cell
// identity, its odds label, and the current amount. It is derived on
// every read and carries no authority of its own.
type Descriptor struct {
	CellID CellID
	Label  string
	Odds   string
	Amount int
}

// Describe builds the descriptor for a cell and its wagered amount. It
// is a pure lookup re-derivable from cell identity alone.
func Describe(cell Cell, amount int) Descriptor {
	return Descriptor{
		CellID: cell.ID,
		Label:  cell.Label,
		Odds:   Odds(cell),
		Amount: amount,
	}
}
