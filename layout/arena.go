// SPDX-License-Identifier: MIT

package layout

// arena owns every row built during a compile. Rows are stored once and
// never move; display order is a separate index list, so placing a row
// ahead of its predecessor is an index swap rather than a pop/push pair.
type arena struct {
	items []LineItem
	order []int
}

// add stores it and returns its arena index. The row is not displayed until
// placed.
func (a *arena) add(it LineItem) int {
	a.items = append(a.items, it)

	return len(a.items) - 1
}

// place appends idx to the display order.
func (a *arena) place(idx int) { a.order = append(a.order, idx) }

// swapLast displays idx where the last displayed row was and returns the
// displaced row, which the caller re-places after it.
func (a *arena) swapLast(idx int) (int, bool) {
	if len(a.order) == 0 {
		return 0, false
	}
	last := len(a.order) - 1
	prev := a.order[last]
	a.order[last] = idx

	return prev, true
}

// popLast removes the last displayed row from the order.
func (a *arena) popLast() (int, bool) {
	if len(a.order) == 0 {
		return 0, false
	}
	last := len(a.order) - 1
	prev := a.order[last]
	a.order = a.order[:last]

	return prev, true
}

// at returns a pointer to the stored row. Valid until the next add.
func (a *arena) at(idx int) *LineItem { return &a.items[idx] }

// lineItems materializes the rows in display order.
func (a *arena) lineItems() []LineItem {
	out := make([]LineItem, len(a.order))
	for i, idx := range a.order {
		out[i] = a.items[idx]
	}

	return out
}
