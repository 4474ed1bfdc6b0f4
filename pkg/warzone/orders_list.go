package warzone

import "slices"

// OrdersList is a player's FIFO queue of issued orders.
type OrdersList struct {
	orders []*Order
}

// Add appends an order to the end of the queue.
func (l *OrdersList) Add(o *Order) {
	l.orders = append(l.orders, o)
}

// Len returns the number of queued orders.
func (l *OrdersList) Len() int {
	return len(l.orders)
}

// At returns the order at the 1-indexed position, or nil.
func (l *OrdersList) At(pos int) *Order {
	if pos < 1 || pos > len(l.orders) {
		return nil
	}
	return l.orders[pos-1]
}

// All returns a copy of the queue.
func (l *OrdersList) All() []*Order {
	return slices.Clone(l.orders)
}

// Front returns the next order to execute, or nil.
func (l *OrdersList) Front() *Order {
	if len(l.orders) == 0 {
		return nil
	}
	return l.orders[0]
}

// Pop removes and returns the next order, or nil when empty.
func (l *OrdersList) Pop() *Order {
	if len(l.orders) == 0 {
		return nil
	}
	o := l.orders[0]
	l.orders = l.orders[1:]
	return o
}

// Move relocates the order at 1-indexed position from to position to.
// Deploy orders on either end cannot be moved; the list is left unchanged
// and an error describes why.
func (l *OrdersList) Move(from, to int) error {
	if from < 1 || from > len(l.orders) || to < 1 || to > len(l.orders) {
		return ErrIndexOutOfRange
	}
	if l.orders[from-1].Kind == OrderDeploy || l.orders[to-1].Kind == OrderDeploy {
		return ErrDeployLocked
	}
	o := l.orders[from-1]
	l.orders = slices.Delete(l.orders, from-1, from)
	l.orders = slices.Insert(l.orders, to-1, o)
	return nil
}

// Remove deletes the order at the 1-indexed position. Deploy orders cannot
// be removed.
func (l *OrdersList) Remove(pos int) error {
	if pos < 1 || pos > len(l.orders) {
		return ErrIndexOutOfRange
	}
	if l.orders[pos-1].Kind == OrderDeploy {
		return ErrDeployLocked
	}
	l.orders = slices.Delete(l.orders, pos-1, pos)
	return nil
}

// Clear drops every queued order.
func (l *OrdersList) Clear() {
	l.orders = nil
}

// PendingDeploys sums the armies of queued deploy orders.
func (l *OrdersList) PendingDeploys() int {
	total := 0
	for _, o := range l.orders {
		if o.Kind == OrderDeploy {
			total += o.Armies
		}
	}
	return total
}

// PendingDeploysTo sums the armies of queued deploy orders targeting a territory.
func (l *OrdersList) PendingDeploysTo(territory string) int {
	total := 0
	for _, o := range l.orders {
		if o.Kind == OrderDeploy && o.Target == territory {
			total += o.Armies
		}
	}
	return total
}

// CountKind returns how many queued orders have the given kind.
func (l *OrdersList) CountKind(kind OrderKind) int {
	n := 0
	for _, o := range l.orders {
		if o.Kind == kind {
			n++
		}
	}
	return n
}
