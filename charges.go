package flamingarrows

// ChargeCapacity is the number of charges a single flint & steel holds.
const ChargeCapacity = 64

// AvailableCharges sums the remaining charges of every flint & steel stack in
// inv. The first item of a stack contributes its unused capacity and every
// further item a full capacity. Fully worn stacks contribute nothing.
func AvailableCharges(inv Inventory) int {
	total := 0
	for i := range inv.Size() {
		s := inv.Slot(i)
		if !chargeable(s) {
			continue
		}
		total += ChargeCapacity - s.Wear
		if s.Count > 1 {
			total += (s.Count - 1) * ChargeCapacity
		}
	}
	return total
}

// DeductCharges wears down flint & steel one charge at a time, always from the
// first chargeable stack. A stack whose first item is used up loses that item
// and starts the next one fresh; the last item of a stack is removed with it.
// DeductCharges stops early when no chargeable stack is left and returns the
// number of charges actually deducted. The shortfall is not reported.
func DeductCharges(inv Inventory, n int) int {
	deducted := 0
	for deducted < n {
		slot, s, ok := firstChargeable(inv)
		if !ok {
			break
		}

		switch {
		case s.Wear+1 < ChargeCapacity:
			s.Wear++
		case s.Count > 1:
			s.Count--
			s.Wear = 0
		default:
			s = Stack{}
		}
		inv.SetSlot(slot, s)
		deducted++
	}
	if deducted > 0 {
		inv.Refresh()
	}
	return deducted
}

// ConsumeOne removes a single item of material m from the first slot holding
// it. It reports whether an item was removed; inv is refreshed if so.
func ConsumeOne(inv Inventory, m Material) bool {
	for i := range inv.Size() {
		s := inv.Slot(i)
		if s.Empty() || s.Material != m {
			continue
		}
		s.Count--
		if s.Count <= 0 {
			s = Stack{}
		}
		inv.SetSlot(i, s)
		inv.Refresh()
		return true
	}
	return false
}

// Contains reports whether inv holds at least one item of material m.
func Contains(inv Inventory, m Material) bool {
	for i := range inv.Size() {
		if s := inv.Slot(i); !s.Empty() && s.Material == m {
			return true
		}
	}
	return false
}

func firstChargeable(inv Inventory) (int, Stack, bool) {
	for i := range inv.Size() {
		if s := inv.Slot(i); chargeable(s) {
			return i, s, true
		}
	}
	return -1, Stack{}, false
}

func chargeable(s Stack) bool {
	return !s.Empty() && s.Material == MaterialFlintAndSteel && s.Wear < ChargeCapacity
}
