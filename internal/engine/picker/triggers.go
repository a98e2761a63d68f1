package picker

import "time"

// OnScroll handles a scroll signal carrying the remaining scroll distance.
// Below the configured margin it requests the next page, at most once per
// throttle window. A signal dropped by the throttle arms one trailing advance
// at the end of the window. It reports whether a page was added immediately.
func (vm *ViewModel) OnScroll(remaining float64) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.state != StateOpen || remaining >= vm.tuning.ScrollMargin {
		return false
	}
	if vm.visible >= len(vm.filtered) {
		return false
	}

	now := time.Now()
	elapsed := now.Sub(vm.lastAdvance)
	if vm.lastAdvance.IsZero() || elapsed >= vm.tuning.ScrollThrottle {
		vm.lastAdvance = now
		return vm.advanceLocked()
	}

	if vm.trailing == nil {
		gen := vm.generation
		vm.trailing = time.AfterFunc(vm.tuning.ScrollThrottle-elapsed, func() {
			vm.fireTrailing(gen)
		})
	}
	return false
}

// OnItemVisible handles a visibility signal for the item at index. When the item
// is within the proximity of the last materialized item the next page is requested.
func (vm *ViewModel) OnItemVisible(index int) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.state != StateOpen || index < 0 || index >= vm.visible {
		return false
	}
	if index < vm.visible-vm.tuning.VisibilityProximity {
		return false
	}
	return vm.advanceLocked()
}

// PendingTriggers reports whether a throttled scroll advance is still armed.
func (vm *ViewModel) PendingTriggers() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.trailing != nil
}

func (vm *ViewModel) fireTrailing(gen uint64) {
	vm.mu.Lock()
	if gen != vm.generation {
		vm.mu.Unlock()
		return
	}
	vm.trailing = nil
	vm.lastAdvance = time.Now()
	advanced := vm.advanceLocked()
	refresh := vm.refresh
	vm.mu.Unlock()

	if advanced && refresh != nil {
		refresh()
	}
}

func (vm *ViewModel) cancelTriggersLocked() {
	vm.generation++
	if vm.trailing != nil {
		vm.trailing.Stop()
		vm.trailing = nil
	}
	vm.lastAdvance = time.Time{}
}
