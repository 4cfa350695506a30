package bootstrap

// indicatorLease keeps the blocking indicator shown from acquire until the
// first Release. Further Release calls are no-ops, so a deferred Release
// after an explicit one never produces a second Hide.
type indicatorLease struct {
	indicator Indicator
	released  bool
}

func acquireIndicator(indicator Indicator) *indicatorLease {
	indicator.Show()
	return &indicatorLease{indicator: indicator}
}

func (l *indicatorLease) Release() {
	if l.released {
		return
	}
	l.released = true
	l.indicator.Hide()
}
