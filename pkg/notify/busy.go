package notify

// Busy is the loading indicator contract: Begin shows the indicator and
// disables the submitting control, End restores both.
type Busy interface {
	Begin()
	End()
}

// WhileBusy runs fn inside the loading guard. End always runs, whatever
// the outcome, so a failed submission can never leave the UI stuck in
// its loading state.
func WhileBusy(b Busy, fn func() error) error {
	if b != nil {
		b.Begin()
		defer b.End()
	}
	return fn()
}

// NopBusy is used by console runners that have no loading indicator.
type NopBusy struct{}

func (NopBusy) Begin() {}
func (NopBusy) End()   {}
