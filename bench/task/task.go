// Package task defines the unit of work a benchmark harness times.
package task

// Task is one executable, timeable unit of work built from an options
// combination and an input file. A harness calls SetUpTrial once, then
// SetUpIteration, Run and TearDownIteration for every measured iteration,
// and finally TearDownTrial. Only Run is timed.
type Task interface {
	SetUpTrial() error
	SetUpIteration() error
	Run() error
	TearDownIteration() error
	TearDownTrial() error
}

// Funcs adapts plain functions to Task. Nil hooks are no-ops.
type Funcs struct {
	OnSetUpTrial        func() error
	OnSetUpIteration    func() error
	OnRun               func() error
	OnTearDownIteration func() error
	OnTearDownTrial     func() error
}

var _ Task = (*Funcs)(nil)

func (f *Funcs) SetUpTrial() error        { return call(f.OnSetUpTrial) }
func (f *Funcs) SetUpIteration() error    { return call(f.OnSetUpIteration) }
func (f *Funcs) Run() error               { return call(f.OnRun) }
func (f *Funcs) TearDownIteration() error { return call(f.OnTearDownIteration) }
func (f *Funcs) TearDownTrial() error     { return call(f.OnTearDownTrial) }

func call(fn func() error) error {
	if fn == nil {
		return nil
	}
	return fn()
}
