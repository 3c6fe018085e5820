package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuncs_NilHooksAreNoops(t *testing.T) {
	var f Funcs
	assert.NoError(t, f.SetUpTrial())
	assert.NoError(t, f.SetUpIteration())
	assert.NoError(t, f.Run())
	assert.NoError(t, f.TearDownIteration())
	assert.NoError(t, f.TearDownTrial())
}

func TestFuncs_CallsHooksInOrder(t *testing.T) {
	var calls []string
	record := func(name string) func() error {
		return func() error {
			calls = append(calls, name)
			return nil
		}
	}
	boom := errors.New("boom")
	f := &Funcs{
		OnSetUpTrial:        record("setup-trial"),
		OnSetUpIteration:    record("setup-iteration"),
		OnRun:               func() error { return boom },
		OnTearDownIteration: record("teardown-iteration"),
		OnTearDownTrial:     record("teardown-trial"),
	}

	var tk Task = f
	assert.NoError(t, tk.SetUpTrial())
	assert.NoError(t, tk.SetUpIteration())
	assert.ErrorIs(t, tk.Run(), boom)
	assert.NoError(t, tk.TearDownIteration())
	assert.NoError(t, tk.TearDownTrial())
	assert.Equal(t, []string{"setup-trial", "setup-iteration", "teardown-iteration", "teardown-trial"}, calls)
}
