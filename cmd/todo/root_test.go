package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-cli/internal/commands"
	"github.com/yukikurage/todo-cli/internal/constants"
)

type recordedFlows struct {
	called string
	list   commands.ListOptions
	text   string
	err    error
}

func (f *recordedFlows) Add(context.Context) error    { f.called = "add"; return f.err }
func (f *recordedFlows) Update(context.Context) error { f.called = "update"; return f.err }
func (f *recordedFlows) Delete(context.Context) error { f.called = "delete"; return f.err }
func (f *recordedFlows) List(_ context.Context, opts commands.ListOptions) error {
	f.called = "list"
	f.list = opts
	return f.err
}
func (f *recordedFlows) Suggest(_ context.Context, text string) error {
	f.called = "suggest"
	f.text = text
	return f.err
}

func execute(t *testing.T, f *recordedFlows, args ...string) error {
	t.Helper()
	cmd := newRootCommand(f)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestRootCommand_Dispatch(t *testing.T) {
	for _, name := range []string{"add", "update", "delete"} {
		t.Run(name, func(t *testing.T) {
			f := &recordedFlows{}
			require.NoError(t, execute(t, f, name))
			assert.Equal(t, name, f.called)
		})
	}
}

func TestRootCommand_ListFlags(t *testing.T) {
	f := &recordedFlows{}

	require.NoError(t, execute(t, f, "list"))
	assert.Equal(t, commands.ListOptions{Page: constants.MinPageSize, Limit: constants.DefaultPageSize}, f.list)

	require.NoError(t, execute(t, f, "list", "--status", "pending", "--page", "2", "--limit", "5"))
	assert.Equal(t, commands.ListOptions{Status: "pending", Page: 2, Limit: 5}, f.list)
}

func TestRootCommand_SuggestJoinsArgs(t *testing.T) {
	f := &recordedFlows{}

	require.NoError(t, execute(t, f, "suggest", "buy", "milk"))
	assert.Equal(t, "buy milk", f.text)

	assert.Error(t, execute(t, &recordedFlows{}, "suggest"))
}

func TestRootCommand_PropagatesFlowError(t *testing.T) {
	boom := errors.New("boom")

	err := execute(t, &recordedFlows{err: boom}, "add")

	assert.ErrorIs(t, err, boom)
}

func TestRootCommand_RejectsExtraArgs(t *testing.T) {
	f := &recordedFlows{}

	assert.Error(t, execute(t, f, "delete", "abc"))
	assert.Empty(t, f.called)
}
