package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionData(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Data())
	}
	return out
}

func TestBuilderSyntheticOptions(t *testing.T) {
	tests := []struct {
		name     string
		back     bool
		quit     bool
		expected []string
	}{
		{name: "plain", expected: []string{"a", "b"}},
		{name: "back", back: true, expected: []string{PrevToken, "a", "b"}},
		{name: "quit", quit: true, expected: []string{"a", "b", QuitToken}},
		{name: "back and quit", back: true, quit: true, expected: []string{PrevToken, "a", "b", QuitToken}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewBuilder(&fakePicker{}, newFakeSwitcher(), nil).
				Name("hall").
				QuitOption(tt.quit).
				BackOption(tt.back).
				AddOption("A", "a", ChangeRoom).
				AddOption("B", "b", ChangeRoom).
				Build()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, optionData(r.Options()))

			quits := 0
			for _, o := range r.Options() {
				if o.Kind() == Custom && o.Data() == QuitToken {
					quits++
				}
			}
			if tt.quit {
				assert.Equal(t, 1, quits)
				last := r.Options()[len(r.Options())-1]
				assert.Equal(t, Custom, last.Kind())
			} else {
				assert.Zero(t, quits)
			}
		})
	}
}

func TestBuilderBackOptionVisibility(t *testing.T) {
	picker := &fakePicker{}
	switcher := newFakeSwitcher()

	withBack, err := NewBuilder(picker, switcher, nil).
		Name("with").
		BackOption(true).
		AddOption("stay", "with", ChangeRoom).
		Build()
	require.NoError(t, err)
	withoutBack, err := NewBuilder(picker, switcher, nil).
		Name("without").
		BackOption(false).
		AddOption("stay", "without", ChangeRoom).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"with"}, optionData(withBack.VisibleOptions()))

	switcher.RecordTransition(withoutBack)
	assert.Equal(t, []string{PrevToken, "with"}, optionData(withBack.VisibleOptions()))
	assert.Equal(t, []string{"without"}, optionData(withoutBack.VisibleOptions()))
}

func TestBuilderBackOptionReturnsToPreviousRoom(t *testing.T) {
	picker := &fakePicker{}
	switcher := newFakeSwitcher()

	first, err := NewBuilder(picker, switcher, nil).
		Name("first").
		AddOption("to second", "second", ChangeRoom).
		Build()
	require.NoError(t, err)
	second, err := NewBuilder(picker, switcher, nil).
		Name("second").
		BackOption(true).
		BackText("zurück").
		AddOption("to first", "first", ChangeRoom).
		Build()
	require.NoError(t, err)
	switcher.add(first)
	switcher.add(second)

	con := &scriptedConsole{script: []string{"0", "0"}}
	next, err := first.Visit(context.Background(), con, false)
	require.NoError(t, err)
	require.Same(t, second, next)

	next, err = second.Visit(context.Background(), con, true)
	require.NoError(t, err)
	assert.Same(t, first, next)
	assert.Equal(t, []string{"zurück", "to first"}, con.menus[1])
	assert.Same(t, second, switcher.Previous())
	assert.Equal(t, []string{"first->second", "second->first"}, con.hops)
}

func TestBuilderQuitOption(t *testing.T) {
	handler := &fakeHandler{}
	r, err := NewBuilder(&fakePicker{}, newFakeSwitcher(), handler).
		Name("hall").
		QuitOption(true).
		QuitText("Beenden").
		AddOption("look", "LOOK", Custom).
		Build()
	require.NoError(t, err)

	con := &scriptedConsole{script: []string{"0", "1"}}
	_, err = r.Visit(context.Background(), con, false)
	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, []string{"LOOK"}, handler.tokens)
	assert.Equal(t, []string{"look", "Beenden"}, con.menus[0])
}

func TestQuitHandlerWithoutDelegate(t *testing.T) {
	h := &quitHandler{}
	assert.NoError(t, h.HandleAction(context.Background(), "ANYTHING"))
	assert.ErrorIs(t, h.HandleAction(context.Background(), QuitToken), ErrQuit)
}

func TestBackSwitcherWithoutPreviousRoom(t *testing.T) {
	s := &backSwitcher{RoomSwitcher: newFakeSwitcher()}
	_, err := s.Resolve(PrevToken)
	assert.ErrorIs(t, err, ErrNoPreviousRoom)

	_, err = s.Resolve("elsewhere")
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*Room, error)
		wantErr error
	}{
		{
			name: "empty data",
			build: func() (*Room, error) {
				return NewBuilder(&fakePicker{}, newFakeSwitcher(), nil).
					Name("hall").AddOption("broken", "", PickItem).Build()
			},
			wantErr: ErrInvalidOption,
		},
		{
			name: "unknown kind",
			build: func() (*Room, error) {
				return NewBuilder(&fakePicker{}, newFakeSwitcher(), nil).
					Name("hall").AddOption("broken", "x", Kind(9)).Build()
			},
			wantErr: ErrInvalidOption,
		},
		{
			name: "nil room target",
			build: func() (*Room, error) {
				return NewBuilder(&fakePicker{}, newFakeSwitcher(), nil).
					Name("hall").AddRoomOption("broken", nil).Build()
			},
			wantErr: ErrInvalidOption,
		},
		{
			name: "no options",
			build: func() (*Room, error) {
				return NewBuilder(&fakePicker{}, newFakeSwitcher(), nil).Name("hall").Build()
			},
			wantErr: ErrNoVisibleOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.build()
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := NewBuilder(&fakePicker{}, newFakeSwitcher(), nil).AddOption("x", "y", ChangeRoom).Build()
	assert.Error(t, err)
}

func TestAddRoomOptionUsesRoomName(t *testing.T) {
	picker := &fakePicker{}
	switcher := newFakeSwitcher()
	target, err := NewBuilder(picker, switcher, nil).Name("Raum1").AddOption("x", "Raum1", ChangeRoom).Build()
	require.NoError(t, err)

	r, err := NewBuilder(picker, switcher, nil).Name("Raum2").AddRoomOption("Wechsle zu Raum 1.", target).Build()
	require.NoError(t, err)

	opts := r.Options()
	require.Len(t, opts, 1)
	assert.Equal(t, "Raum1", opts[0].Data())
	assert.Equal(t, ChangeRoom, opts[0].Kind())
}
