package values_test

import (
	"testing"

	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/pointer"
	"github.com/speakeasy-api/gamexml/validation"
	"github.com/speakeasy-api/gamexml/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_Presence_Success(t *testing.T) {
	t.Parallel()

	assert.Nil(t, values.String(marshaller.Node[string]{Value: "stale"}))
	assert.Equal(t, pointer.From(""), values.String(marshaller.NewNode("")))
	assert.Equal(t, pointer.From("x"), values.String(marshaller.NewNode("x")))

	assert.Equal(t, marshaller.Node[string]{}, values.StringNode(nil))
	assert.Equal(t, marshaller.NewNode(""), values.StringNode(pointer.From("")))
}

func TestParseBool_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
		ok       bool
	}{
		{input: "true", expected: true, ok: true},
		{input: "True", expected: true, ok: true},
		{input: "TRUE", expected: true, ok: true},
		{input: "1", expected: true, ok: true},
		{input: "yes", expected: true, ok: true},
		{input: "On", expected: true, ok: true},
		{input: "false", expected: false, ok: true},
		{input: "False", expected: false, ok: true},
		{input: "0", expected: false, ok: true},
		{input: "no", expected: false, ok: true},
		{input: "OFF", expected: false, ok: true},
		{input: "maybe", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := values.ParseBool(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBool_Success(t *testing.T) {
	t.Parallel()

	b, err := values.Bool("is_enabled", marshaller.NewNode("1"))
	require.NoError(t, err)
	assert.Equal(t, pointer.From(true), b)

	b, err = values.Bool("is_enabled", marshaller.Node[string]{})
	require.NoError(t, err)
	assert.Nil(t, b)

	assert.Equal(t, marshaller.NewNode("true"), values.BoolNode(pointer.From(true)))
	assert.Equal(t, marshaller.NewNode("false"), values.BoolNode(pointer.From(false)))
	assert.Equal(t, marshaller.Node[string]{}, values.BoolNode(nil))
}


func TestBool_Error(t *testing.T) {
	t.Parallel()

	_, err := values.Bool("is_enabled", marshaller.NewNode("maybe"))
	require.ErrorIs(t, err, validation.ErrFormat)
	assert.Equal(t, `invalid value format: is_enabled value "maybe" is not a valid boolean`, err.Error())
}

func TestNumbers_Success(t *testing.T) {
	t.Parallel()

	v, err := values.Int("id", pointer.From("42"))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = values.Int("id", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	assert.Equal(t, 0, values.IntOrZero(pointer.From("abc")))
	assert.Equal(t, 7, values.IntOrZero(pointer.From("7")))

	f, err := values.Float("collision_radius", pointer.From("0.25"))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, f, 1e-9)

	assert.Equal(t, pointer.From("12"), values.FormatInt(12))
	assert.Equal(t, pointer.From("0.5"), values.FormatFloat(0.5))
	assert.Equal(t, pointer.From("12"), values.FormatFloat(12))
	assert.Equal(t, pointer.From("-0.001"), values.FormatFloat(-0.001))
}

func TestNumbers_Error(t *testing.T) {
	t.Parallel()

	_, err := values.Int("id", pointer.From("abc"))
	require.ErrorIs(t, err, validation.ErrFormat)

	_, err = values.Float("collision_radius", pointer.From("1,5"))
	require.ErrorIs(t, err, validation.ErrFormat)
}

type testCore struct{ Name string }

type testView struct{ Name string }

func TestChildView_Success(t *testing.T) {
	t.Parallel()

	toView := func(c *testCore) (*testView, error) { return &testView{Name: c.Name}, nil }
	toCore := func(v *testView) *testCore { return &testCore{Name: v.Name} }

	v, err := values.ChildView(marshaller.Node[*testCore]{}, toView)
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Equal(t, marshaller.Node[*testCore]{}, values.ChildNode(v, toCore))

	v, err = values.ChildView(marshaller.Node[*testCore]{Present: true}, toView)
	require.NoError(t, err)
	assert.Equal(t, &testView{}, v)

	v, err = values.ChildView(marshaller.NewNode(&testCore{Name: "keys"}), toView)
	require.NoError(t, err)
	assert.Equal(t, marshaller.NewNode(&testCore{Name: "keys"}), values.ChildNode(v, toCore))
}
