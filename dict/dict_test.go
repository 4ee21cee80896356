package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Lookup(t *testing.T) {
	d := New()

	readings := d.Lookup('微')
	require.NotEmpty(t, readings)
	assert.Contains(t, readings, "wei")

	// Not a Chinese character.
	assert.Empty(t, d.Lookup('a'))
}

func TestNew_DefaultOverrides(t *testing.T) {
	d := New()

	assert.Equal(t, []string{"hang", "xing"}, d.Lookup('行'))
	assert.Equal(t, []string{"le", "yue"}, d.Lookup('乐'))
}

func TestNew_CustomOverrides(t *testing.T) {
	d := New(func(o *Options) {
		o.Overrides = map[rune][]string{'微': {"WĒI", "wei", "wei"}}
	})

	// Lower-cased, tone-stripped, deduplicated.
	assert.Equal(t, []string{"wei"}, d.Lookup('微'))

	// With an explicit override table the defaults are gone and the base
	// data answers instead.
	assert.Contains(t, d.Lookup('行'), "xing")
}

func TestNew_Tones(t *testing.T) {
	plain := New()
	toned := New(func(o *Options) { o.Tones = true })

	require.NotEmpty(t, toned.Lookup('中'))
	for _, reading := range toned.Lookup('中') {
		assert.Contains(t, plain.Lookup('中'), StripTones(reading))
	}
}

func TestEmpty(t *testing.T) {
	d := Empty()
	assert.Nil(t, d.Lookup('微'))
	assert.Nil(t, d.Lookup('a'))
}

func TestStripTones(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"zhōng", "zhong"},
		{"zhòng", "zhong"},
		{"lǜ", "lu"},
		{"hǎo", "hao"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripTones(tt.in), "input %q", tt.in)
	}
}

func TestDefaultOverrides_FreshCopy(t *testing.T) {
	a := DefaultOverrides()
	a['微'] = []string{"nope"}
	b := DefaultOverrides()
	assert.NotContains(t, b, '微')
}
