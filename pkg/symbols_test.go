package foldeq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTable(t *testing.T) {
	cases := []struct {
		data   string
		expect []Variable
		sorted []Variable
	}{
		{"1 = 2", nil, []Variable{}},
		{"x = x", []Variable{'x'}, []Variable{'x'}},
		{"z * (b - z) = -a ^ b", []Variable{'z', 'b', 'a'}, []Variable{'a', 'b', 'z'}},
	}

	for _, c := range cases {
		stmt, err := ParseStatement(c.data)
		require.NoError(t, err)

		stab := SymbolsOf(stmt)
		assert.Equal(t, c.expect, stab.Entries, "collecting %q", c.data)
		assert.Equal(t, c.sorted, stab.Sorted(), "collecting %q", c.data)
		assert.Equal(t, len(c.expect), stab.Len())
		for _, v := range c.expect {
			assert.True(t, stab.Contains(v), "collecting %q", c.data)
		}
	}
}

func TestSymbolTableMerge(t *testing.T) {
	stab1 := NewSymbolTable()
	stab1.Add('y')
	stab1.Add('x')

	stab2 := NewSymbolTable()
	stab2.Add('x')
	stab2.Add('w')

	stab1.Merge(stab2)

	assert.Equal(t, []Variable{'y', 'x', 'w'}, stab1.Entries)
	assert.True(t, stab1.Contains('w'))
	assert.False(t, stab1.Contains('v'))
}
