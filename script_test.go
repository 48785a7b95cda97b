package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowToFunction(t *testing.T) {
	tests := []struct {
		name    string
		arrow   string
		want    string
		wantErr bool
	}{
		{name: "expression", arrow: "v => v.ml / 355", want: "function f(v){ return v.ml / 355};"},
		{name: "parenthesised", arrow: "(v) => v.l", want: "function f(v){ return v.l};"},
		{name: "block", arrow: "v => { return v.l * 2 }", want: "function f(v){ return v.l * 2 };"},
		{name: "not a function", arrow: "v.ml", wantErr: true},
		{name: "two arguments", arrow: "(a, b) => a", wantErr: true},
		{name: "no argument", arrow: "() => 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := arrowToFunction(tt.arrow)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunScript(t *testing.T) {
	datum := map[string]interface{}{"l": 19.0, "ml": 19000.0}

	got, err := runScript("v => v.ml / 500", datum)
	require.NoError(t, err)
	assert.InDelta(t, 38.0, got, 1e-9)

	got, err = runScript("v => v.l > 20 ? 'big' : 'small'", datum)
	require.NoError(t, err)
	assert.Equal(t, "small", got)

	got, err = runScript("v => v.missing / 2", datum)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = runScript("v => v.l +", datum)
	assert.Error(t, err)

	_, err = runScript("v => undefinedFunction(v)", datum)
	assert.Error(t, err)
}
