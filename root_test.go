package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MattSimmons1/brewcalc/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func execute(args ...string) (stdout, stderr string, err error) {
	cmd := newRootCmd(Config{Output: "text"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestABVCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "abv to abw", args: []string{"abv_abw", "-p", "4"}, want: "ABW: 3.173%\n"},
		{name: "abw to abv", args: []string{"abv_abw", "-p", "4", "-r"}, want: "ABV: 5.042%\n"},
		{name: "with density", args: []string{"abv_abw", "-p", "4", "-d", "1"}, want: "ABW: 3.158%\n"},
		{
			name: "alcohol weight",
			args: []string{"abv_abw", "-p", "4", "-v", "2l"},
			want: "ABW: 3.173%\nAlcohol: 63.156 g\n",
		},
		{
			name: "alcohol weight, bare litres",
			args: []string{"abv_abw", "--percent", "4", "--total_volume", "2"},
			want: "ABW: 3.173%\nAlcohol: 63.156 g\n",
		},
		{
			name: "alcohol volume",
			args: []string{"abv_abw", "-p", "4", "-r", "-v", "2000 ml"},
			want: "ABV: 5.042%\nAlcohol: 100.837 ml\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestABVCommandErrors(t *testing.T) {
	_, _, err := execute("abv_abw", "-p", "4", "-v", "abc")
	var parseErr *parser.NumericParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, parser.KindVolume, parseErr.Kind)

	_, _, err = execute("abv_abw", "-v", "5gal")
	assert.Error(t, err, "percent is required")

	_, _, err = execute("abv_abw", "-p", "4", "-d", "0")
	assert.EqualError(t, err, "total density must be positive, got 0")
}

func TestABVCommandJSON(t *testing.T) {
	stdout, _, err := execute("-o", "json", "abv_abw", "-p", "4", "-v", "2l")
	require.NoError(t, err)

	var got map[string]float64
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.InDelta(t, 4.0, got["abv"], 1e-9)
	assert.InDelta(t, 3.17344, got["abw"], 1e-9)
	assert.InDelta(t, 63.156, got["alcohol_g"], 1e-9)
	assert.NotContains(t, got, "alcohol_ml")
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "gallons to litres",
			args: []string{"convert", "volume", "5gal", "--to", "l"},
			want: "volume \"5gal\"\n  l     18.9271\n",
		},
		{
			name: "celsius to fahrenheit",
			args: []string{"convert", "temp", "0C", "-t", "F"},
			want: "temperature \"0C\"\n  F     32\n",
		},
		{
			name: "empty is zero",
			args: []string{"convert", "mass", "", "-t", "kg"},
			want: "mass \"\"\n  kg    0\n",
		},
		{
			name: "every unit",
			args: []string{"convert", "temperature", "100"},
			want: "temperature \"100\"\n  C     100\n  F     212\n  K     373.15\n  R     671.67\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestConvertCommandYAML(t *testing.T) {
	stdout, _, err := execute("-o", "yaml", "convert", "mass", "2.5kg")
	require.NoError(t, err)

	var got conversion
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "mass", got.Kind)
	assert.Equal(t, "2.5kg", got.Input)
	require.Len(t, got.Values, len(parser.Symbols(parser.KindMass)))
	assert.Equal(t, "g", got.Values[0].Unit)
	assert.InDelta(t, 2500.0, got.Values[0].Value, 1e-9)
}

func TestConvertCommandScript(t *testing.T) {
	stdout, _, err := execute("-o", "json", "convert", "volume", "1gal", "-s", "v => v.ml > 3000")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, true, got["script"])

	stdout, stderr, err := execute("convert", "volume", "1gal", "-t", "gal", "--script", "v => v.nope * 2")
	require.NoError(t, err)
	assert.Equal(t, "volume \"1gal\"\n  gal   1\n  script null\n", stdout)
	assert.Contains(t, stderr, `level=warning msg="script returned no number"`)

	_, _, err = execute("convert", "volume", "1gal", "--script", "v.ml")
	assert.Error(t, err)
}

func TestConvertToDrops(t *testing.T) {
	// micro sign and Greek mu name the same unit
	for _, to := range []string{"\u00b5l", "\u03bcl"} {
		stdout, _, err := execute("convert", "volume", "1ml", "--to", to)
		require.NoError(t, err)
		assert.Equal(t, "volume \"1ml\"\n  \u03bcl    20\n", stdout)
	}

	_, _, err := execute("convert", "volume", "1ml", "--to", "drop")
	assert.Error(t, err)
}

func TestConvertCommandErrors(t *testing.T) {
	_, _, err := execute("convert", "mass", "123t")
	var parseErr *parser.NumericParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "123t", parseErr.Text)

	_, _, err = execute("convert", "length", "5m")
	assert.EqualError(t, err, `unknown quantity kind "length", want temperature, volume or mass`)

	_, _, err = execute("convert", "volume", "5gal", "--to", "quart")
	assert.Error(t, err)

	_, _, err = execute("convert", "volume")
	assert.Error(t, err)
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := execute("--verbose", "convert", "volume", "5gal")
	require.NoError(t, err)
	assert.Contains(t, stderr, `level=debug msg="parsed measurement"`)
	assert.Contains(t, stderr, "kind=volume")

	_, stderr, err = execute("convert", "volume", "5gal")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestUnitsCommand(t *testing.T) {
	stdout, _, err := execute("units", "mass")
	require.NoError(t, err)
	assert.Contains(t, stdout, "mass (default g)\n")
	assert.Contains(t, stdout, "  T    metric tons\n")
	assert.Contains(t, stdout, "  μg   micrograms\n")
	assert.NotContains(t, stdout, "volume")

	stdout, _, err = execute("units", "-o", "json")
	require.NoError(t, err)

	var got unitTables
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got.Kinds, 3)
	assert.Equal(t, "temperature", got.Kinds[0].Kind)
	assert.Equal(t, "C", got.Kinds[0].Default)
	assert.Len(t, got.Kinds[1].Tokens, len(parser.Tokens(parser.KindVolume)))
}

func TestUnknownOutputFormat(t *testing.T) {
	_, _, err := execute("-o", "xml", "units")
	assert.Error(t, err)
}
