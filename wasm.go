//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/MattSimmons1/brewcalc/parser"
)

func main() {
	js.Global().Get("wasm").Set("brewcalc", js.FuncOf(WASMConvert))

	select {} // don't exit
}

// WASMConvert takes a kind and a measurement string and returns an object of
// unit values, or an object with an error message.
func WASMConvert(this js.Value, p []js.Value) interface{} {
	if len(p) < 2 {
		return js.ValueOf(map[string]interface{}{"error": "usage: brewcalc(kind, value)"})
	}

	kind, err := parseKind(p[0].String())
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	q, err := parser.Parse(kind, p[1].String())
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	data := make(map[string]interface{})
	for symbol, v := range q.Values() {
		data[symbol] = v
	}
	return js.ValueOf(data)
}
