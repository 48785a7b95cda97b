package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/robertkrimen/otto"
)

// runScript evaluates an arrow function such as "v => v.ml / 355" with datum
// as its argument. otto only runs ES5, so the arrow function is rewritten as
// a plain function named f first.
func runScript(arrow string, datum map[string]interface{}) (interface{}, error) {
	function, err := arrowToFunction(arrow)
	if err != nil {
		return nil, err
	}

	vm := otto.New()
	if _, err := vm.Run(function); err != nil {
		return nil, fmt.Errorf("define script %q: %w", arrow, err)
	}

	if err := vm.Set("d", datum); err != nil {
		return nil, fmt.Errorf("set script argument: %w", err)
	}

	value, err := vm.Run("f(d)")
	if err != nil {
		return nil, fmt.Errorf("run script %q: %w", arrow, err)
	}

	d, err := value.Export()
	if err != nil {
		return nil, fmt.Errorf("export script result: %w", err)
	}

	// NaN doesn't convert to JSON, so convert it to nil
	if floatD, ok := d.(float64); ok && math.IsNaN(floatD) {
		return nil, nil
	}

	return d, nil
}

func arrowToFunction(arrow string) (string, error) {
	i := strings.Index(arrow, "=>")
	if i < 0 {
		return "", fmt.Errorf("script %q is not an arrow function, e.g. \"v => v.ml / 355\"", arrow)
	}

	param := strings.TrimSpace(arrow[:i])
	param = strings.TrimSuffix(strings.TrimPrefix(param, "("), ")")
	param = strings.TrimSpace(param)
	if param == "" || strings.ContainsAny(param, ", ") {
		return "", fmt.Errorf("script %q must take exactly one argument", arrow)
	}

	body := strings.TrimSpace(arrow[i+2:])
	if strings.HasPrefix(body, "{") {
		return "function f(" + param + ")" + body + ";", nil
	}
	return "function f(" + param + "){ return " + body + "};", nil
}
