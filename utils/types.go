package utils

import (
	"fmt"
	"reflect"

	"github.com/fatih/structs"
)

func ToPointer[T any](value T) *T {
	return &value
}

// DiffFields returns a "field: old -> new" line per field that differs
// between two structs of the same type. Used for admin mutation logs.
func DiffFields(old, new any) []string {
	before := structs.Map(old)
	after := structs.Map(new)

	diffs := make([]string, 0)
	for _, name := range structs.Names(old) {
		if !reflect.DeepEqual(before[name], after[name]) {
			diffs = append(diffs, fmt.Sprintf("%s: %v -> %v", name, before[name], after[name]))
		}
	}
	return diffs
}
