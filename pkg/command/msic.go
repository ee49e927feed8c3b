// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"reflect"

	"github.com/alecthomas/kong"
	"github.com/antgroup/levdiff/modules/strengthen"
)

// SizeDecoder maps values like "100m" or "512k" onto int64 fields tagged
// type:"size".
func SizeDecoder() kong.MapperFunc {
	return func(ctx *kong.DecodeContext, target reflect.Value) error {
		t, err := ctx.Scan.PopValue("size")
		if err != nil {
			return err
		}
		var sv string
		switch v := t.Value.(type) {
		case string:
			sv = v
		default:
			return fmt.Errorf("expected a string value but got %q (%T)", t, t.Value)
		}
		i, err := strengthen.ParseSize(sv)
		if err != nil {
			return fmt.Errorf("bad size '%s': %w", sv, err)
		}
		if target.Kind() != reflect.Int64 {
			return fmt.Errorf("internal error: type 'size' only works with fields of type int64; got %s", target.Type())
		}
		target.SetInt(i)
		return nil
	}
}
