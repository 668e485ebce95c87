// Package arrowconv exports materialized tables as Apache Arrow records.
//
// The mapping is direct: int columns become int64 arrays, float columns
// become float64 arrays, string columns become string arrays, and a column's
// fill mask becomes the array's validity bitmap — a masked row is a null.
//
//	tbl, _ := table.Read(data, table.DefaultOptions())
//	rec, err := arrowconv.Record(tbl)
//	if err != nil {
//	    // handle error
//	}
//	defer rec.Release()
package arrowconv

import (
	"fmt"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"github.com/shapestone/shape-table/pkg/table"
)

// Record converts a table into an Arrow record batch. Columns keep their
// source order. The caller owns the returned record and must Release it.
func Record(t *table.Table) (arrow.Record, error) {
	mem := memory.DefaultAllocator
	names := t.Names()

	fields := make([]arrow.Field, 0, len(names))
	arrays := make([]arrow.Array, 0, len(names))
	release := func() {
		for _, a := range arrays {
			a.Release()
		}
	}

	for _, name := range names {
		col := t.Column(name)
		valid := validity(col)

		var (
			arr arrow.Array
			typ arrow.DataType
		)
		switch col.Kind {
		case table.KindInt:
			b := array.NewInt64Builder(mem)
			b.AppendValues(col.Ints, valid)
			arr = b.NewArray()
			b.Release()
			typ = arrow.PrimitiveTypes.Int64
		case table.KindFloat:
			b := array.NewFloat64Builder(mem)
			b.AppendValues(col.Floats, valid)
			arr = b.NewArray()
			b.Release()
			typ = arrow.PrimitiveTypes.Float64
		case table.KindString:
			b := array.NewStringBuilder(mem)
			b.AppendValues(col.Strings, valid)
			arr = b.NewArray()
			b.Release()
			typ = arrow.BinaryTypes.String
		default:
			release()
			return nil, fmt.Errorf("arrowconv: column %q has unknown kind %q", name, col.Kind)
		}

		arrays = append(arrays, arr)
		fields = append(fields, arrow.Field{Name: name, Type: typ, Nullable: col.Mask != nil})
	}

	schema := arrow.NewSchema(fields, nil)
	rec := array.NewRecord(schema, arrays, int64(t.Len()))
	release() // the record holds its own references
	return rec, nil
}

// validity inverts a fill mask into Arrow's valid flags. A nil mask means
// every value is valid, which Arrow spells as a nil slice.
func validity(col *table.Column) []bool {
	if col.Mask == nil {
		return nil
	}
	valid := make([]bool, len(col.Mask))
	for i, masked := range col.Mask {
		valid[i] = !masked
	}
	return valid
}
