package main

import (
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/colbeam/orc"
	"github.com/colbeam/orc/format"
	"github.com/colbeam/orc/internal/pool"
)

func newDumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "dump one column's decoded values",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "column", Usage: "schema column id to dump", Required: true},
			&cli.IntFlag{Name: "stripe", Usage: "stripe index to dump", Value: 0},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("%w: dump: expected exactly one FILE argument", ErrOrcdump)
			}

			d := dump{
				path:      c.Args().First(),
				columnID:  c.Int("column"),
				stripeIdx: c.Int("stripe"),
			}
			return d.Run()
		},
	}
}

type dump struct {
	path      string
	columnID  int
	stripeIdx int
}

func (d *dump) Run() error {
	f, err := os.Open(d.path)
	if err != nil {
		return fmt.Errorf("%w: opening file: %v", ErrOrcdump, err)
	}
	defer f.Close()

	r, err := orc.Open(f)
	if err != nil {
		return fmt.Errorf("%w: reading file: %v", ErrOrcdump, err)
	}

	types := r.Types()
	if d.columnID < 0 || d.columnID >= len(types) {
		return fmt.Errorf("%w: dump: column %d out of range (file has %d types)", ErrOrcdump, d.columnID, len(types))
	}

	st, err := r.Stripe(d.stripeIdx)
	if err != nil {
		return fmt.Errorf("%w: stripe %d: %v", ErrOrcdump, d.stripeIdx, err)
	}

	scratch := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(scratch)

	tbl := table.New("row", "valid", "value")

	switch k := types[d.columnID].Kind; k {
	case format.TypeBoolean:
		validity, values, err := st.Booleans(d.columnID, scratch)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrOrcdump, err)
		}
		addRows(tbl, validity, values)
	case format.TypeByte, format.TypeShort, format.TypeInt, format.TypeLong:
		validity, values, err := st.Int64s(d.columnID, scratch)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrOrcdump, err)
		}
		addRows(tbl, validity, values)
	case format.TypeFloat:
		validity, values, err := st.Float32s(d.columnID, scratch)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrOrcdump, err)
		}
		addRows(tbl, validity, values)
	case format.TypeDouble:
		validity, values, err := st.Float64s(d.columnID, scratch)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrOrcdump, err)
		}
		addRows(tbl, validity, values)
	case format.TypeString, format.TypeVarchar, format.TypeChar:
		validity, values, err := st.Strings(d.columnID, scratch)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrOrcdump, err)
		}
		addRows(tbl, validity, values)
	default:
		return fmt.Errorf("%w: dump: column %d has unsupported type %s", ErrOrcdump, d.columnID, k)
	}

	tbl.Print()

	return nil
}

func addRows[T any](tbl table.Table, validity []bool, values []T) {
	vi := 0
	for row, valid := range validity {
		if !valid {
			tbl.AddRow(row, false, nil)
			continue
		}

		tbl.AddRow(row, true, values[vi])
		vi++
	}
}
