package main

import (
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/colbeam/orc"
)

func newStripesCommand() *cli.Command {
	return &cli.Command{
		Name:      "stripes",
		Usage:     "list a file's stripes",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("%w: stripes: expected exactly one FILE argument", ErrOrcdump)
			}

			s := stripes{path: c.Args().First()}
			return s.Run()
		},
	}
}

type stripes struct {
	path string
}

func (s *stripes) Run() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("%w: opening file: %v", ErrOrcdump, err)
	}
	defer f.Close()

	r, err := orc.Open(f)
	if err != nil {
		return fmt.Errorf("%w: reading file: %v", ErrOrcdump, err)
	}

	tbl := table.New("stripe", "rows")
	for i := 0; i < r.NumStripes(); i++ {
		st, err := r.Stripe(i)
		if err != nil {
			return fmt.Errorf("%w: stripe %d: %v", ErrOrcdump, i, err)
		}

		tbl.AddRow(i, st.NumRows())
	}
	tbl.Print()

	return nil
}
