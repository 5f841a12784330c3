// Command vecbool applies a Boolean set operation to two SVG paths and
// writes the resulting SVG document to stdout.
package main

import (
	"fmt"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/vecbool"
)

type Options struct {
	Op string `index:"0" desc:"Operation: union, intersect, difference, xor"`
	A  string `index:"1" desc:"First path's SVG path data (e.g. \"M 0 0 L 10 0 L 10 10 L 0 10 Z\")"`
	B  string `index:"2" desc:"Second path's SVG path data"`
}

func main() {
	root := argp.NewCmd(&Options{}, "Boolean set operations (union, intersect, difference, xor) on SVG paths bounded by cubic Béziers")
	root.Parse()
}

func (cmd *Options) Run() error {
	if cmd.Op == "" || cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}

	a, err := vecbool.ParsePath(cmd.A)
	if err != nil {
		return err
	}
	b, err := vecbool.ParsePath(cmd.B)
	if err != nil {
		return err
	}

	var result *vecbool.Path
	switch cmd.Op {
	case "union":
		result = a.Union(b)
	case "intersect":
		result = a.Intersect(b)
	case "difference":
		result = a.Difference(b)
	case "xor":
		result = a.Xor(b)
	default:
		return fmt.Errorf("vecbool: unknown operation %q, want one of union, intersect, difference, xor", cmd.Op)
	}

	fmt.Println(result.ToSVG())
	return nil
}
