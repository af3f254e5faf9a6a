// Command vecops evaluates a single vector operation from the command line.
//
//	vecops cross 1,2,3 4,5,6    → (-3, 6, -3)
//	vecops length "(3, 4, 0)"   → 5
//	vecops pack 1,2,3           → 1 2 3 0
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vec3f/internal/kernel"
	"vec3f/internal/mathutil"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: vecops <op> <arg>...\n\nops:\n")
		for _, op := range opNames {
			fmt.Fprintf(os.Stderr, "  %-10s %s\n", op, ops[op].usage)
		}
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(2)
	}

	out, err := eval(flag.Arg(0), flag.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

type op struct {
	usage string
	arity int // operands after the op name; -1 takes one or more
	run   func(args []string) (string, error)
}

var opNames = []string{
	"add", "sub", "mul", "div", "neg", "dot", "cross",
	"normalize", "length", "sqlength", "axis", "pack", "unpack",
}

var ops = map[string]op{
	"add": {
		usage: "<a> <b>  a + b",
		arity: 2,
		run:   withVec(func(a, b mathutil.Vec3f) string { return a.Add(b).String() }),
	},
	"sub": {
		usage: "<a> <b>  a - b",
		arity: 2,
		run:   withVec(func(a, b mathutil.Vec3f) string { return a.Sub(b).String() }),
	},
	"mul": {
		usage: "<a> <t>  a * t",
		arity: 2,
		run:   withScalar(func(a mathutil.Vec3f, t float32) string { return a.Mul(t).String() }),
	},
	"div": {
		usage: "<a> <t>  a / t",
		arity: 2,
		run:   withScalar(func(a mathutil.Vec3f, t float32) string { return a.Div(t).String() }),
	},
	"neg": {
		usage: "<a>      -a",
		arity: 1,
		run:   unary(func(a mathutil.Vec3f) string { return a.Neg().String() }),
	},
	"dot": {
		usage: "<a> <b>  a · b",
		arity: 2,
		run:   withVec(func(a, b mathutil.Vec3f) string { return formatScalar(a.Dot(b)) }),
	},
	"cross": {
		usage: "<a> <b>  a × b",
		arity: 2,
		run:   withVec(func(a, b mathutil.Vec3f) string { return a.Cross(b).String() }),
	},
	"normalize": {
		usage: "<a>      a / |a|, unchanged near zero",
		arity: 1,
		run:   unary(func(a mathutil.Vec3f) string { return a.Normalize().String() }),
	},
	"length": {
		usage: "<a>      |a|",
		arity: 1,
		run:   unary(func(a mathutil.Vec3f) string { return formatScalar(a.Length()) }),
	},
	"sqlength": {
		usage: "<a>      |a|²",
		arity: 1,
		run:   unary(func(a mathutil.Vec3f) string { return formatScalar(a.SquareLength()) }),
	},
	"axis": {
		usage: "<n>      unit vector along axis n, zero outside 0..2",
		arity: 1,
		run:   axis,
	},
	"pack": {
		usage: "<a>...   std430 float buffer (x y z 0 per vector)",
		arity: -1,
		run:   pack,
	},
	"unpack": {
		usage: "<f>...   vectors from a std430 float buffer",
		arity: -1,
		run:   unpack,
	},
}

func eval(name string, args []string) (string, error) {
	o, ok := ops[name]
	if !ok {
		return "", fmt.Errorf("unknown op %q", name)
	}
	switch {
	case o.arity < 0 && len(args) == 0:
		return "", fmt.Errorf("%s: want at least 1 argument", name)
	case o.arity >= 0 && len(args) != o.arity:
		return "", fmt.Errorf("%s: want %d arguments, got %d", name, o.arity, len(args))
	}
	return o.run(args)
}

func unary(f func(a mathutil.Vec3f) string) func([]string) (string, error) {
	return func(args []string) (string, error) {
		a, err := mathutil.Parse(args[0])
		if err != nil {
			return "", err
		}
		return f(a), nil
	}
}

func withVec(f func(a, b mathutil.Vec3f) string) func([]string) (string, error) {
	return func(args []string) (string, error) {
		a, err := mathutil.Parse(args[0])
		if err != nil {
			return "", err
		}
		b, err := mathutil.Parse(args[1])
		if err != nil {
			return "", err
		}
		return f(a, b), nil
	}
}

func withScalar(f func(a mathutil.Vec3f, t float32) string) func([]string) (string, error) {
	return func(args []string) (string, error) {
		a, err := mathutil.Parse(args[0])
		if err != nil {
			return "", err
		}
		t, err := parseScalar(args[1])
		if err != nil {
			return "", err
		}
		return f(a, t), nil
	}
}

func axis(args []string) (string, error) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("axis: %w", err)
	}
	return mathutil.Axis(n).String(), nil
}

func pack(args []string) (string, error) {
	vs := make([]mathutil.Vec3f, len(args))
	for i, s := range args {
		v, err := mathutil.Parse(s)
		if err != nil {
			return "", err
		}
		vs[i] = v
	}
	buf := kernel.Pack(vs)
	fields := make([]string, len(buf))
	for i, f := range buf {
		fields[i] = formatScalar(f)
	}
	return strings.Join(fields, " "), nil
}

func unpack(args []string) (string, error) {
	buf := make([]float32, len(args))
	for i, s := range args {
		f, err := parseScalar(s)
		if err != nil {
			return "", err
		}
		buf[i] = f
	}
	vs, err := kernel.Unpack(buf)
	if err != nil {
		return "", err
	}
	lines := make([]string, len(vs))
	for i, v := range vs {
		lines[i] = v.String()
	}
	return strings.Join(lines, "\n"), nil
}

func parseScalar(s string) (float32, error) {
	t, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("scalar %q: %w", s, err)
	}
	return float32(t), nil
}

func formatScalar(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
