// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	vec "github.com/facebookincubator/go-simplevector"
)

var errEmpty = errors.New("vector is empty")

// interpreter applies a script of vector operations, one per line, to a
// vector of ints.  Blank lines and lines starting with '#' are ignored.
type interpreter struct {
	v     *vec.Vector[int]
	out   io.Writer
	trace bool
}

func newInterpreter(out io.Writer, trace bool) *interpreter {
	return &interpreter{v: vec.New[int](), out: out, trace: trace}
}

func (in *interpreter) run(r io.Reader) (ops int, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err = in.exec(strings.Fields(text)); err != nil {
			return ops, fmt.Errorf("line %d (%q): %w", line, text, err)
		}
		ops++
		if in.trace {
			fmt.Fprintf(in.out, "%-20s size=%d capacity=%d\n", text, in.v.Size(), in.v.Capacity())
		}
	}
	return ops, scanner.Err()
}

func (in *interpreter) exec(fields []string) error {
	op, args := fields[0], fields[1:]
	switch op {
	case "push":
		var x int
		if err := parseArgs(args, &x); err != nil {
			return err
		}
		in.v.PushBack(x)
	case "pop":
		if err := parseArgs(args); err != nil {
			return err
		}
		if in.v.IsEmpty() {
			return errEmpty
		}
		in.v.PopBack()
	case "insert":
		var i uint
		var x int
		if err := parseArgs(args, &i, &x); err != nil {
			return err
		}
		if i > in.v.Size() {
			return &vec.OutOfRangeError{Index: i, Size: in.v.Size()}
		}
		in.v.InsertAt(i, x)
	case "erase":
		var i uint
		if err := parseArgs(args, &i); err != nil {
			return err
		}
		if i > in.v.Size() {
			return &vec.OutOfRangeError{Index: i, Size: in.v.Size()}
		}
		in.v.EraseAt(i)
	case "reserve":
		var n uint
		if err := parseArgs(args, &n); err != nil {
			return err
		}
		in.v.Reserve(n)
	case "resize":
		var n uint
		if err := parseArgs(args, &n); err != nil {
			return err
		}
		in.v.Resize(n)
	case "clear":
		if err := parseArgs(args); err != nil {
			return err
		}
		in.v.Clear()
	case "at":
		var i uint
		if err := parseArgs(args, &i); err != nil {
			return err
		}
		p, err := in.v.At(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, *p)
	case "set":
		var i uint
		var x int
		if err := parseArgs(args, &i, &x); err != nil {
			return err
		}
		p, err := in.v.At(i)
		if err != nil {
			return err
		}
		*p = x
	case "print":
		if err := parseArgs(args); err != nil {
			return err
		}
		fmt.Fprintln(in.out, in.v)
	case "dump":
		if err := parseArgs(args); err != nil {
			return err
		}
		in.v.DebugDump(in.out)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}

// parseArgs parses args into dst, which holds *int or *uint values
func parseArgs(args []string, dst ...interface{}) error {
	if len(args) != len(dst) {
		return fmt.Errorf("expected %d arguments, got %d", len(dst), len(args))
	}
	for i, a := range args {
		switch d := dst[i].(type) {
		case *int:
			x, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			*d = x
		case *uint:
			x, err := strconv.ParseUint(a, 10, 0)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			*d = uint(x)
		default:
			panic(fmt.Sprintf("unsupported argument type %T", d))
		}
	}
	return nil
}

// growthTrace records the capacity after each of n PushBack calls and
// after each of n Insert-at-end calls, starting from empty vectors
func growthTrace(n uint) (pushes, inserts []uint) {
	pv, iv := vec.New[int](), vec.New[int]()
	for i := uint(0); i < n; i++ {
		pv.PushBack(int(i))
		pushes = append(pushes, pv.Capacity())
		iv.Insert(iv.End(), int(i))
		inserts = append(inserts, iv.Capacity())
	}
	return
}

func reallocations(capacities []uint) (n int) {
	last := uint(0)
	for _, c := range capacities {
		if c != last {
			n++
		}
		last = c
	}
	return
}
