package main

import (
	"fmt"
	"os"

	vec "github.com/facebookincubator/go-simplevector"
)

func main() {
	// reserve up front when you know how many elements you will add.
	// Otherwise each PushBack past capacity reallocates.
	v := vec.NewReserved[string](vec.Reserve(4))
	for _, color := range []string{"red", "yellow", "orange", "blue"} {
		v.PushBack(color)
	}

	v.Insert(v.Begin().Add(1), "green")
	v.Erase(v.End().Prev())

	for it := v.CBegin(); it.Less(v.CEnd()); it = it.Next() {
		fmt.Printf("%d: %s\n", it.Index(), it.Get())
	}

	if _, err := v.At(10); err != nil {
		fmt.Printf("checked access: %s\n", err)
	}

	w := vec.Copy(v)
	w.PushBack("violet")
	fmt.Printf("%v < %v: %t\n", v, w, vec.Less(v, w))

	// Dump the whole vector, reserved slots included
	v.DebugDump(os.Stdout)
}
