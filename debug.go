// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"fmt"
	"io"
)

// String renders the live range, e.g. [1 2 3]
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.live())
}

// DebugDump writes a textual representation of v, including the reserved
// slots past Size(), to w
func (v *Vector[T]) DebugDump(w io.Writer) {
	var c Config[T]
	fmt.Fprintf(w, "\n  size %d  capacity %d  (%s)\n", v.size, v.capacity, humanBytes(c.BytesRequired(v.capacity)))
	fmt.Fprintf(w, "    slot  value->\n")
	for i, x := range v.live() {
		fmt.Fprintf(w, "%8d  %v\n", i, x)
	}
	if reserved := v.capacity - v.size; reserved > 0 {
		fmt.Fprintf(w, "          ... %d reserved\n", reserved)
	}
}
