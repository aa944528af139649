// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command swizzlegen generates the swizzle accessor methods for the
// gfxmath types: for every ordered selection, with repetition, of 2, 3 or
// 4 component letters of a type, one zero-argument method named by the
// concatenated letters, returning a Vector2, Vector3 or Vector4 by the
// arity of the selection. It is run from the package directory via
// go:generate and overwrites the *_swizzle.go files in place.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
)

const header = `// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Code generated by swizzlegen. DO NOT EDIT.

//go:build !noswizzle

package gfxmath
`

// swizzleType describes one type to generate accessors for.
type swizzleType struct {
	fileName string
	typeName string
	recv     string
	letters  []string // lowercase component letters, in field order
}

var types = []swizzleType{
	{"vector2_swizzle.go", "Vector2", "v", []string{"x", "y"}},
	{"vector3_swizzle.go", "Vector3", "v", []string{"x", "y", "z"}},
	{"vector4_swizzle.go", "Vector4", "v", []string{"x", "y", "z", "w"}},
	{"color_swizzle.go", "Color", "c", []string{"r", "g", "b", "a"}},
}

// resultCtor maps selection arity to the constructor of the result type.
var resultCtor = map[int]string{2: "Vec2", 3: "Vec3", 4: "Vec4"}

func main() {
	for _, st := range types {
		if err := os.WriteFile(st.fileName, generate(st), 0666); err != nil {
			log.Fatal(err)
		}
	}
}

func generate(st swizzleType) []byte {
	var b bytes.Buffer
	b.WriteString(header)
	for arity := 2; arity <= 4; arity++ {
		sel := make([]string, arity)
		emit(&b, st, sel, 0)
	}
	return b.Bytes()
}

// emit recursively fills sel with every combination of component letters
// and writes one method per complete selection, in lexicographic field order.
func emit(b *bytes.Buffer, st swizzleType, sel []string, pos int) {
	if pos == len(sel) {
		writeMethod(b, st, sel)
		return
	}
	for _, l := range st.letters {
		sel[pos] = l
		emit(b, st, sel, pos+1)
	}
}

func writeMethod(b *bytes.Buffer, st swizzleType, sel []string) {
	name := strings.ToUpper(strings.Join(sel, ""))
	args := make([]string, len(sel))
	for i, l := range sel {
		args[i] = st.recv + "." + strings.ToUpper(l)
	}
	ctor := resultCtor[len(sel)]
	call := fmt.Sprintf("%s(%s)", ctor, strings.Join(args, ", "))
	fmt.Fprintf(b, "\n// %s returns the swizzle %s.\nfunc (%s %s) %s() %s {\n\treturn %s\n}\n",
		name, call, st.recv, st.typeName, name, "Vector"+ctor[3:], call)
}
