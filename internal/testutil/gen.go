// Package testutil defines support code for unit tests.
package testutil

import (
	"math/rand/v2"
	"strings"
)

// A Generator produces random JSON texts from the subset accepted by the
// recognizer: strings of plain characters, unsigned numbers, the constants,
// and nested objects and arrays, with spaces and line feeds between tokens.
// The output of a Generator is deterministic for a given seed.
type Generator struct {
	rng   *rand.Rand
	depth int // maximum nesting depth
	width int // maximum number of elements per object or array
}

// NewGenerator constructs a generator seeded with seed.
func NewGenerator(seed uint64, depth, width int) *Generator {
	return &Generator{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		depth: depth,
		width: width,
	}
}

// Array returns a random array.
func (g *Generator) Array() string {
	var sb strings.Builder
	g.array(&sb, g.depth)
	return sb.String()
}

// Object returns a random object.
func (g *Generator) Object() string {
	var sb strings.Builder
	g.object(&sb, g.depth)
	return sb.String()
}

// Value returns a random value of any type.
func (g *Generator) Value() string {
	var sb strings.Builder
	g.value(&sb, g.depth)
	return sb.String()
}

func (g *Generator) value(sb *strings.Builder, depth int) {
	n := 5
	if depth > 0 {
		n = 7
	}
	switch g.rng.IntN(n) {
	case 0:
		g.str(sb)
	case 1:
		g.number(sb)
	case 2:
		sb.WriteString("true")
	case 3:
		sb.WriteString("false")
	case 4:
		sb.WriteString("null")
	case 5:
		g.object(sb, depth-1)
	case 6:
		g.array(sb, depth-1)
	}
}

func (g *Generator) object(sb *strings.Builder, depth int) {
	sb.WriteByte('{')
	g.space(sb)
	n := g.rng.IntN(g.width + 1)
	for i := range n {
		if i > 0 {
			sb.WriteByte(',')
			g.space(sb)
		}
		g.str(sb)
		g.space(sb)
		sb.WriteByte(':')
		g.space(sb)
		g.value(sb, depth)
		g.space(sb)
	}
	sb.WriteByte('}')
}

func (g *Generator) array(sb *strings.Builder, depth int) {
	sb.WriteByte('[')
	g.space(sb)
	n := g.rng.IntN(g.width + 1)
	for i := range n {
		if i > 0 {
			sb.WriteByte(',')
			g.space(sb)
		}
		g.value(sb, depth)
		g.space(sb)
	}
	sb.WriteByte(']')
}

const strChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 _-+*/.:,{}[]"

func (g *Generator) str(sb *strings.Builder) {
	sb.WriteByte('"')
	for range g.rng.IntN(12) {
		sb.WriteByte(strChars[g.rng.IntN(len(strChars))])
	}
	sb.WriteByte('"')
}

func (g *Generator) number(sb *strings.Builder) {
	sb.WriteByte(byte('1' + g.rng.IntN(9)))
	for range g.rng.IntN(6) {
		sb.WriteByte(byte('0' + g.rng.IntN(10)))
	}
	if g.rng.IntN(3) == 0 {
		sb.WriteByte('.')
		for range 1 + g.rng.IntN(4) {
			sb.WriteByte(byte('0' + g.rng.IntN(10)))
		}
	}
}

// space writes zero or more spaces and line feeds.
func (g *Generator) space(sb *strings.Builder) {
	for range g.rng.IntN(3) {
		if g.rng.IntN(4) == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
}
