package library

import (
	"bufio"
	"bytes"

	"funge98/internal/cellkind"
	"funge98/internal/fingerprint"
)

type stubContext struct {
	factory cellkind.Factory
	stack   []cellkind.Cell
	outBuf  bytes.Buffer
	out     *bufio.Writer
	in      *bufio.Reader
}

func newStubContext(stdin string) *stubContext {
	f := cellkind.NewFactory(4)
	c := &stubContext{factory: f, in: bufio.NewReader(bytes.NewBufferString(stdin))}
	c.out = bufio.NewWriter(&c.outBuf)
	return c
}

func (c *stubContext) Pop() cellkind.Cell {
	if len(c.stack) == 0 {
		return c.factory.Zero()
	}
	v := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return v
}
func (c *stubContext) Push(v cellkind.Cell)              { c.stack = append(c.stack, v) }
func (c *stubContext) Reflect()                          {}
func (c *stubContext) Factory() cellkind.Factory          { return c.factory }
func (c *stubContext) Stdout() fingerprint.StdWriter      { return c.out }
func (c *stubContext) Stdin() fingerprint.StdReader       { return c.in }
func (c *stubContext) push(v int64)                       { c.Push(c.factory.FromInt64(v)) }
