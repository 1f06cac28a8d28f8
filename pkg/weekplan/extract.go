package weekplan

import (
	"strconv"
	"strings"
)

// textKeys are visited before any other member of an object, in this order.
var textKeys = []string{"text", "content", "output_text"}

// ExtractText recovers the reply text from a raw completion body. A body that
// is not a single JSON document is taken as plain text.
func ExtractText(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}

	v, err := Decode(raw)
	if err != nil {
		return trimmed
	}
	return ExtractValue(v)
}

// ExtractValue collects every non-empty scalar leaf of v depth-first, drops
// exact duplicates keeping the first, and joins the rest with newlines.
// It never panics; an internal failure yields "".
func ExtractValue(v Value) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	c := &collector{seen: make(map[string]struct{})}
	c.visit(v)
	return strings.TrimSpace(strings.Join(c.out, "\n"))
}

type collector struct {
	out  []string
	seen map[string]struct{}
}

func (c *collector) add(s string) {
	if s == "" {
		return
	}
	if _, dup := c.seen[s]; dup {
		return
	}
	c.seen[s] = struct{}{}
	c.out = append(c.out, s)
}

func (c *collector) visit(v Value) {
	switch v.Kind {
	case KindString:
		c.add(strings.TrimSpace(v.Text))
	case KindNumber:
		c.add(v.Text)
	case KindBool:
		c.add(strconv.FormatBool(v.Bool))
	case KindArray:
		for _, item := range v.Items {
			c.visit(item)
		}
	case KindObject:
		c.visitObject(v.Members)
	}
}

func (c *collector) visitObject(members []Member) {
	consumed := make([]bool, len(members))
	for _, key := range textKeys {
		for i, m := range members {
			if m.Key == key && !consumed[i] {
				consumed[i] = true
				c.visit(m.Value)
			}
		}
	}
	for i, m := range members {
		if !consumed[i] {
			c.visit(m.Value)
		}
	}
}
