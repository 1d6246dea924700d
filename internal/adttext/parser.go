package adttext

import (
	"fmt"

	"github.com/joshuapare/adtkit/internal/progress"
	"github.com/joshuapare/adtkit/pkg/ast"
	"github.com/joshuapare/adtkit/pkg/types"
)

// Config tunes a single parse. The zero value parses with no limits and no
// progress reporting.
type Config struct {
	// LegacyHexTags lists applications whose bare integer arguments are
	// hexadecimal. Some producers emit addresses of these terms without
	// the 0x prefix.
	LegacyHexTags []string

	// Limits bounds the document; zero fields are unlimited.
	Limits ast.Limits

	// Progress, if set, is polled as input is consumed and finished once
	// the document is complete.
	Progress *progress.Tracker
}

type groupKind uint8

const (
	groupRoot groupKind = iota
	groupTuple
	groupList
	groupApp
)

// frame is one open group plus the element currently being filled in it
// (the slot). The bottom frame is the document itself and holds exactly
// one value.
type frame struct {
	kind    groupKind
	open    int // offset of the opening bracket or constructor name
	tag     string
	ctor    ast.Constructor
	hexInts bool
	base    int // index of this group's first child in parser.items

	val ast.Value
	has bool
}

type parser struct {
	data   []byte
	reg    ast.Registry
	cfg    Config
	hexTag map[string]bool

	stack []frame
	items []ast.Value // children of all open groups, innermost last
	nodes int64
}

// Parse converts ADT text into a value tree. The input is consumed in a
// single pass with an explicit frame stack, so nesting depth is bounded by
// memory and cfg.Limits, never by the goroutine stack.
//
// Errors are *types.Error values carrying the byte offset of the defect.
func Parse(data []byte, reg ast.Registry, cfg Config) (v ast.Value, err error) {
	if cfg.Limits.MaxInputSize > 0 && int64(len(data)) > cfg.Limits.MaxInputSize {
		return nil, ast.LimitViolation(&ast.ValidationError{
			Limit:   "MaxInputSize",
			Current: int64(len(data)),
			Maximum: cfg.Limits.MaxInputSize,
		})
	}
	p := &parser{
		data:  data,
		reg:   reg,
		cfg:   cfg,
		stack: make([]frame, 1, initialStackCapacity),
		items: make([]ast.Value, 0, initialItemCapacity),
	}
	if len(cfg.LegacyHexTags) > 0 {
		p.hexTag = make(map[string]bool, len(cfg.LegacyHexTags))
		for _, t := range cfg.LegacyHexTags {
			p.hexTag[t] = true
		}
	}

	pos := 0
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = p.errorf(types.ErrKindFault, pos, "internal error: %v", r)
		}
	}()
	return p.run(&pos)
}

func (p *parser) run(pos *int) (ast.Value, error) {
	data := p.data
	nextPoll := pollInterval
	i := 0
	for i < len(data) {
		*pos = i
		if i >= nextPoll {
			p.cfg.Progress.Update(int64(i))
			nextPoll = i + pollInterval
		}

		c := data[i]
		top := &p.stack[len(p.stack)-1]
		switch {
		case isSpace(c):
			i++

		case c == separator:
			if top.kind == groupRoot {
				return nil, p.errorf(types.ErrKindInput, i, "unexpected ',' outside of a group")
			}
			if !top.has {
				return nil, p.errorf(types.ErrKindInput, i, "empty element before ','")
			}
			if err := p.commit(top, i); err != nil {
				return nil, err
			}
			i++

		case c == closeTuple || c == closeList:
			if err := p.close(c, i); err != nil {
				return nil, err
			}
			i++

		case top.has:
			return nil, p.errorf(types.ErrKindInput, i, "unexpected %q after complete value", c)

		case c == openTuple:
			if err := p.push(frame{kind: groupTuple, open: i}); err != nil {
				return nil, err
			}
			i++

		case c == openList:
			if err := p.push(frame{kind: groupList, open: i}); err != nil {
				return nil, err
			}
			i++

		case c == quote:
			end := findClosingQuote(data, i)
			if end < 0 {
				return nil, p.errorf(types.ErrKindInput, i, "unterminated string")
			}
			s, eerr := unescape(data[i+1 : end])
			if eerr != nil {
				return nil, p.errorf(types.ErrKindInput, i+1+eerr.at, "%s", eerr.msg)
			}
			if lim := p.cfg.Limits.MaxStringLen; lim > 0 && len(s) > lim {
				return nil, p.limitf(i, "MaxStringLen", int64(len(s)), int64(lim))
			}
			top.val, top.has = ast.Str(s), true
			i = end + 1

		case isDigit(c):
			end := scanWord(data, i)
			n, ok := parseInt(data[i:end], top.hexInts)
			if !ok {
				return nil, p.errorf(types.ErrKindInput, i, "invalid integer literal %q", data[i:end])
			}
			top.val, top.has = n, true
			i = end

		case isIdentStart(c):
			end := scanWord(data, i)
			if end < len(data) && data[end] == openTuple {
				if err := p.openApp(data[i:end], i); err != nil {
					return nil, err
				}
				i = end + 1
				continue
			}
			// Legacy hex arguments may start with a letter.
			if top.hexInts {
				if n, ok := parseInt(data[i:end], true); ok {
					top.val, top.has = n, true
					i = end
					continue
				}
			}
			return nil, p.errorf(types.ErrKindInput, i, "constructor name %q must be followed by '('", data[i:end])

		default:
			return nil, p.errorf(types.ErrKindInput, i, "unexpected character %q", c)
		}
	}
	*pos = len(data)
	return p.finish()
}

// commit moves the slot value of top into its group's children.
func (p *parser) commit(top *frame, at int) error {
	if lim := p.cfg.Limits.MaxListLen; lim > 0 && len(p.items)-top.base >= lim {
		return p.limitf(at, "MaxListLen", int64(len(p.items)-top.base+1), int64(lim))
	}
	p.items = append(p.items, top.val)
	top.val, top.has = nil, false
	return nil
}

func (p *parser) push(f frame) error {
	f.base = len(p.items)
	p.stack = append(p.stack, f)
	if lim := p.cfg.Limits.MaxDepth; lim > 0 && len(p.stack) > lim {
		return p.limitf(f.open, "MaxDepth", int64(len(p.stack)), int64(lim))
	}
	return nil
}

func (p *parser) openApp(name []byte, at int) error {
	tag := string(name)
	ctor, ok := p.reg.Lookup(tag)
	if !ok {
		return p.errorf(types.ErrKindUndefined, at, "undefined constructor %q", tag)
	}
	p.nodes++
	if lim := p.cfg.Limits.MaxNodes; lim > 0 && p.nodes > lim {
		return p.limitf(at, "MaxNodes", p.nodes, lim)
	}
	return p.push(frame{kind: groupApp, open: at, tag: tag, ctor: ctor, hexInts: p.hexTag[tag]})
}

// close ends the innermost group and stores the finished value in the
// enclosing slot.
func (p *parser) close(c byte, at int) error {
	top := &p.stack[len(p.stack)-1]
	if top.kind == groupRoot {
		return p.errorf(types.ErrKindInput, at, "unbalanced %q", c)
	}
	want := byte(closeTuple)
	if top.kind == groupList {
		want = closeList
	}
	if c != want {
		return p.errorf(types.ErrKindInput, at, "%q does not close %q opened at offset %d", c, opener(top.kind), top.open)
	}
	if top.has {
		if err := p.commit(top, at); err != nil {
			return err
		}
	}

	children := make([]ast.Value, len(p.items)-top.base)
	copy(children, p.items[top.base:])
	clear(p.items[top.base:])
	p.items = p.items[:top.base]

	var v ast.Value
	switch top.kind {
	case groupTuple:
		v = ast.Tuple(children)
	case groupList:
		v = ast.List(children)
	case groupApp:
		built, err := top.ctor(children)
		if err != nil {
			kind := types.ErrKindArity
			if k, ok := types.KindOf(err); ok {
				kind = k
			}
			e := p.errorf(kind, top.open, "constructor %s rejected its arguments", top.tag)
			e.Err = err
			return e
		}
		if built == nil {
			return p.errorf(types.ErrKindFault, top.open, "constructor %s returned no value", top.tag)
		}
		v = built
	}

	p.stack[len(p.stack)-1] = frame{}
	p.stack = p.stack[:len(p.stack)-1]
	parent := &p.stack[len(p.stack)-1]
	if parent.has {
		return p.errorf(types.ErrKindFault, at, "slot already holds a value")
	}
	parent.val, parent.has = v, true
	return nil
}

func (p *parser) finish() (ast.Value, error) {
	if len(p.stack) > 1 {
		top := p.stack[len(p.stack)-1]
		return nil, p.errorf(types.ErrKindInput, len(p.data), "unexpected end of input: %q opened at offset %d is not closed", opener(top.kind), top.open)
	}
	root := p.stack[0]
	if !root.has {
		return nil, p.errorf(types.ErrKindInput, len(p.data), "no value in input")
	}
	if len(p.items) != 0 {
		return nil, p.errorf(types.ErrKindFault, len(p.data), "%d orphaned children", len(p.items))
	}
	p.cfg.Progress.Finish(int64(len(p.data)))
	return root.val, nil
}

func opener(k groupKind) byte {
	if k == groupList {
		return openList
	}
	return openTuple
}

func (p *parser) errorf(kind types.ErrKind, at int, format string, args ...any) *types.Error {
	return &types.Error{
		Kind:    kind,
		Msg:     fmt.Sprintf(format, args...),
		Offset:  at,
		Excerpt: excerpt(p.data, at),
	}
}

func (p *parser) limitf(at int, limit string, current, maximum int64) *types.Error {
	ve := &ast.ValidationError{Limit: limit, Current: current, Maximum: maximum}
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].kind == groupApp {
			ve.Tag = p.stack[i].tag
			break
		}
	}
	e := p.errorf(types.ErrKindLimit, at, "%s", ve.Error())
	e.Err = ve
	return e
}

func excerpt(data []byte, at int) string {
	lo, hi := at-excerptRadius, at+excerptRadius
	if lo < 0 {
		lo = 0
	}
	if hi > len(data) {
		hi = len(data)
	}
	if lo >= hi {
		return ""
	}
	return string(data[lo:hi])
}
