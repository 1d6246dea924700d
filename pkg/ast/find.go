package ast

import (
	"strconv"
	"strings"

	"github.com/joshuapare/adtkit/pkg/types"
)

type keyKind uint8

const (
	keyIdent keyKind = iota + 1
	keyName
	keyAddr
	keyTid
)

// Key selects a term in Seq.Find. Matching reads schema fields (id, name,
// attrs), so it only succeeds on nodes built through a Schema.
type Key struct {
	kind keyKind
	text string
	addr uint64
	tid  Value
}

// ByIdent matches terms whose identifier name equals ident, sigil
// included ("@main", "%00000012").
func ByIdent(ident string) Key { return Key{kind: keyIdent, text: ident} }

// ByName matches terms whose name field equals name.
func ByName(name string) Key { return Key{kind: keyName, text: name} }

// ByAddr matches terms whose address attribute starts at addr.
func ByAddr(addr uint64) Key { return Key{kind: keyAddr, addr: addr} }

// ByTid matches terms whose identifier number equals that of tid.
// A nil tid matches nothing.
func ByTid(tid *Node) Key {
	if tid == nil {
		return Key{kind: keyTid}
	}
	return Key{kind: keyTid, tid: tid.At(0)}
}

// ParseKey classifies a textual key: a leading '@' or '%' selects by
// identifier, a "0x" address (optionally followed by ":width") selects by
// address, anything else by name.
func ParseKey(s string) Key {
	if s != "" && (s[0] == SigilIdent || s[0] == SigilTemp) {
		return ByIdent(s)
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if addr, err := ParseAddr(s); err == nil {
			return ByAddr(addr)
		}
	}
	return ByName(s)
}

// String returns a short description of the key.
func (k Key) String() string {
	switch k.kind {
	case keyIdent:
		return "ident " + k.text
	case keyName:
		return "name " + strconv.Quote(k.text)
	case keyAddr:
		return "address 0x" + strconv.FormatUint(k.addr, 16)
	case keyTid:
		if k.tid == nil {
			return "tid none"
		}
		return "tid " + Render(k.tid, RenderOptions{})
	}
	return "invalid key"
}

// Match reports whether n is selected by k.
func (k Key) Match(n *Node) bool {
	switch k.kind {
	case keyIdent:
		id, ok := fieldNode(n, FieldID)
		if !ok {
			return false
		}
		name, ok := id.Field(FieldName)
		if !ok {
			name = id.At(1)
		}
		s, ok := name.(Str)
		return ok && string(s) == k.text
	case keyName:
		v, ok := n.Field(FieldName)
		if !ok {
			return false
		}
		s, ok := v.(Str)
		return ok && string(s) == k.text
	case keyAddr:
		v, ok := n.Field(FieldAttrs)
		if !ok {
			return false
		}
		attrs, ok := AsMap(v)
		if !ok {
			return false
		}
		a, ok := attrs.Lookup(AttrAddress)
		if !ok {
			return false
		}
		s, ok := a.(Str)
		if !ok {
			return false
		}
		addr, err := ParseAddr(string(s))
		return err == nil && addr == k.addr
	case keyTid:
		id, ok := fieldNode(n, FieldID)
		return ok && k.tid != nil && Equal(id.At(0), k.tid)
	}
	return false
}

func fieldNode(n *Node, field string) (*Node, bool) {
	v, ok := n.Field(field)
	if !ok {
		return nil, false
	}
	id, ok := v.(*Node)
	return id, ok
}

// ParseAddr extracts the start address from an address attribute such as
// "0x400560:64u". The part before the first colon is read as hexadecimal,
// with or without a "0x" prefix.
func ParseAddr(s string) (uint64, error) {
	head, _, _ := strings.Cut(s, AddrSeparator)
	digits := strings.TrimSpace(head)
	if p, ok := strings.CutPrefix(digits, "0x"); ok {
		digits = p
	} else if p, ok := strings.CutPrefix(digits, "0X"); ok {
		digits = p
	}
	addr, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, &types.Error{
			Kind:   types.ErrKindInput,
			Msg:    "invalid address " + strconv.Quote(s),
			Offset: types.NoOffset,
			Err:    err,
		}
	}
	return addr, nil
}
