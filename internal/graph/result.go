package graph

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Status qualifies a query result. Anything but StatusOK means the query has
// no answer; the value says why.
type Status uint8

const (
	StatusOK          Status = iota
	StatusMissingNode        // a named node is not in the graph
	StatusUnreachable        // no path joins the nodes
	StatusEmptyGraph         // the graph has no nodes
)

// Defined reports whether the query produced an answer.
func (s Status) Defined() bool {
	return s == StatusOK
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissingNode:
		return "missing_node"
	case StatusUnreachable:
		return "unreachable"
	case StatusEmptyGraph:
		return "empty_graph"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status as its string form.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Distance is a hop count that may be undefined.
type Distance struct {
	Hops   int
	Status Status
}

// Defined reports whether Hops holds an answer.
func (d Distance) Defined() bool {
	return d.Status.Defined()
}

func (d Distance) String() string {
	if !d.Defined() {
		return "undefined"
	}
	return strconv.Itoa(d.Hops)
}

// MarshalJSON encodes a defined distance as a number and an undefined one as null.
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.Defined() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(d.Hops)), nil
}

func defined(hops int) Distance {
	return Distance{Hops: hops, Status: StatusOK}
}

func undefined(s Status) Distance {
	return Distance{Status: s}
}

// Set is a read-only, sorted set of participant names.
type Set struct {
	names []string
}

// NewSet returns a set holding the given names.
func NewSet(names ...string) Set {
	if len(names) == 0 {
		return Set{}
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	// Drop duplicates in place.
	out := sorted[:1]
	for _, n := range sorted[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return Set{names: out}
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.names)
}

// Contains reports whether name is a member.
func (s Set) Contains(name string) bool {
	i := sort.SearchStrings(s.names, name)
	return i < len(s.names) && s.names[i] == name
}

// Names returns the members in sorted order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(other Set) bool {
	if len(s.names) != len(other.names) {
		return false
	}
	for i := range s.names {
		if s.names[i] != other.names[i] {
			return false
		}
	}
	return true
}

// IsSubset reports whether every member of s is in other.
func (s Set) IsSubset(other Set) bool {
	for _, n := range s.names {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted array; the empty set is [].
func (s Set) MarshalJSON() ([]byte, error) {
	if s.names == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.names)
}
