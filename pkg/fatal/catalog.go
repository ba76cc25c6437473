// Package fatal reports broken container invariants and terminates the
// process. Violations are programmer errors: there is no recovery path and no
// error value is ever returned to the caller.
package fatal

// Condition groups violation kinds into the four invariant families.
type Condition int

const (
	IteratorMisuse Condition = iota + 1
	CrossContainerIterator
	EmptyContainerAccess
	OutOfRangeAccess
)

func (c Condition) String() string {
	switch c {
	case IteratorMisuse:
		return "IteratorMisuse"
	case CrossContainerIterator:
		return "CrossContainerIterator"
	case EmptyContainerAccess:
		return "EmptyContainerAccess"
	case OutOfRangeAccess:
		return "OutOfRangeAccess"
	default:
		return "Unknown"
	}
}

// Kind identifies a single violation in the message catalog.
type Kind int

const (
	KindUnknown Kind = iota
	IncrementEnd
	DecrementBegin
	DereferenceEnd
	IncrementRend
	DecrementRbegin
	DereferenceRend
	TraversedPastBounds
	ForeignIterator
	PopEmpty
	FrontEmpty
	BackEmpty
	SubscriptOutOfRange
	NegativeCount
)

type entry struct {
	condition Condition
	code      string
	message   string
}

var catalog = [...]entry{
	KindUnknown:         {0, "unknown", "unknown violation"},
	IncrementEnd:        {IteratorMisuse, "increment-end", "cannot increment the end iterator"},
	DecrementBegin:      {IteratorMisuse, "decrement-begin", "cannot decrement the begin iterator"},
	DereferenceEnd:      {IteratorMisuse, "dereference-end", "cannot dereference the end iterator"},
	IncrementRend:       {IteratorMisuse, "increment-rend", "cannot increment the rend iterator"},
	DecrementRbegin:     {IteratorMisuse, "decrement-rbegin", "cannot decrement the rbegin iterator"},
	DereferenceRend:     {IteratorMisuse, "dereference-rend", "cannot dereference the rend iterator"},
	TraversedPastBounds: {IteratorMisuse, "traversed-past-bounds", "iterator moved outside the vector"},
	ForeignIterator:     {CrossContainerIterator, "foreign-iterator", "iterator belongs to a different vector"},
	PopEmpty:            {EmptyContainerAccess, "pop-empty", "cannot pop an empty vector"},
	FrontEmpty:          {EmptyContainerAccess, "front-empty", "front called on an empty vector"},
	BackEmpty:           {EmptyContainerAccess, "back-empty", "back called on an empty vector"},
	SubscriptOutOfRange: {OutOfRangeAccess, "subscript-out-of-range", "vector subscript out of range"},
	NegativeCount:       {OutOfRangeAccess, "negative-count", "element count must not be negative"},
}

func (k Kind) lookup() entry {
	if k < 0 || int(k) >= len(catalog) {
		return catalog[KindUnknown]
	}
	return catalog[k]
}

// Condition returns the invariant family k belongs to.
func (k Kind) Condition() Condition {
	return k.lookup().condition
}

// Code returns the stable, kebab-case identifier of k.
func (k Kind) Code() string {
	return k.lookup().code
}

// Message returns the human readable diagnostic for k.
func (k Kind) Message() string {
	return k.lookup().message
}

func (k Kind) String() string {
	return k.Code()
}

// Kinds lists every cataloged kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(catalog)-1)
	for k := IncrementEnd; int(k) < len(catalog); k++ {
		out = append(out, k)
	}
	return out
}
