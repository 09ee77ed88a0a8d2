package class

import (
	"errors"
	"strings"
	"sync"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxMajorValue = 1<<majorBitSize - 1
	maxMinorValue = 1<<minorBitSize - 1
	maxIndexValue = 1<<indexBitSize - 1
)

func init() {
	registerClasses()
}

func registerClasses() {
	registerCommonClasses()
	registerConfigClasses()
	registerResourceClasses()
	registerQueryClasses()
	registerEncodingClasses()
	registerGraphClasses()
}

// Class is the error classification composed of the major, minor and index
// subclassifications packed into a single number. The major takes 7 bits,
// the minor 10 bits and the index the remaining 15 bits.
//
// Major should be a global scope division like 'Config', 'Resource' or 'Query'.
// Minor divides the major into subclasses like 'Query' - 'Include'.
// Index is the most precise classification i.e.: 'Query' - 'Include' - 'Too Deep'.
type Class uint32

// Major gets the class major.
func (c Class) Major() Major {
	return Major(c >> (32 - majorBitSize))
}

// Minor gets the class minor.
func (c Class) Minor() Minor {
	return Minor{major: c.Major(), value: uint16(c>>indexBitSize) & maxMinorValue}
}

// Index gets the class index.
func (c Class) Index() Index {
	return Index{minor: c.Minor(), value: uint16(c & maxIndexValue)}
}

// IsMajor checks if the class is composed of the major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// String implements fmt.Stringer interface.
func (c Class) String() string {
	var names []string
	names = append(names, strings.Fields(c.Major().Name())...)
	if minor := c.Minor(); minor.value != 0 {
		names = append(names, strings.Fields(minor.Name())...)
		if index := c.Index(); index.value != 0 {
			names = append(names, strings.Fields(index.Name())...)
		}
	}
	return strings.Join(names, "")
}

// Major is the top level error classification.
type Major uint8

// Name returns the major registered name.
func (m Major) Name() string {
	return registry.majorEntry(m).name
}

// Description gets the major registered description.
func (m Major) Description() string {
	return registry.majorEntry(m).description
}

// RegisterMinor registers the minor classification with unique 'name' within the major.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	return registry.newMinor(m, name, description...)
}

// MustRegisterMinor registers the minor classification. Panics on error.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

// Minor is the mid level error classification unique within its major.
type Minor struct {
	major Major
	value uint16
}

// Major gets the minor's root Major.
func (m Minor) Major() Major {
	return m.major
}

// Value gets the minor's value.
func (m Minor) Value() uint16 {
	return m.value
}

// Name gets the minor registered name.
func (m Minor) Name() string {
	return registry.minorEntry(m).name
}

// RegisterIndex registers the index with unique 'name' within the minor.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	return registry.newIndex(m, name, description...)
}

// MustRegisterIndex registers the index for given minor. Panics on error.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	index, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return index
}

// Index is the lowest level error classification.
type Index struct {
	minor Minor
	value uint16
}

// Minor returns index related Minor.
func (i Index) Minor() Minor {
	return i.minor
}

// Value gets the index value.
func (i Index) Value() uint16 {
	return i.value
}

// Name gets the index registered name.
func (i Index) Name() string {
	return registry.indexEntry(i).name
}

// Class gets the index related class.
func (i Index) Class() Class {
	return Class(uint32(i.minor.major)<<(32-majorBitSize) | uint32(i.minor.value)<<indexBitSize | uint32(i.value))
}

// RegisterMajor registers new major error classification with unique 'name'.
func RegisterMajor(name string, description ...string) (Major, error) {
	return registry.newMajor(name, description...)
}

// MustRegisterMajor registers new major error classification. Panics on error.
func MustRegisterMajor(name string, description ...string) Major {
	m, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return m
}

var registry = newClassRegistry()

type entry struct {
	name        string
	description string
}

func newEntry(name string, description []string) entry {
	e := entry{name: name}
	if len(description) > 0 {
		e.description = description[0]
	}
	return e
}

type classRegistry struct {
	majors  []entry
	minors  map[Major][]entry
	indexes map[Minor][]entry
	lock    sync.Mutex
}

func newClassRegistry() *classRegistry {
	return &classRegistry{
		minors:  map[Major][]entry{},
		indexes: map[Minor][]entry{},
	}
}

func (r *classRegistry) newMajor(name string, description ...string) (Major, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, e := range r.majors {
		if e.name == name {
			return 0, errors.New("major name already registered")
		}
	}
	if len(r.majors) == maxMajorValue {
		return 0, errors.New("too many majors registered")
	}
	r.majors = append(r.majors, newEntry(name, description))
	return Major(len(r.majors)), nil
}

func (r *classRegistry) newMinor(m Major, name string, description ...string) (Minor, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if m == 0 || int(m) > len(r.majors) {
		return Minor{}, errors.New("major not registered")
	}
	minors := r.minors[m]
	for _, e := range minors {
		if e.name == name {
			return Minor{}, errors.New("minor name already registered")
		}
	}
	if len(minors) == maxMinorValue {
		return Minor{}, errors.New("too many minors registered")
	}
	r.minors[m] = append(minors, newEntry(name, description))
	return Minor{major: m, value: uint16(len(minors) + 1)}, nil
}

func (r *classRegistry) newIndex(m Minor, name string, description ...string) (Index, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if m.value == 0 || int(m.value) > len(r.minors[m.major]) {
		return Index{}, errors.New("minor not registered")
	}
	indexes := r.indexes[m]
	for _, e := range indexes {
		if e.name == name {
			return Index{}, errors.New("index name already registered")
		}
	}
	if len(indexes) == maxIndexValue {
		return Index{}, errors.New("too many indexes registered")
	}
	r.indexes[m] = append(indexes, newEntry(name, description))
	return Index{minor: m, value: uint16(len(indexes) + 1)}, nil
}

func (r *classRegistry) majorEntry(m Major) entry {
	r.lock.Lock()
	defer r.lock.Unlock()
	if m == 0 || int(m) > len(r.majors) {
		return entry{}
	}
	return r.majors[m-1]
}

func (r *classRegistry) minorEntry(m Minor) entry {
	r.lock.Lock()
	defer r.lock.Unlock()
	minors := r.minors[m.major]
	if m.value == 0 || int(m.value) > len(minors) {
		return entry{}
	}
	return minors[m.value-1]
}

func (r *classRegistry) indexEntry(i Index) entry {
	r.lock.Lock()
	defer r.lock.Unlock()
	indexes := r.indexes[i.minor]
	if i.value == 0 || int(i.value) > len(indexes) {
		return entry{}
	}
	return indexes[i.value-1]
}
