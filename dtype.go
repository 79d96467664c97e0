package bitstore

import (
	"sort"
)

// Definition describes one named data type: how to build a bit
// sequence from a value and how to read a value back out. Either
// function may be nil for one-way types.
type Definition struct {
	Name        string
	Description string

	// FixedLength, when nonzero, pins the type to exactly that many
	// bits. Zero means the length is chosen per value.
	FixedLength int

	// Variable marks types whose encoding chooses its own length, like
	// the exponential-Golomb codes; Build rejects an explicit length.
	Variable bool

	Set func(v any, length int) (*Store, error)
	Get func(s *Store) (any, error)
}

// Register is a named collection of type definitions. A register is
// not safe for concurrent mutation: populate it before sharing, the
// way DefaultRegister is built once at startup. Concurrent lookups,
// builds and reads are fine.
type Register struct {
	defs map[string]*Definition
}

// NewRegister returns an empty register.
func NewRegister() *Register {
	return &Register{defs: make(map[string]*Definition)}
}

// NewBuiltinRegister returns a register preloaded with the standard
// types and their single-letter aliases.
func NewBuiltinRegister() *Register {
	r := NewRegister()
	for _, def := range builtinDefs() {
		if err := r.Add(def); err != nil {
			panic(err)
		}
	}
	for alias, name := range builtinAliases {
		if err := r.AddAlias(alias, name); err != nil {
			panic(err)
		}
	}
	return r
}

// DefaultRegister holds the builtin types. Packages extending the
// vocabulary for a whole program add to it; code wanting isolation
// builds its own register.
var DefaultRegister = NewBuiltinRegister()

// Add registers def under def.Name, replacing any previous definition
// of that name.
func (r *Register) Add(def *Definition) error {
	if def.Name == "" {
		return creationErrf("a dtype definition needs a name")
	}
	r.defs[def.Name] = def
	return nil
}

// AddAlias registers an additional name for an existing definition.
func (r *Register) AddAlias(alias, name string) error {
	def := r.defs[name]
	if def == nil {
		return notFoundErrf("no dtype named %q", name)
	}
	r.defs[alias] = def
	return nil
}

// Remove unregisters one name. Aliases of the same definition are
// unaffected.
func (r *Register) Remove(name string) error {
	if _, ok := r.defs[name]; !ok {
		return notFoundErrf("no dtype named %q", name)
	}
	delete(r.defs, name)
	return nil
}

// Lookup returns the definition registered under name.
func (r *Register) Lookup(name string) (*Definition, error) {
	def := r.defs[name]
	if def == nil {
		return nil, notFoundErrf("no dtype named %q", name)
	}
	return def, nil
}

// Names returns every registered name, aliases included, sorted.
func (r *Register) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build encodes v as the named type. For fixed-length types length
// must be zero or the fixed length; variable-length types interpret
// length per type (codes like ue reject a nonzero length).
func (r *Register) Build(name string, v any, length int) (*Store, error) {
	def, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if def.Set == nil {
		return nil, creationErrf("dtype %q does not support building values", name)
	}
	if def.Variable && length != 0 {
		return nil, creationErrf("dtype %q chooses its own length; %d was given", name, length)
	}
	if def.FixedLength != 0 {
		if length != 0 && length != def.FixedLength {
			return nil, creationErrf("dtype %q has a fixed length of %d bits, not %d", name, def.FixedLength, length)
		}
		length = def.FixedLength
	}
	return def.Set(v, length)
}

// Read interprets the whole store as the named type.
func (r *Register) Read(name string, s *Store) (any, error) {
	def, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if def.Get == nil {
		return nil, interpretErrf("dtype %q does not support reading values", name)
	}
	if def.FixedLength != 0 && s.Len() != def.FixedLength {
		return nil, interpretErrf("dtype %q needs %d bits, got %d", name, def.FixedLength, s.Len())
	}
	return def.Get(s)
}

var builtinAliases = map[string]string{
	"u": "uint",
	"i": "int",
	"f": "float",
	"b": "bin",
	"h": "hex",
	"o": "oct",
}

func builtinDefs() []*Definition {
	return []*Definition{
		{
			Name:        "uint",
			Description: "a two's complement unsigned int",
			Set: func(v any, length int) (*Store, error) {
				u, err := asUint64(v)
				if err != nil {
					return nil, err
				}
				return FromUint(u, length)
			},
			Get: func(s *Store) (any, error) { return s.Uint() },
		},
		{
			Name:        "int",
			Description: "a two's complement signed int",
			Set: func(v any, length int) (*Store, error) {
				i, err := asInt64(v)
				if err != nil {
					return nil, err
				}
				return FromInt(i, length)
			},
			Get: func(s *Store) (any, error) { return s.Int() },
		},
		{
			Name:        "uintle",
			Description: "a little-endian whole-byte unsigned int",
			Set: func(v any, length int) (*Store, error) {
				u, err := asUint64(v)
				if err != nil {
					return nil, err
				}
				return FromUintLE(u, length)
			},
			Get: func(s *Store) (any, error) { return s.UintLE() },
		},
		{
			Name:        "intle",
			Description: "a little-endian whole-byte signed int",
			Set: func(v any, length int) (*Store, error) {
				i, err := asInt64(v)
				if err != nil {
					return nil, err
				}
				return FromIntLE(i, length)
			},
			Get: func(s *Store) (any, error) { return s.IntLE() },
		},
		{
			Name:        "float",
			Description: "a big-endian IEEE float of 16, 32 or 64 bits",
			Set: func(v any, length int) (*Store, error) {
				f, err := asFloat64(v)
				if err != nil {
					return nil, err
				}
				return FromFloat(f, length, true)
			},
			Get: func(s *Store) (any, error) { return s.Float(true) },
		},
		{
			Name:        "floatle",
			Description: "a little-endian IEEE float of 16, 32 or 64 bits",
			Set: func(v any, length int) (*Store, error) {
				f, err := asFloat64(v)
				if err != nil {
					return nil, err
				}
				return FromFloat(f, length, false)
			},
			Get: func(s *Store) (any, error) { return s.Float(false) },
		},
		{
			Name:        "bfloat",
			Description: "a big-endian bfloat16",
			FixedLength: 16,
			Set: func(v any, length int) (*Store, error) {
				f, err := asFloat64(v)
				if err != nil {
					return nil, err
				}
				return FromBFloat(f, true), nil
			},
			Get: func(s *Store) (any, error) { return s.BFloat(true) },
		},
		{
			Name:        "bfloatle",
			Description: "a little-endian bfloat16",
			FixedLength: 16,
			Set: func(v any, length int) (*Store, error) {
				f, err := asFloat64(v)
				if err != nil {
					return nil, err
				}
				return FromBFloat(f, false), nil
			},
			Get: func(s *Store) (any, error) { return s.BFloat(false) },
		},
		{
			Name:        "e4m3float",
			Description: "an 8-bit float with 4 exponent bits",
			FixedLength: 8,
			Set: func(v any, length int) (*Store, error) {
				f, err := asFloat64(v)
				if err != nil {
					return nil, err
				}
				return FromFloat8(f, E4M3), nil
			},
			Get: func(s *Store) (any, error) { return s.Float8(E4M3) },
		},
		{
			Name:        "e5m2float",
			Description: "an 8-bit float with 5 exponent bits",
			FixedLength: 8,
			Set: func(v any, length int) (*Store, error) {
				f, err := asFloat64(v)
				if err != nil {
					return nil, err
				}
				return FromFloat8(f, E5M2), nil
			},
			Get: func(s *Store) (any, error) { return s.Float8(E5M2) },
		},
		{
			Name:        "ue",
			Description: "an unsigned exponential-Golomb code",
			Variable:    true,
			Set: func(v any, length int) (*Store, error) {
				i, err := asInt64(v)
				if err != nil {
					return nil, err
				}
				return FromUE(i)
			},
			Get: func(s *Store) (any, error) { return s.UE() },
		},
		{
			Name:        "se",
			Description: "a signed exponential-Golomb code",
			Variable:    true,
			Set: func(v any, length int) (*Store, error) {
				i, err := asInt64(v)
				if err != nil {
					return nil, err
				}
				return FromSE(i)
			},
			Get: func(s *Store) (any, error) { return s.SE() },
		},
		{
			Name:        "uie",
			Description: "an unsigned interleaved exponential-Golomb code",
			Variable:    true,
			Set: func(v any, length int) (*Store, error) {
				i, err := asInt64(v)
				if err != nil {
					return nil, err
				}
				return FromUIE(i)
			},
			Get: func(s *Store) (any, error) { return s.UIE() },
		},
		{
			Name:        "sie",
			Description: "a signed interleaved exponential-Golomb code",
			Variable:    true,
			Set: func(v any, length int) (*Store, error) {
				i, err := asInt64(v)
				if err != nil {
					return nil, err
				}
				return FromSIE(i)
			},
			Get: func(s *Store) (any, error) { return s.SIE() },
		},
		{
			Name:        "bin",
			Description: "a binary digit string",
			Set:         setDigits(FromBin),
			Get:         func(s *Store) (any, error) { return s.Bin(), nil },
		},
		{
			Name:        "hex",
			Description: "a hex digit string, 4 bits per digit",
			Set:         setDigits(FromHex),
			Get:         func(s *Store) (any, error) { return s.Hex() },
		},
		{
			Name:        "oct",
			Description: "an octal digit string, 3 bits per digit",
			Set:         setDigits(FromOct),
			Get:         func(s *Store) (any, error) { return s.Oct() },
		},
		{
			Name:        "bool",
			Description: "a single bit",
			FixedLength: 1,
			Set: func(v any, length int) (*Store, error) {
				b, err := asBool(v)
				if err != nil {
					return nil, err
				}
				if b {
					return mustFromBits("1"), nil
				}
				return mustFromBits("0"), nil
			},
			Get: func(s *Store) (any, error) {
				if s.Len() != 1 {
					return nil, interpretErrf("bools must be 1 bit long, not %d bits", s.Len())
				}
				return s.Bit(0), nil
			},
		},
		{
			Name:        "pad",
			Description: "zero bits with no value",
			Set: func(v any, length int) (*Store, error) {
				if v != nil {
					return nil, creationErrf("pad takes no value")
				}
				if length <= 0 {
					return nil, creationErrf("pad needs a bit length of at least one, got %d", length)
				}
				return newZero(length), nil
			},
			Get: func(s *Store) (any, error) { return nil, nil },
		},
	}
}

// setDigits adapts a digit-string parser into a Set function that
// additionally enforces a requested length.
func setDigits(parse func(string) (*Store, error)) func(any, int) (*Store, error) {
	return func(v any, length int) (*Store, error) {
		str, err := asString(v)
		if err != nil {
			return nil, err
		}
		s, err := parse(str)
		if err != nil {
			return nil, err
		}
		if length != 0 && s.Len() != length {
			return nil, lengthMismatchErrf("%q parses to %d bits, but %d were requested", str, s.Len(), length)
		}
		return s, nil
	}
}

func asUint64(v any) (uint64, error) {
	switch x := v.(type) {
	case uint64:
		return x, nil
	case uint:
		return uint64(x), nil
	case int:
		if x < 0 {
			return 0, domainErrf("cannot use negative value %d as an unsigned integer", x)
		}
		return uint64(x), nil
	case int64:
		if x < 0 {
			return 0, domainErrf("cannot use negative value %d as an unsigned integer", x)
		}
		return uint64(x), nil
	}
	return 0, creationErrf("cannot use a %T as an unsigned integer", v)
}

func asInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case uint:
		return asInt64(uint64(x))
	case uint64:
		if x > 1<<63-1 {
			return 0, rangeErrf("%d does not fit a 64-bit signed integer", x)
		}
		return int64(x), nil
	}
	return 0, creationErrf("cannot use a %T as a signed integer", v)
}

func asFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	}
	return 0, creationErrf("cannot use a %T as a float", v)
}

func asString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", creationErrf("cannot use a %T as a digit string", v)
}

func asBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int:
		if x == 0 || x == 1 {
			return x == 1, nil
		}
	}
	return false, creationErrf("cannot use %v (%T) as a bool", v, v)
}
