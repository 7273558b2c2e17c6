package inspect

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/chazu/joist/pkg/plan"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms console Lisp source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: floor-area -> floor_area
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpRing wraps an orb.Ring so outlines can be passed between builtins.
type sexpRing struct {
	ring orb.Ring
}

func (r *sexpRing) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(ring %d points)", len(r.ring))
}
func (r *sexpRing) Type() *zygo.RegisteredType { return nil }

// sexpOpening wraps a raw opening so it can be returned from `door` and
// `window` and consumed by `wall`.
type sexpOpening struct {
	raw plan.RawOpening
}

func (o *sexpOpening) SexpString(ps *zygo.PrintState) string {
	if len(o.raw.Tags) > 0 {
		return fmt.Sprintf("(%s)", strings.ToLower(o.raw.Tags[0]))
	}
	return "(opening)"
}
func (o *sexpOpening) Type() *zygo.RegisteredType { return nil }

// sexpStairPart wraps one flight or winding so it can be consumed by `stair`.
type sexpStairPart struct {
	outline orb.Ring
	winding bool
}

func (p *sexpStairPart) SexpString(ps *zygo.PrintState) string {
	if p.winding {
		return "(winding)"
	}
	return "(flight)"
}
func (p *sexpStairPart) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value, treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toEntityID extracts an entity id from a Sexp.
func toEntityID(s zygo.Sexp) (plan.EntityID, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return plan.EntityID(v.Val), nil
	}
	return plan.NoEntity, fmt.Errorf("expected entity id, got %T (%s)", s, s.SexpString(nil))
}

// ringArg extracts the single ring argument of builtins like door and
// railing.
func ringArg(name string, args []zygo.Sexp) (orb.Ring, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s requires a ring argument", name)
	}
	r, ok := args[0].(*sexpRing)
	if !ok {
		return nil, fmt.Errorf("%s: expected ring, got %T (%s)", name, args[0], args[0].SexpString(nil))
	}
	return r.ring, nil
}

// ---------------------------------------------------------------------------
// Builder state
// ---------------------------------------------------------------------------

// builder accumulates raw entities during evaluation and resolves them
// into an analyzed floor on first query. Once the floor is built the
// arena is frozen, so later declarations are errors.
type builder struct {
	raw   plan.RawFloor
	floor *plan.Floor
	diags []EvalError
}

// declare guards entity-declaring builtins against a frozen arena.
func (b *builder) declare() error {
	if b.floor != nil {
		return fmt.Errorf("floor already analyzed; declare entities before queries")
	}
	return nil
}

// ensureAnalyzed builds and analyzes the declared floor exactly once.
// Per-entity build failures become diagnostics, not fatal errors.
func (b *builder) ensureAnalyzed() (*plan.Floor, error) {
	if b.floor != nil {
		return b.floor, nil
	}
	f, buildErrs := plan.Build(b.raw)
	for _, be := range buildErrs {
		b.diags = append(b.diags, EvalError{Message: be.Error()})
	}
	if err := f.Analyze(); err != nil {
		return nil, err
	}
	b.floor = f
	return f, nil
}

// labelList converts entity ids to a Lisp list of entity labels.
func labelList(f *plan.Floor, ids []plan.EntityID) zygo.Sexp {
	items := make([]zygo.Sexp, 0, len(ids))
	for _, id := range ids {
		if e := f.Entity(id); e != nil {
			items = append(items, &zygo.SexpStr{S: e.Label()})
		}
	}
	return zygo.MakeList(items)
}

// describeEntity renders a one-line summary of an entity.
func describeEntity(f *plan.Floor, id plan.EntityID) (string, error) {
	e := f.Entity(id)
	if e == nil {
		return "", fmt.Errorf("no entity %d", id)
	}

	switch v := e.(type) {
	case *plan.Room:
		return fmt.Sprintf("%s: area %.2f, %d adjacent, %d doors, %d windows, %d fixtures",
			v.Label(), v.Polygon().Area(), len(v.Adjacencies().IDs()),
			len(v.Doors()), len(v.Windows()), len(v.Fixtures())), nil

	case *plan.Wall:
		side := "interior"
		if v.IsExterior() {
			side = "exterior"
		}
		return fmt.Sprintf("%s (%s): %d openings, %d adjacent",
			v.Label(), side, len(v.Openings()), len(v.Adjacencies().IDs())), nil

	case *plan.Opening:
		var names []string
		for _, roomID := range v.Rooms() {
			if r, ok := f.Room(roomID); ok {
				names = append(names, r.Label())
			}
		}
		if len(names) == 0 {
			return v.Label() + ": unresolved", nil
		}
		return fmt.Sprintf("%s: %s", v.Label(), strings.Join(names, ", ")), nil

	case *plan.Fixture:
		var names []string
		for _, roomID := range v.Rooms() {
			if r, ok := f.Room(roomID); ok {
				names = append(names, r.Label())
			}
		}
		if len(names) == 0 {
			return v.Label() + ": in no room", nil
		}
		return fmt.Sprintf("%s: in %s", v.Label(), strings.Join(names, ", ")), nil

	default:
		return fmt.Sprintf("%s: %d adjacent", e.Label(), len(e.Adjacencies().IDs())), nil
	}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the console builtins into a zygomys
// environment. Declaration builtins populate the builder's raw floor;
// query builtins build and analyze it on first use.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable
// string literals.
func registerBuiltins(env *zygo.Zlisp, b *builder) {

	// -----------------------------------------------------------------------
	// (ring 0 0 10 0 10 10 0 10)
	// -----------------------------------------------------------------------
	env.AddFunction("ring", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args)%2 != 0 {
			return zygo.SexpNull, fmt.Errorf("ring requires an even number of coordinates, got %d", len(args))
		}
		r := make(orb.Ring, 0, len(args)/2)
		for i := 0; i+1 < len(args); i += 2 {
			x, err := toFloat64(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("ring: coordinate %d: %w", i, err)
			}
			y, err := toFloat64(args[i+1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("ring: coordinate %d: %w", i+1, err)
			}
			r = append(r, orb.Point{x, y})
		}
		return &sexpRing{ring: r}, nil
	})

	// -----------------------------------------------------------------------
	// (room (ring ...) "Kitchen")
	// -----------------------------------------------------------------------
	env.AddFunction("room", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := b.declare(); err != nil {
			return zygo.SexpNull, fmt.Errorf("room: %w", err)
		}
		var re plan.RawEntity
		for i, arg := range args {
			switch v := arg.(type) {
			case *sexpRing:
				re.Outline = v.ring
			case *zygo.SexpStr:
				re.Tags = append(re.Tags, v.S)
			default:
				return zygo.SexpNull, fmt.Errorf("room: argument %d: expected ring or tag, got %T", i, arg)
			}
		}
		b.raw.Rooms = append(b.raw.Rooms, re)
		return &zygo.SexpInt{Val: int64(len(b.raw.Rooms) - 1)}, nil
	})

	// -----------------------------------------------------------------------
	// (wall (ring ...) (door (ring ...)) (window (ring ...)) :exterior true)
	// -----------------------------------------------------------------------
	env.AddFunction("wall", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := b.declare(); err != nil {
			return zygo.SexpNull, fmt.Errorf("wall: %w", err)
		}
		pa := parseArgs(args)
		var w plan.RawWall
		for i, arg := range pa.positional {
			switch v := arg.(type) {
			case *sexpRing:
				w.Outline = v.ring
			case *sexpOpening:
				w.Openings = append(w.Openings, v.raw)
			case *zygo.SexpStr:
				w.Tags = append(w.Tags, v.S)
			default:
				return zygo.SexpNull, fmt.Errorf("wall: argument %d: expected ring, opening, or tag, got %T", i, arg)
			}
		}
		if v, ok := pa.kw["exterior"]; ok {
			ext, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("wall: exterior: %w", err)
			}
			w.Exterior = ext
		}
		b.raw.Walls = append(b.raw.Walls, w)
		return &zygo.SexpInt{Val: int64(len(b.raw.Walls) - 1)}, nil
	})

	// -----------------------------------------------------------------------
	// (door (ring ...)) and (window (ring ...))
	// -----------------------------------------------------------------------
	env.AddFunction("door", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, err := ringArg(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpOpening{raw: plan.RawOpening{Tags: []string{"Door"}, Outline: r}}, nil
	})

	env.AddFunction("window", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, err := ringArg(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpOpening{raw: plan.RawOpening{Tags: []string{"Window"}, Outline: r}}, nil
	})

	// -----------------------------------------------------------------------
	// (railing (ring ...))
	// -----------------------------------------------------------------------
	env.AddFunction("railing", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := b.declare(); err != nil {
			return zygo.SexpNull, fmt.Errorf("railing: %w", err)
		}
		r, err := ringArg(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		b.raw.Railings = append(b.raw.Railings, plan.RawEntity{Outline: r})
		return &zygo.SexpInt{Val: int64(len(b.raw.Railings) - 1)}, nil
	})

	// -----------------------------------------------------------------------
	// (fixture (ring ...) "Sink")
	// -----------------------------------------------------------------------
	env.AddFunction("fixture", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := b.declare(); err != nil {
			return zygo.SexpNull, fmt.Errorf("fixture: %w", err)
		}
		var fx plan.RawFixture
		for i, arg := range args {
			switch v := arg.(type) {
			case *sexpRing:
				fx.Groups = append(fx.Groups, plan.RawGroup{Outline: v.ring})
			case *zygo.SexpStr:
				fx.Tags = append(fx.Tags, v.S)
			default:
				return zygo.SexpNull, fmt.Errorf("fixture: argument %d: expected ring or tag, got %T", i, arg)
			}
		}
		b.raw.Fixtures = append(b.raw.Fixtures, fx)
		return &zygo.SexpInt{Val: int64(len(b.raw.Fixtures) - 1)}, nil
	})

	// -----------------------------------------------------------------------
	// (stair (flight (ring ...)) (winding (ring ...)))
	// -----------------------------------------------------------------------
	env.AddFunction("flight", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, err := ringArg(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpStairPart{outline: r}, nil
	})

	env.AddFunction("winding", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, err := ringArg(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpStairPart{outline: r, winding: true}, nil
	})

	env.AddFunction("stair", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := b.declare(); err != nil {
			return zygo.SexpNull, fmt.Errorf("stair: %w", err)
		}
		var st plan.RawStair
		for i, arg := range args {
			part, ok := arg.(*sexpStairPart)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("stair: argument %d: expected flight or winding, got %T", i, arg)
			}
			re := plan.RawEntity{Outline: part.outline}
			if part.winding {
				st.Windings = append(st.Windings, re)
			} else {
				st.Flights = append(st.Flights, re)
			}
		}
		b.raw.Stairs = append(b.raw.Stairs, st)
		return &zygo.SexpInt{Val: int64(len(b.raw.Stairs) - 1)}, nil
	})

	// -----------------------------------------------------------------------
	// (analyze) -> entity count
	// -----------------------------------------------------------------------
	env.AddFunction("analyze", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := b.ensureAnalyzed()
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpInt{Val: int64(f.EntityCount())}, nil
	})

	// -----------------------------------------------------------------------
	// (rooms) -> list of room labels
	// -----------------------------------------------------------------------
	env.AddFunction("rooms", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := b.ensureAnalyzed()
		if err != nil {
			return zygo.SexpNull, err
		}
		return labelList(f, f.Rooms()), nil
	})

	// -----------------------------------------------------------------------
	// (adjacent id) -> labels of rooms adjacent to the entity
	// -----------------------------------------------------------------------
	env.AddFunction("adjacent", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("adjacent requires an entity id")
		}
		id, err := toEntityID(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("adjacent: %w", err)
		}
		f, err := b.ensureAnalyzed()
		if err != nil {
			return zygo.SexpNull, err
		}
		return labelList(f, f.AdjacentRooms(id)), nil
	})

	// -----------------------------------------------------------------------
	// (connected id) -> labels of rooms reachable through the room's doors
	// -----------------------------------------------------------------------
	env.AddFunction("connected", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("connected requires a room id")
		}
		id, err := toEntityID(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("connected: %w", err)
		}
		f, err := b.ensureAnalyzed()
		if err != nil {
			return zygo.SexpNull, err
		}
		return labelList(f, f.ConnectedRooms(id)), nil
	})

	// -----------------------------------------------------------------------
	// (describe id) -> one-line entity summary
	// -----------------------------------------------------------------------
	env.AddFunction("describe", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("describe requires an entity id")
		}
		id, err := toEntityID(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("describe: %w", err)
		}
		f, err := b.ensureAnalyzed()
		if err != nil {
			return zygo.SexpNull, err
		}
		s, err := describeEntity(f, id)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("describe: %w", err)
		}
		return &zygo.SexpStr{S: s}, nil
	})

	// -----------------------------------------------------------------------
	// (floor-area) -> combined room and wall area
	//
	// Note: registered as "floor_area" because zygomys does not support
	// hyphens in identifiers. The preprocessor converts floor-area to
	// floor_area in the source.
	// -----------------------------------------------------------------------
	env.AddFunction("floor_area", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := b.ensureAnalyzed()
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpFloat{Val: f.Area()}, nil
	})
}
