// Package scaffold resolves a model declaration into name variants, fields and
// relations, and binds them into the stub templates of a Laravel CRUD stack.
package scaffold

import "fmt"

// FieldType is a declared column type. Unknown values are kept as declared
// and render as a string column.
type FieldType string

const (
	TypeString    FieldType = "string"
	TypeText      FieldType = "text"
	TypeInteger   FieldType = "integer"
	TypeDecimal   FieldType = "decimal"
	TypeBoolean   FieldType = "boolean"
	TypeDate      FieldType = "date"
	TypeDatetime  FieldType = "datetime"
	TypeTimestamp FieldType = "timestamp"
	TypeJSON      FieldType = "json"
	TypeEmail     FieldType = "email"

	// TypeArray is not a column type but is honoured by the cast map.
	TypeArray FieldType = "array"
)

// Known reports whether t is one of the column types with a dedicated rendering.
func (t FieldType) Known() bool {
	switch t {
	case TypeString, TypeText, TypeInteger, TypeDecimal, TypeBoolean,
		TypeDate, TypeDatetime, TypeTimestamp, TypeJSON, TypeEmail:
		return true
	}
	return false
}

// Field is a single declared attribute.
type Field struct {
	Name string    // as declared: "first_name"
	Type FieldType // as declared: "string"
}

// FieldSpec is an insertion-ordered set of fields keyed by name.
// Redeclaring a name replaces its type but keeps its first position.
type FieldSpec struct {
	fields []Field
	index  map[string]int
}

// NewFieldSpec creates an empty FieldSpec.
func NewFieldSpec() *FieldSpec {
	return &FieldSpec{index: make(map[string]int)}
}

// Set adds a field or replaces the type of an existing one.
func (s *FieldSpec) Set(name string, t FieldType) {
	if i, ok := s.index[name]; ok {
		s.fields[i].Type = t
		return
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, Field{Name: name, Type: t})
}

// Fields returns the fields in declaration order.
func (s *FieldSpec) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the field names in declaration order.
func (s *FieldSpec) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Has reports whether a field with the given name was declared.
func (s *FieldSpec) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of distinct fields.
func (s *FieldSpec) Len() int {
	return len(s.fields)
}

// RelationKind is an Eloquent relationship method.
type RelationKind string

const (
	HasMany       RelationKind = "hasMany"
	HasOne        RelationKind = "hasOne"
	BelongsTo     RelationKind = "belongsTo"
	BelongsToMany RelationKind = "belongsToMany"
	MorphMany     RelationKind = "morphMany"
	MorphOne      RelationKind = "morphOne"
	MorphTo       RelationKind = "morphTo"
)

// Known reports whether k is a supported relationship kind.
func (k RelationKind) Known() bool {
	switch k {
	case HasMany, HasOne, BelongsTo, BelongsToMany, MorphMany, MorphOne, MorphTo:
		return true
	}
	return false
}

// Relation is one (kind, related entity) pair.
type Relation struct {
	Kind    RelationKind
	Related string // as declared: "Category"
}

// RelationSpec groups related entity names by kind. Kinds keep the order of
// their first appearance and targets keep declaration order.
type RelationSpec struct {
	kinds   []RelationKind
	targets map[RelationKind][]string
}

// NewRelationSpec creates an empty RelationSpec.
func NewRelationSpec() *RelationSpec {
	return &RelationSpec{targets: make(map[RelationKind][]string)}
}

// Add records a relation. Unknown kinds are stored as-is.
func (r *RelationSpec) Add(kind RelationKind, related string) {
	if _, ok := r.targets[kind]; !ok {
		r.kinds = append(r.kinds, kind)
	}
	r.targets[kind] = append(r.targets[kind], related)
}

// Kinds returns the declared kinds in first-appearance order.
func (r *RelationSpec) Kinds() []RelationKind {
	out := make([]RelationKind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Targets returns the related names declared for kind.
func (r *RelationSpec) Targets(kind RelationKind) []string {
	out := make([]string, len(r.targets[kind]))
	copy(out, r.targets[kind])
	return out
}

// All returns every pair, grouped by kind.
func (r *RelationSpec) All() []Relation {
	var out []Relation
	for _, k := range r.kinds {
		for _, related := range r.targets[k] {
			out = append(out, Relation{Kind: k, Related: related})
		}
	}
	return out
}

// Empty reports whether no relation was declared.
func (r *RelationSpec) Empty() bool {
	return len(r.kinds) == 0
}

// NameVariants are the casing and plural forms of the model name.
type NameVariants struct {
	Studly      string // "BlogPost"
	Plural      string // "BlogPosts"
	Snake       string // "blog_post"
	Kebab       string // "blog-post"
	Camel       string // "blogPost"
	PluralCamel string // "blogPosts"
	Table       string // "blog_posts"
}

// Diagnostic describes a declaration entry that was dropped.
type Diagnostic struct {
	Option string // "fields" or "relations"
	Index  int    // zero-based position in the comma-separated list
	Raw    string
	Reason string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("--%s entry %d %q: %s", d.Option, d.Index, d.Raw, d.Reason)
}

// EntitySpec is the resolved declaration handed to the generator.
type EntitySpec struct {
	Names           NameVariants
	Fields          *FieldSpec
	Relations       *RelationSpec
	Diagnostics     []Diagnostic
	DefaultedFields bool // true when the built-in sample fields were used
}

// GeneratedFile is one artifact ready to be emitted.
type GeneratedFile struct {
	Kind      string    // template id: "model", "views/index", ...
	Path      string    // destination, relative to the project root unless absolute
	Content   string    // rendered text
	Operation Operation // how the content reaches disk
}

// Operation is the emission policy of a GeneratedFile.
type Operation string

const (
	OpCreate     Operation = "create"      // write, overwriting
	OpCreateOnce Operation = "create_once" // write only when absent
	OpAppend     Operation = "append"      // append to an existing file, skip when absent
)
