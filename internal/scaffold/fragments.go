package scaffold

import (
	"fmt"
	"strings"
)

// Audit columns added to every entity.
var auditColumns = []string{"created_by", "updated_by"}

// Timestamp casts appended to every cast map.
var defaultCasts = []Cast{
	{Field: "created_at", Type: "datetime"},
	{Field: "updated_at", Type: "datetime"},
	{Field: "deleted_at", Type: "datetime"},
}

// castable lists the declared types that produce a cast entry.
var castable = map[FieldType]bool{
	TypeJSON:     true,
	TypeArray:    true,
	TypeBoolean:  true,
	TypeDate:     true,
	TypeDatetime: true,
	TypeDecimal:  true,
}

// Cast is one entry of the model cast map.
type Cast struct {
	Field string
	Type  string
}

// FillableNames returns the declared field names, the audit columns and one
// foreign key per belongsTo target, without duplicates.
func FillableNames(spec *EntitySpec) []string {
	var names []string
	seen := make(map[string]bool)

	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}

	for _, n := range spec.Fields.Names() {
		add(n)
	}
	for _, n := range auditColumns {
		add(n)
	}
	for _, related := range spec.Relations.Targets(BelongsTo) {
		add(ForeignKey(related))
	}

	return names
}

// Casts returns one entry per castable field followed by the timestamp casts.
// Decimals are cast with two decimal places.
func Casts(spec *EntitySpec) []Cast {
	var casts []Cast
	for _, f := range spec.Fields.Fields() {
		if !castable[f.Type] {
			continue
		}
		t := string(f.Type)
		if f.Type == TypeDecimal {
			t = "decimal:2"
		}
		casts = append(casts, Cast{Field: f.Name, Type: t})
	}
	return append(casts, defaultCasts...)
}

// ColumnDefinition maps a field to its Blueprint column call, without the
// leading "$table->". Unknown types fall back to a string column.
func ColumnDefinition(f Field) string {
	switch f.Type {
	case TypeText:
		return fmt.Sprintf("text('%s')", f.Name)
	case TypeInteger:
		return fmt.Sprintf("integer('%s')", f.Name)
	case TypeDecimal:
		return fmt.Sprintf("decimal('%s', 8, 2)", f.Name)
	case TypeBoolean:
		return fmt.Sprintf("boolean('%s')", f.Name)
	case TypeDate:
		return fmt.Sprintf("date('%s')", f.Name)
	case TypeDatetime:
		return fmt.Sprintf("datetime('%s')", f.Name)
	case TypeTimestamp:
		return fmt.Sprintf("timestamp('%s')", f.Name)
	case TypeJSON:
		return fmt.Sprintf("json('%s')", f.Name)
	default:
		// string, email and anything unrecognised
		return fmt.Sprintf("string('%s')", f.Name)
	}
}

// RelationMethodName returns the accessor name for a relation.
// Unknown kinds fall back to the camelCase related name.
func RelationMethodName(kind RelationKind, related string) string {
	switch kind {
	case HasMany, BelongsToMany, MorphMany:
		return ToCamelCase(Pluralize(ToStudlyCase(related)))
	case MorphTo:
		return "parent"
	default:
		// hasOne, belongsTo, morphOne and unknown kinds
		return ToCamelCase(related)
	}
}

// RelationMethod renders the model accessor for a relation. Unknown kinds
// render nothing.
func RelationMethod(kind RelationKind, related, modelsNamespace string) string {
	if !kind.Known() {
		return ""
	}

	name := RelationMethodName(kind, related)
	var call string
	if kind == MorphTo {
		call = "$this->morphTo()"
	} else {
		call = fmt.Sprintf(`$this->%s(\%s\%s::class)`, kind, modelsNamespace, ToStudlyCase(related))
	}

	return fmt.Sprintf("\n\n    public function %s()\n    {\n        return %s;\n    }", name, call)
}

// ValidationRule builds the request rule for a field.
func ValidationRule(f Field) string {
	rule := "required"
	switch f.Type {
	case TypeString:
		rule += "|string|max:255"
	case TypeText:
		rule += "|string"
	case TypeEmail:
		rule += "|email"
	case TypeInteger:
		rule += "|integer"
	}
	return rule
}

// RelationRules returns one exists rule per belongsTo foreign key.
func RelationRules(spec *EntitySpec) []string {
	var rules []string
	for _, related := range spec.Relations.Targets(BelongsTo) {
		rules = append(rules, fmt.Sprintf("'%s' => 'required|exists:%s,id'", ForeignKey(related), TableName(related)))
	}
	return rules
}

// fragments renders the placeholder values derived from an EntitySpec.
type fragments struct {
	spec            *EntitySpec
	modelsNamespace string
}

func (f fragments) fillable() string {
	var b strings.Builder
	for _, n := range FillableNames(f.spec) {
		fmt.Fprintf(&b, "\n        '%s',", n)
	}
	return b.String()
}

func (f fragments) casts() string {
	var b strings.Builder
	for _, c := range Casts(f.spec) {
		fmt.Fprintf(&b, "\n        '%s' => '%s',", c.Field, c.Type)
	}
	return b.String()
}

// knownRelations skips kinds that render no accessor.
func (f fragments) knownRelations() []Relation {
	var out []Relation
	for _, r := range f.spec.Relations.All() {
		if r.Kind.Known() {
			out = append(out, r)
		}
	}
	return out
}

func (f fragments) relationWith() string {
	var b strings.Builder
	b.WriteString("\n        'creator',\n        'updater',")
	for _, r := range f.knownRelations() {
		fmt.Fprintf(&b, "\n        '%s',", RelationMethodName(r.Kind, r.Related))
	}
	return b.String()
}

func (f fragments) relations() string {
	rels := f.knownRelations()
	if len(rels) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n    // Relationships")
	for _, r := range rels {
		b.WriteString(RelationMethod(r.Kind, r.Related, f.modelsNamespace))
	}
	return b.String()
}

func (f fragments) migrationFields() string {
	var b strings.Builder
	for _, field := range f.spec.Fields.Fields() {
		fmt.Fprintf(&b, "            $table->%s;\n", ColumnDefinition(field))
	}
	return b.String()
}

func (f fragments) migrationForeignKeys() string {
	var b strings.Builder
	for _, related := range f.spec.Relations.Targets(BelongsTo) {
		fmt.Fprintf(&b, "            $table->foreignId('%s')->constrained('%s')->onDelete('cascade');\n",
			ForeignKey(related), TableName(related))
	}
	return b.String()
}

func (f fragments) repositoryRelations() string {
	rels := f.knownRelations()
	if len(rels) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n    // Relationship methods")
	for _, r := range rels {
		accessor := RelationMethodName(r.Kind, r.Related)
		fmt.Fprintf(&b, "\n\n    public function with%s()\n    {\n        return $this->model->with('%s');\n    }",
			ToStudlyCase(accessor), accessor)
	}
	return b.String()
}

func (f fragments) serviceRelations() string {
	n := f.spec.Names
	var methods []string

	for _, r := range f.knownRelations() {
		accessor := RelationMethodName(r.Kind, r.Related)
		var signature string
		switch r.Kind {
		case HasMany:
			signature = fmt.Sprintf("get%sBy%s", ToStudlyCase(accessor), n.Studly)
		case BelongsTo:
			signature = fmt.Sprintf("get%sFor%s", ToStudlyCase(r.Related), n.Studly)
		default:
			continue
		}
		methods = append(methods, fmt.Sprintf(
			"\n\n    public function %s($id)\n    {\n        $%s = $this->repository->find($id);\n        return $%s->%s;\n    }",
			signature, n.Camel, n.Camel, accessor))
	}

	if len(methods) == 0 {
		return ""
	}
	return "\n\n    // Relationship methods" + strings.Join(methods, "")
}

// relatedCollections loads every belongsTo collection a form needs and
// returns the load statements and the compact() variable names.
func (f fragments) relatedCollections() (loads []string, vars []string) {
	for _, related := range f.spec.Relations.Targets(BelongsTo) {
		v := ToCamelCase(Pluralize(ToStudlyCase(related)))
		loads = append(loads, fmt.Sprintf(`$%s = \%s\%s::all();`, v, f.modelsNamespace, ToStudlyCase(related)))
		vars = append(vars, "'"+v+"'")
	}
	return loads, vars
}

func (f fragments) controllerRelations() string {
	view := f.spec.Names.Kebab + ".create"
	loads, vars := f.relatedCollections()
	if len(loads) == 0 {
		return fmt.Sprintf("return view('%s');", view)
	}

	lines := append(loads, fmt.Sprintf("return view('%s', compact(%s));", view, strings.Join(vars, ", ")))
	return strings.Join(lines, "\n        ")
}

func (f fragments) editControllerRelations() string {
	view := f.spec.Names.Kebab + ".edit"
	loads, vars := f.relatedCollections()
	vars = append([]string{"'" + f.spec.Names.Camel + "'"}, vars...)

	lines := append(loads, fmt.Sprintf("return view('%s', compact(%s));", view, strings.Join(vars, ", ")))
	return strings.Join(lines, "\n        ")
}

func (f fragments) validationRules() string {
	var b strings.Builder
	for _, field := range f.spec.Fields.Fields() {
		fmt.Fprintf(&b, "\n            '%s' => '%s',", field.Name, ValidationRule(field))
	}
	return b.String()
}

func (f fragments) relationValidationRules() string {
	var b strings.Builder
	for _, rule := range RelationRules(f.spec) {
		fmt.Fprintf(&b, "\n            %s,", rule)
	}
	return b.String()
}

// inputType picks the HTML input for a field type.
func inputType(t FieldType) string {
	switch t {
	case TypeEmail:
		return "email"
	case TypeInteger:
		return "number"
	case TypeDecimal:
		return `number" step="0.01`
	case TypeDate:
		return "date"
	case TypeDatetime, TypeTimestamp:
		return "datetime-local"
	default:
		return "text"
	}
}

func (f fragments) formFields() string {
	v := f.spec.Names.Camel
	var b strings.Builder

	for _, field := range f.spec.Fields.Fields() {
		label := Label(field.Name)
		value := fmt.Sprintf("old('%s', $%s->%s ?? '')", field.Name, v, field.Name)

		b.WriteString("\n            <div class=\"form-group\">")
		fmt.Fprintf(&b, "\n                <label for=\"%s\">%s:</label>", field.Name, label)
		switch field.Type {
		case TypeText, TypeJSON:
			fmt.Fprintf(&b, "\n                <textarea name=\"%s\" id=\"%s\" class=\"form-control\" rows=\"4\" required>{{ %s }}</textarea>",
				field.Name, field.Name, value)
		case TypeBoolean:
			fmt.Fprintf(&b, "\n                <input type=\"hidden\" name=\"%s\" value=\"0\">", field.Name)
			fmt.Fprintf(&b, "\n                <input type=\"checkbox\" name=\"%s\" id=\"%s\" value=\"1\" {{ %s ? 'checked' : '' }}>",
				field.Name, field.Name, value)
		default:
			fmt.Fprintf(&b, "\n                <input type=\"%s\" name=\"%s\" id=\"%s\" class=\"form-control\" value=\"{{ %s }}\" required>",
				inputType(field.Type), field.Name, field.Name, value)
		}
		fmt.Fprintf(&b, "\n                @error('%s')\n                    <span class=\"text-danger\">{{ $message }}</span>\n                @enderror", field.Name)
		b.WriteString("\n            </div>")
	}

	return b.String()
}

func (f fragments) relationFields() string {
	v := f.spec.Names.Camel
	var b strings.Builder

	for _, related := range f.spec.Relations.Targets(BelongsTo) {
		fk := ForeignKey(related)
		label := Label(ToSnakeCase(related))
		collection := ToCamelCase(Pluralize(ToStudlyCase(related)))

		b.WriteString("\n            <div class=\"form-group\">")
		fmt.Fprintf(&b, "\n                <label for=\"%s\">%s <span class=\"text-danger\">*</span></label>", fk, label)
		fmt.Fprintf(&b, "\n                <select name=\"%s\" id=\"%s\" class=\"form-control\" required>", fk, fk)
		fmt.Fprintf(&b, "\n                    <option value=\"\">Select %s</option>", label)
		fmt.Fprintf(&b, "\n                    @foreach($%s as $item)", collection)
		fmt.Fprintf(&b, "\n                        <option value=\"{{ $item->id }}\" {{ old('%s', $%s->%s ?? '') == $item->id ? 'selected' : '' }}>", fk, v, fk)
		b.WriteString("\n                            {{ $item->name ?? $item->title ?? $item->id }}")
		b.WriteString("\n                        </option>")
		b.WriteString("\n                    @endforeach")
		b.WriteString("\n                </select>")
		fmt.Fprintf(&b, "\n                @error('%s')\n                    <span class=\"text-danger\">{{ $message }}</span>\n                @enderror", fk)
		b.WriteString("\n            </div>")
	}

	return b.String()
}

func (f fragments) tableHeaders() string {
	var b strings.Builder
	for _, field := range f.spec.Fields.Fields() {
		fmt.Fprintf(&b, "\n                    <th>%s</th>", Label(field.Name))
	}
	return b.String()
}

func (f fragments) tableRows() string {
	v := f.spec.Names.Camel
	var b strings.Builder
	for _, field := range f.spec.Fields.Fields() {
		fmt.Fprintf(&b, "\n                        <td>{{ $%s->%s }}</td>", v, field.Name)
	}
	return b.String()
}

func (f fragments) showFields() string {
	v := f.spec.Names.Camel
	var b strings.Builder
	for _, field := range f.spec.Fields.Fields() {
		fmt.Fprintf(&b, "\n            <p><strong>%s:</strong> {{ $%s->%s }}</p>", Label(field.Name), v, field.Name)
	}
	return b.String()
}
