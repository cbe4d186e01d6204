package scaffold

import (
	"fmt"
	"strings"
)

// DefaultFields is used when --fields is absent or yields no valid entry.
const DefaultFields = "name:string,email:string,description:text"

// ParseFields parses the --fields DSL.
// Format: "title:string,views:integer"
// Entries that do not split into two non-empty tokens are dropped and
// reported; blank entries (e.g. a trailing comma) are ignored.
func ParseFields(fieldsStr string) (*FieldSpec, []Diagnostic) {
	spec := NewFieldSpec()
	var diags []Diagnostic

	for i, raw := range strings.Split(fieldsStr, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		name, typ, err := splitPair(raw)
		if err != nil {
			diags = append(diags, Diagnostic{Option: "fields", Index: i, Raw: raw, Reason: err.Error()})
			continue
		}

		spec.Set(name, FieldType(typ))
	}

	return spec, diags
}

// ParseRelations parses the --relations DSL.
// Format: "hasMany:Comment,belongsTo:User"
// Unknown kinds are kept; they simply render no relationship code.
func ParseRelations(relationsStr string) (*RelationSpec, []Diagnostic) {
	spec := NewRelationSpec()
	var diags []Diagnostic

	if strings.TrimSpace(relationsStr) == "" {
		return spec, nil
	}

	for i, raw := range strings.Split(relationsStr, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		kind, related, err := splitPair(raw)
		if err != nil {
			diags = append(diags, Diagnostic{Option: "relations", Index: i, Raw: raw, Reason: err.Error()})
			continue
		}

		spec.Add(RelationKind(kind), related)
	}

	return spec, diags
}

// splitPair splits "a:b" into two trimmed, non-empty tokens.
func splitPair(entry string) (string, string, error) {
	parts := strings.Split(entry, ":")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected 'key:value', found %d token(s)", len(parts))
	}

	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmt.Errorf("empty key")
	}
	if value == "" {
		return "", "", fmt.Errorf("empty value")
	}

	return key, value, nil
}

// Parse parses both declarations. When the field list is empty or entirely
// malformed the DefaultFields sample is used instead; defaulted reports that.
func Parse(fieldsStr, relationsStr string) (fields *FieldSpec, relations *RelationSpec, diags []Diagnostic, defaulted bool) {
	fields, diags = ParseFields(fieldsStr)
	if fields.Len() == 0 {
		fields, _ = ParseFields(DefaultFields)
		defaulted = true
	}

	relations, relDiags := ParseRelations(relationsStr)
	return fields, relations, append(diags, relDiags...), defaulted
}

// Resolve builds an EntitySpec from the raw command inputs.
func Resolve(name, fieldsStr, relationsStr string) (*EntitySpec, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("model name is required")
	}

	names := NewNameVariants(name)
	if names.Studly == "" {
		return nil, fmt.Errorf("model name %q has no usable characters", name)
	}

	fields, relations, diags, defaulted := Parse(fieldsStr, relationsStr)

	return &EntitySpec{
		Names:           names,
		Fields:          fields,
		Relations:       relations,
		Diagnostics:     diags,
		DefaultedFields: defaulted,
	}, nil
}
