package scaffold

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NewNameVariants derives every casing/plural form from the given model
// name. Any input casing is accepted: "blog_post", "blogPost" and
// "BlogPost" resolve identically.
func NewNameVariants(name string) NameVariants {
	studly := ToStudlyCase(name)
	plural := Pluralize(studly)

	return NameVariants{
		Studly:      studly,
		Plural:      plural,
		Snake:       ToSnakeCase(studly),
		Kebab:       ToKebabCase(studly),
		Camel:       ToCamelCase(studly),
		PluralCamel: ToCamelCase(plural),
		Table:       TableName(studly),
	}
}

// ToStudlyCase converts a string to StudlyCase, keeping the inner casing of
// each word ("HTTPRequest" stays as is).
func ToStudlyCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, "")
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	studly := ToStudlyCase(s)
	if studly == "" {
		return studly
	}
	r := []rune(studly)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	return joinLower(splitWords(s), "_")
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	return joinLower(splitWords(s), "-")
}

// Pluralize returns the plural of the last word of s, preserving the rest.
func Pluralize(s string) string {
	if s == "" {
		return s
	}
	return inflection.Plural(s)
}

// TableName is the plural snake_case table for an entity: "BlogPost" -> "blog_posts".
func TableName(entity string) string {
	return Pluralize(ToSnakeCase(entity))
}

// ForeignKey is the belongsTo column for an entity: "BlogPost" -> "blog_post_id".
func ForeignKey(entity string) string {
	return ToSnakeCase(entity) + "_id"
}

// Label turns a field name into display text: "first_name" -> "First Name".
func Label(field string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(field, "_", " "))
}

func joinLower(words []string, sep string) string {
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, sep)
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// splitWords splits a string into words (handles camelCase, PascalCase,
// snake_case, kebab-case, spaces and acronyms such as "HTTPRequest").
func splitWords(s string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if i > 0 && unicode.IsUpper(r) && len(current) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// fooBar -> foo|Bar, HTTPRequest -> HTTP|Request
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}

		current = append(current, r)
	}
	flush()

	return words
}
