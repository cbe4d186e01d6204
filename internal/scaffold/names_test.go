package scaffold

import "testing"

func TestNameTransformations(t *testing.T) {
	tests := []struct {
		input  string
		studly string
		camel  string
		snake  string
		kebab  string
	}{
		{"widget", "Widget", "widget", "widget", "widget"},
		{"blog_post", "BlogPost", "blogPost", "blog_post", "blog-post"},
		{"blogPost", "BlogPost", "blogPost", "blog_post", "blog-post"},
		{"BlogPost", "BlogPost", "blogPost", "blog_post", "blog-post"},
		{"blog-post", "BlogPost", "blogPost", "blog_post", "blog-post"},
		{"blog post", "BlogPost", "blogPost", "blog_post", "blog-post"},
		{"HTTPRequest", "HTTPRequest", "hTTPRequest", "http_request", "http-request"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToStudlyCase(tt.input); got != tt.studly {
				t.Errorf("ToStudlyCase(%q) = %q, want %q", tt.input, got, tt.studly)
			}
			if got := ToCamelCase(tt.input); got != tt.camel {
				t.Errorf("ToCamelCase(%q) = %q, want %q", tt.input, got, tt.camel)
			}
			if got := ToSnakeCase(tt.input); got != tt.snake {
				t.Errorf("ToSnakeCase(%q) = %q, want %q", tt.input, got, tt.snake)
			}
			if got := ToKebabCase(tt.input); got != tt.kebab {
				t.Errorf("ToKebabCase(%q) = %q, want %q", tt.input, got, tt.kebab)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"widget", "widgets"},
		{"box", "boxes"},
		{"class", "classes"},
		{"church", "churches"},
		{"dish", "dishes"},
		{"party", "parties"},
		{"day", "days"},
		{"key", "keys"},
		{"Category", "Categories"},
		{"BlogPost", "BlogPosts"},
		{"blog_post", "blog_posts"},
		{"person", "people"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Pluralize(tt.input); got != tt.want {
				t.Errorf("Pluralize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewNameVariants(t *testing.T) {
	for _, input := range []string{"blog_post", "blogPost", "BlogPost", "blog-post"} {
		t.Run(input, func(t *testing.T) {
			n := NewNameVariants(input)
			want := NameVariants{
				Studly:      "BlogPost",
				Plural:      "BlogPosts",
				Snake:       "blog_post",
				Kebab:       "blog-post",
				Camel:       "blogPost",
				PluralCamel: "blogPosts",
				Table:       "blog_posts",
			}
			if n != want {
				t.Errorf("NewNameVariants(%q) = %+v, want %+v", input, n, want)
			}
		})
	}
}

func TestTableAndForeignKey(t *testing.T) {
	if got := TableName("Category"); got != "categories" {
		t.Errorf("TableName(Category) = %q", got)
	}
	if got := ForeignKey("Category"); got != "category_id" {
		t.Errorf("ForeignKey(Category) = %q", got)
	}
	if got := ForeignKey("BlogPost"); got != "blog_post_id" {
		t.Errorf("ForeignKey(BlogPost) = %q", got)
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"name":          "Name",
		"first_name":    "First Name",
		"published_at":  "Published At",
		"email_address": "Email Address",
	}
	for input, want := range tests {
		if got := Label(input); got != want {
			t.Errorf("Label(%q) = %q, want %q", input, got, want)
		}
	}
}
