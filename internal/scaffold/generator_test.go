package scaffold

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/crudgen/internal/config"
	scaffoldtmpl "github.com/example/crudgen/internal/templates/scaffold"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func generate(t *testing.T, name, fields, relations string) map[string]GeneratedFile {
	t.Helper()
	spec := mustResolve(t, name, fields, relations)

	gen := NewGenerator(scaffoldtmpl.NewStore("", nil), config.Default())
	result, err := gen.Generate(spec, fixedNow)
	require.NoError(t, err)

	byKind := make(map[string]GeneratedFile, len(result.Files))
	for _, f := range result.Files {
		byKind[f.Kind] = f
	}
	return byKind
}

func TestGenerate_ArtifactsAndPaths(t *testing.T) {
	files := generate(t, "blog_post", "", "")

	expected := map[string]struct {
		path string
		op   Operation
	}{
		"base-model":           {"app/Models/BaseModel.php", OpCreateOnce},
		"model":                {"app/Models/BlogPost.php", OpCreate},
		"migration":            {"database/migrations/2024_03_09_140507_create_blog_posts_table.php", OpCreate},
		"repository-interface": {"app/Repositories/Contracts/BlogPostRepositoryInterface.php", OpCreate},
		"repository":           {"app/Repositories/BlogPostRepository.php", OpCreate},
		"service":              {"app/Services/BlogPostService.php", OpCreate},
		"controller":           {"app/Http/Controllers/BlogPostController.php", OpCreate},
		"api-controller":       {"app/Http/Controllers/API/BlogPostController.php", OpCreate},
		"store-request":        {"app/Http/Requests/StoreBlogPostRequest.php", OpCreate},
		"update-request":       {"app/Http/Requests/UpdateBlogPostRequest.php", OpCreate},
		"layouts/app":          {"resources/views/layouts/app.blade.php", OpCreateOnce},
		"views/index":          {"resources/views/blog-post/index.blade.php", OpCreate},
		"views/create":         {"resources/views/blog-post/create.blade.php", OpCreate},
		"views/edit":           {"resources/views/blog-post/edit.blade.php", OpCreate},
		"views/show":           {"resources/views/blog-post/show.blade.php", OpCreate},
		"routes/web":           {"routes/web.php", OpAppend},
		"routes/api":           {"routes/api.php", OpAppend},
	}

	require.Len(t, files, len(expected))
	for kind, exp := range expected {
		f, ok := files[kind]
		if !assert.True(t, ok, "missing artifact %s", kind) {
			continue
		}
		assert.Equal(t, exp.path, f.Path, kind)
		assert.Equal(t, exp.op, f.Operation, kind)
	}
}

func TestGenerate_NoPlaceholdersLeft(t *testing.T) {
	files := generate(t, "blog_post", "title:string", "belongsTo:Category,hasMany:Comment")

	for kind, f := range files {
		for _, token := range []string{"{{modelName}}", "{{namespace}}", "{{fillable}}", "{{fields}}", "{{rules}}", "Namespace}}"} {
			assert.NotContains(t, f.Content, token, "%s still contains %s", kind, token)
		}
	}
}

// Scenario: name only, every default applies.
func TestGenerate_DefaultFields(t *testing.T) {
	files := generate(t, "blog_post", "", "")

	model := files["model"].Content
	assert.Contains(t, model, "namespace App\\Models;")
	assert.Contains(t, model, "class BlogPost extends BaseModel")
	assert.Contains(t, model, "protected $table = 'blog_posts';")
	assert.Contains(t, model, "protected $fillable = [\n        'name',\n        'email',\n        'description',\n        'created_by',\n        'updated_by',\n    ];")

	migration := files["migration"].Content
	assert.Contains(t, migration, "Schema::create('blog_posts'")
	assert.Contains(t, migration, "$table->string('name');\n            $table->string('email');\n            $table->text('description');")
}

// Scenario: belongsTo produces a foreign key, a fillable entry and an exists rule.
func TestGenerate_BelongsTo(t *testing.T) {
	files := generate(t, "post", "title:string,views:integer", "belongsTo:Category")

	migration := files["migration"].Content
	assert.Contains(t, migration, "$table->foreignId('category_id')->constrained('categories')->onDelete('cascade');")
	assert.Contains(t, migration, "$table->integer('views');")

	assert.Contains(t, files["model"].Content, "'category_id',")
	assert.Contains(t, files["model"].Content, "public function category()")

	for _, kind := range []string{"store-request", "update-request"} {
		rules := files[kind].Content
		assert.Contains(t, rules, "'category_id' => 'required|exists:categories,id'", kind)
		assert.Contains(t, rules, "'title' => 'required|string|max:255'", kind)
		assert.Contains(t, rules, "'views' => 'required|integer'", kind)
	}

	assert.Contains(t, files["controller"].Content, "$categories = \\App\\Models\\Category::all();")
	assert.Contains(t, files["views/create"].Content, `<select name="category_id"`)
}

// Scenario: hasMany produces a plural accessor.
func TestGenerate_HasMany(t *testing.T) {
	files := generate(t, "post", "title:string", "hasMany:Comment")

	model := files["model"].Content
	assert.Contains(t, model, "public function comments()")
	assert.Contains(t, model, "return $this->hasMany(\\App\\Models\\Comment::class);")
	assert.Contains(t, model, "'comments',")

	assert.NotContains(t, files["migration"].Content, "comment_id")
}

// Scenario: a malformed relation is ignored and the run still succeeds.
func TestGenerate_MalformedRelationIgnored(t *testing.T) {
	spec := mustResolve(t, "post", "title:string", "invalidformat")
	require.Len(t, spec.Diagnostics, 1)
	assert.True(t, spec.Relations.Empty())

	gen := NewGenerator(scaffoldtmpl.NewStore("", nil), config.Default())
	result, err := gen.Generate(spec, fixedNow)
	require.NoError(t, err)

	for _, f := range result.Files {
		if f.Kind == "model" {
			assert.NotContains(t, f.Content, "// Relationships")
		}
	}
}

func TestGenerate_FieldOrderMatchesMigrationAndFillable(t *testing.T) {
	files := generate(t, "item", "zeta:string,alpha:integer,mid:text", "")

	migration := files["migration"].Content
	assert.Less(t, strings.Index(migration, "'zeta'"), strings.Index(migration, "'alpha'"))
	assert.Less(t, strings.Index(migration, "'alpha'"), strings.Index(migration, "'mid'"))

	model := files["model"].Content
	assert.Less(t, strings.Index(model, "'zeta',"), strings.Index(model, "'alpha',"))
	assert.Less(t, strings.Index(model, "'alpha',"), strings.Index(model, "'mid',"))
}

func TestGenerate_Routes(t *testing.T) {
	files := generate(t, "blog_post", "", "")

	assert.Equal(t,
		"\n// BlogPost CRUD Routes\nRoute::resource('blog-post', \\App\\Http\\Controllers\\BlogPostController::class);\n",
		files["routes/web"].Content)
	assert.Equal(t,
		"\n// BlogPost CRUD API Routes\nRoute::apiResource('blog-post', \\App\\Http\\Controllers\\API\\BlogPostController::class);\n",
		files["routes/api"].Content)
}

func TestGenerate_CustomConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Namespace = "Acme"
	cfg.Paths.Models = "app/Domain/Models"

	spec := mustResolve(t, "post", "title:string", "hasOne:Profile")
	result, err := NewGenerator(scaffoldtmpl.NewStore("", nil), cfg).Generate(spec, fixedNow)
	require.NoError(t, err)

	var model GeneratedFile
	for _, f := range result.Files {
		if f.Kind == "model" {
			model = f
		}
	}
	assert.Equal(t, "app/Domain/Models/Post.php", model.Path)
	assert.Contains(t, model.Content, "namespace Acme\\Domain\\Models;")
	assert.Contains(t, model.Content, "\\Acme\\Domain\\Models\\Profile::class")
}

type stubMap map[string]string

func (m stubMap) Get(id string) (string, error) {
	return m[id], nil
}

func TestGenerate_NextSteps(t *testing.T) {
	spec := mustResolve(t, "post", "", "hasMany:Comment,belongsTo:User")
	result, err := NewGenerator(stubMap{}, config.Default()).Generate(spec, fixedNow)
	require.NoError(t, err)

	assert.Contains(t, result.NextSteps[0], "php artisan migrate")
	assert.Equal(t, "Relationships defined: hasMany, belongsTo", result.NextSteps[len(result.NextSteps)-1])
}

func TestBind(t *testing.T) {
	values := map[string]string{
		"{{a}}": "{{b}}",
		"{{b}}": "B",
	}

	// values are not expanded again
	assert.Equal(t, "{{b}} B {{ $blade }}", Bind("{{a}} {{b}} {{ $blade }}", values))
}
