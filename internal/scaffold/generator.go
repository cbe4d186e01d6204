package scaffold

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/example/crudgen/internal/config"
)

// MigrationTimeFormat is the Laravel migration filename prefix layout.
const MigrationTimeFormat = "2006_01_02_150405"

// TemplateSource loads a stub by id, e.g. "model" or "views/index".
type TemplateSource interface {
	Get(id string) (string, error)
}

// Generator binds resolved entities into stubs.
type Generator struct {
	stubs TemplateSource
	cfg   *config.Config
}

// NewGenerator creates a new Generator.
func NewGenerator(stubs TemplateSource, cfg *config.Config) *Generator {
	return &Generator{stubs: stubs, cfg: cfg}
}

// GeneratorResult contains the result of a generation pass.
type GeneratorResult struct {
	Files     []GeneratedFile
	NextSteps []string
}

// artifact describes one generated file kind.
type artifact struct {
	template  string
	path      string
	operation Operation
	values    map[string]string
}

// Generate renders every artifact of the CRUD stack for spec. now stamps
// the migration filename.
func (g *Generator) Generate(spec *EntitySpec, now time.Time) (*GeneratorResult, error) {
	result := &GeneratorResult{}

	for _, a := range g.artifacts(spec, now) {
		stub, err := g.stubs.Get(a.template)
		if err != nil {
			return nil, fmt.Errorf("failed to load stub %s: %w", a.template, err)
		}

		result.Files = append(result.Files, GeneratedFile{
			Kind:      a.template,
			Path:      a.path,
			Content:   Bind(stub, a.values),
			Operation: a.operation,
		})
	}

	result.NextSteps = []string{
		"Run 'php artisan migrate' to create the " + spec.Names.Table + " table",
		"Make sure a User model with an id column exists for the created_by/updated_by audit relations",
	}
	if !spec.Relations.Empty() {
		kinds := make([]string, 0)
		for _, k := range spec.Relations.Kinds() {
			kinds = append(kinds, string(k))
		}
		result.NextSteps = append(result.NextSteps, "Relationships defined: "+strings.Join(kinds, ", "))
	}

	return result, nil
}

// artifacts lists every file kind in emission order. The shared base model
// and layout are created once and never overwritten.
func (g *Generator) artifacts(spec *EntitySpec, now time.Time) []artifact {
	n := spec.Names
	p := g.cfg.Paths
	frag := fragments{spec: spec, modelsNamespace: g.cfg.ClassNamespace(p.Models)}

	common := g.commonValues(n)
	with := func(extra map[string]string) map[string]string {
		values := make(map[string]string, len(common)+len(extra))
		for k, v := range common {
			values[k] = v
		}
		for k, v := range extra {
			values[k] = v
		}
		return values
	}

	rules := with(map[string]string{
		"{{rules}}":         frag.validationRules(),
		"{{relationRules}}": frag.relationValidationRules(),
	})

	views := with(map[string]string{
		"{{fields}}":         frag.formFields(),
		"{{relationFields}}": frag.relationFields(),
		"{{tableHeaders}}":   frag.tableHeaders(),
		"{{tableRows}}":      frag.tableRows(),
		"{{showFields}}":     frag.showFields(),
	})

	migration := fmt.Sprintf("%s_create_%s_table.php", now.Format(MigrationTimeFormat), n.Table)

	list := []artifact{
		{"base-model", path.Join(p.Models, "BaseModel.php"), OpCreateOnce, common},
		{"model", path.Join(p.Models, n.Studly+".php"), OpCreate, with(map[string]string{
			"{{fillable}}":     frag.fillable(),
			"{{casts}}":        frag.casts(),
			"{{relationWith}}": frag.relationWith(),
			"{{relations}}":    frag.relations(),
		})},
		{"migration", path.Join(p.Migrations, migration), OpCreate, with(map[string]string{
			"{{migrationFields}}": frag.migrationFields(),
			"{{foreignKeys}}":     frag.migrationForeignKeys(),
		})},
		{"repository-interface", path.Join(p.Interfaces, n.Studly+"RepositoryInterface.php"), OpCreate, common},
		{"repository", path.Join(p.Repositories, n.Studly+"Repository.php"), OpCreate, with(map[string]string{
			"{{repositoryRelations}}": frag.repositoryRelations(),
		})},
		{"service", path.Join(p.Services, n.Studly+"Service.php"), OpCreate, with(map[string]string{
			"{{serviceRelations}}": frag.serviceRelations(),
		})},
		{"controller", path.Join(p.Controllers, n.Studly+"Controller.php"), OpCreate, with(map[string]string{
			"{{controllerRelations}}":     frag.controllerRelations(),
			"{{editControllerRelations}}": frag.editControllerRelations(),
		})},
		{"api-controller", path.Join(p.APIControllers, n.Studly+"Controller.php"), OpCreate, common},
		{"store-request", path.Join(p.Requests, "Store"+n.Studly+"Request.php"), OpCreate, rules},
		{"update-request", path.Join(p.Requests, "Update"+n.Studly+"Request.php"), OpCreate, rules},
		{"layouts/app", path.Join(p.Views, "layouts", "app.blade.php"), OpCreateOnce, common},
	}

	for _, v := range []string{"index", "create", "edit", "show"} {
		list = append(list, artifact{"views/" + v, path.Join(p.Views, n.Kebab, v+".blade.php"), OpCreate, views})
	}

	list = append(list,
		artifact{"routes/web", p.WebRoutes, OpAppend, common},
		artifact{"routes/api", p.APIRoutes, OpAppend, common},
	)

	return list
}

// commonValues are the name and namespace placeholders every stub may use.
func (g *Generator) commonValues(n NameVariants) map[string]string {
	p := g.cfg.Paths
	return map[string]string{
		"{{namespace}}":               g.cfg.Namespace,
		"{{modelName}}":               n.Studly,
		"{{modelPlural}}":             n.Plural,
		"{{modelVariable}}":           n.Camel,
		"{{modelPluralVariable}}":     n.PluralCamel,
		"{{modelSnake}}":              n.Snake,
		"{{viewPath}}":                n.Kebab,
		"{{tableName}}":               n.Table,
		"{{modelsNamespace}}":         g.cfg.ClassNamespace(p.Models),
		"{{repositoriesNamespace}}":   g.cfg.ClassNamespace(p.Repositories),
		"{{interfacesNamespace}}":     g.cfg.ClassNamespace(p.Interfaces),
		"{{servicesNamespace}}":       g.cfg.ClassNamespace(p.Services),
		"{{controllersNamespace}}":    g.cfg.ClassNamespace(p.Controllers),
		"{{apiControllersNamespace}}": g.cfg.ClassNamespace(p.APIControllers),
		"{{requestsNamespace}}":       g.cfg.ClassNamespace(p.Requests),
	}
}

// Bind replaces every placeholder token in stub with its value in a single
// pass. Values are inserted verbatim and never rescanned.
func Bind(stub string, values map[string]string) string {
	tokens := make([]string, 0, len(values))
	for token := range values {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	pairs := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		pairs = append(pairs, token, values[token])
	}

	return strings.NewReplacer(pairs...).Replace(stub)
}
