package export

import (
	"embed"
	"html/template"
	"io"
	"regexp"

	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/rarity"
	"github.com/pokedex-cli/pokedex/render"
	"github.com/samber/lo"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(
	template.New("page.html").
		Funcs(template.FuncMap{
			"typeColor": typeColor,
			"tierName": func(s string) string {
				return rarity.Tier(s).DisplayName()
			},
		}).
		ParseFS(templatesFS, "templates/page.html"),
)

type legendItem struct {
	Name  string
	Color template.CSS
}

type page struct {
	*Output
	Title   string
	Version string
	Legend  []legendItem
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// typeColor returns the badge color as trusted CSS. Only hex values pass through.
func typeColor(name string) template.CSS {
	c := string(render.TypeColor(pokemon.Type(name)))
	if !hexColor.MatchString(c) {
		c = "#68A090"
	}
	return template.CSS(c)
}

func writeHTML(w io.Writer, out *Output) error {
	return pageTmpl.Execute(w, &page{
		Output:  out,
		Title:   "Pokédex",
		Version: constant.Version,
		Legend: lo.Map(pokemon.Types(), func(t pokemon.Type, _ int) legendItem {
			return legendItem{Name: t.String(), Color: typeColor(t.String())}
		}),
	})
}
