package fileanalyzer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
	"github.com/codegraph-dev/engine/handlers"
)

// layoutProperties, typographyProperties, and appearanceProperties classify
// a CSS declaration's property name into the CSSIntent(s) a rule set touches
// (SPEC_FULL.md §12's supplemented HTML/CSS intent classification). A
// property absent from all three tables is ignored rather than guessed at.
var layoutProperties = map[string]bool{
	"display": true, "position": true, "top": true, "left": true, "right": true,
	"bottom": true, "width": true, "height": true, "min-width": true, "max-width": true,
	"min-height": true, "max-height": true, "margin": true, "padding": true,
	"flex": true, "flex-direction": true, "flex-wrap": true, "justify-content": true,
	"align-items": true, "align-content": true, "grid": true, "grid-template-columns": true,
	"grid-template-rows": true, "gap": true, "float": true, "clear": true,
	"overflow": true, "box-sizing": true, "z-index": true,
}

var typographyProperties = map[string]bool{
	"font": true, "font-size": true, "font-weight": true, "font-family": true,
	"font-style": true, "line-height": true, "text-align": true, "text-decoration": true,
	"text-transform": true, "letter-spacing": true, "white-space": true,
}

var appearanceProperties = map[string]bool{
	"background": true, "background-color": true, "background-image": true,
	"border": true, "border-radius": true, "border-color": true, "box-shadow": true,
	"opacity": true, "color": true, "outline": true, "visibility": true, "cursor": true,
}

// classifyCSSIntents scans a rule_set's declarations for property names and
// returns the distinct intents they touch, in a fixed layout/typography/
// appearance order.
func classifyCSSIntents(ctx *handlers.FileContext, ruleSet *sitter.Node) []graph.CSSIntent {
	seen := map[graph.CSSIntent]bool{}
	walkNode(ruleSet, func(n *sitter.Node) {
		if n.Type() != "property_name" {
			return
		}
		name := strings.ToLower(strings.TrimSpace(ctx.Text(n)))
		switch {
		case layoutProperties[name]:
			seen[graph.CSSIntentLayout] = true
		case typographyProperties[name]:
			seen[graph.CSSIntentTypography] = true
		case appearanceProperties[name]:
			seen[graph.CSSIntentAppearance] = true
		}
	})
	var intents []graph.CSSIntent
	for _, intent := range []graph.CSSIntent{graph.CSSIntentLayout, graph.CSSIntentTypography, graph.CSSIntentAppearance} {
		if seen[intent] {
			intents = append(intents, intent)
		}
	}
	return intents
}

func walkNode(n *sitter.Node, visit func(*sitter.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for i := 0; i < int(n.ChildCount()); i++ {
		walkNode(n.Child(i), visit)
	}
}
