package registry

// htmlQuery captures elements as definitions and every quoted attribute
// value as a reference tagged with its attribute name; the File Analyzer
// turns only "class" and "id" values into relations into the CSS graph
// (spec.md §4.3 Phase D, "CSS class/id references within HTML element
// subtrees produce one relation per selector").
const htmlQuery = `
(element
  (start_tag
    (tag_name) @symbol.name)) @html_element.definition

(attribute
  (attribute_name) @qualifier.attrName
  (quoted_attribute_value (attribute_value) @reference))
`

// cssQuery treats each rule set as a definition whose selector text becomes
// CSSSelector; declarations are inspected by the handler (not the query) to
// classify CSSIntents.
const cssQuery = `
(rule_set
  (selectors) @symbol.name) @css_rule.definition
`
