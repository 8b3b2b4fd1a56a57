package registry

// javaScriptQuery omits the TypeScript-only node types (accessibility
// modifiers, interfaces, type annotations): the plain JavaScript grammar
// does not define them, and a query referencing an unknown node type fails
// to compile.
const javaScriptQuery = `
(function_declaration
  name: (identifier) @symbol.name
  parameters: (formal_parameters) @symbol.parameters) @function.definition

(variable_declarator
  name: (identifier) @symbol.name
  value: (arrow_function
    parameters: (_) @symbol.parameters)) @arrow_function.definition

(class_declaration
  name: (identifier) @symbol.name) @class.definition

(method_definition
  name: (property_identifier) @symbol.name
  parameters: (formal_parameters) @symbol.parameters) @method.definition

(field_definition
  property: (property_identifier) @symbol.name) @field.definition

"static" @qualifier.static
"async" @qualifier.async

(import_statement
  source: (string) @import.source)
(export_statement
  source: (string) @import.source)

(class_heritage
  (extends_clause
    value: (identifier) @inheritance))

(call_expression
  function: (identifier) @call)
(call_expression
  function: (member_expression
    property: (property_identifier) @call))

(new_expression
  constructor: (identifier) @reference)
`
