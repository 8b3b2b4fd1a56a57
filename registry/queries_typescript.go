package registry

// typeScriptQuery covers both .ts and .tsx (the tsx grammar is a superset of
// the typescript grammar's node types for everything captured here).
const typeScriptQuery = `
(function_declaration
  name: (identifier) @symbol.name
  parameters: (formal_parameters) @symbol.parameters
  return_type: (_)? @symbol.returnType) @function.definition

(variable_declarator
  name: (identifier) @symbol.name
  value: (arrow_function
    parameters: (formal_parameters) @symbol.parameters
    return_type: (_)? @symbol.returnType)) @arrow_function.definition

(class_declaration
  name: (type_identifier) @symbol.name) @class.definition

(interface_declaration
  name: (type_identifier) @symbol.name) @interface.definition

(method_definition
  name: (property_identifier) @symbol.name
  parameters: (formal_parameters) @symbol.parameters
  return_type: (_)? @symbol.returnType) @method.definition

(public_field_definition
  name: (property_identifier) @symbol.name) @field.definition

(accessibility_modifier) @qualifier.visibility
(readonly) @qualifier.readonly
"static" @qualifier.static
"async" @qualifier.async

(import_statement
  source: (string) @import.source)
(export_statement
  source: (string) @import.source)

(class_heritage
  (extends_clause
    value: (identifier) @inheritance))
(class_heritage
  (implements_clause
    (type_identifier) @implementation))

(call_expression
  function: (identifier) @call)
(call_expression
  function: (member_expression
    property: (property_identifier) @call))

(new_expression
  constructor: (identifier) @reference)
(type_annotation
  (type_identifier) @reference)
`
