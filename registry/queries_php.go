package registry

const phpQuery = `
(class_declaration
  name: (name) @symbol.name
  (base_clause
    (name) @inheritance)?
  (class_interface_clause
    (name) @implementation)?) @class.definition

(interface_declaration
  name: (name) @symbol.name) @interface.definition

(method_declaration
  name: (name) @symbol.name
  parameters: (formal_parameters) @symbol.parameters
  return_type: (_)? @symbol.returnType) @method.definition

(function_definition
  name: (name) @symbol.name
  parameters: (formal_parameters) @symbol.parameters
  return_type: (_)? @symbol.returnType) @function.definition

(property_declaration) @field.definition

"public" @qualifier.visibility
"private" @qualifier.visibility
"protected" @qualifier.visibility
"static" @qualifier.static

(namespace_use_declaration
  (namespace_use_clause
    (qualified_name) @import.source))

(function_call_expression
  function: (name) @call)
(member_call_expression
  name: (name) @call)
`
