package registry

const goQuery = `
(function_declaration
  name: (identifier) @symbol.name
  parameters: (parameter_list) @symbol.parameters
  result: (_)? @symbol.returnType) @function.definition

(method_declaration
  receiver: (parameter_list
    (parameter_declaration
      type: (_) @qualifier.receiverType))
  name: (field_identifier) @symbol.name
  parameters: (parameter_list) @symbol.parameters
  result: (_)? @symbol.returnType) @method.definition

(type_declaration
  (type_spec
    name: (type_identifier) @symbol.name
    type: (_) @qualifier.underlyingType)) @type.definition

(const_declaration
  (const_spec
    name: (identifier) @symbol.name)) @constant.definition

(var_declaration
  (var_spec
    name: (identifier) @symbol.name)) @variable.definition

(import_spec
  path: (interpreted_string_literal) @import.source)

(call_expression
  function: (identifier) @call)
(call_expression
  function: (selector_expression
    field: (field_identifier) @call))

(type_identifier) @reference
`
