package registry

// cQuery is shared by .c/.h; cppQuery below extends it with class/template
// constructs the C grammar doesn't have.
const cQuery = `
(function_definition
  declarator: (function_declarator
    declarator: (identifier) @symbol.name
    parameters: (parameter_list) @symbol.parameters)
  type: (_)? @symbol.returnType) @function.definition

(struct_specifier
  name: (type_identifier) @symbol.name) @struct.definition

(union_specifier
  name: (type_identifier) @symbol.name) @union.definition

(enum_specifier
  name: (type_identifier) @symbol.name) @enum.definition

(type_definition
  declarator: (type_identifier) @symbol.name) @type.definition

(preproc_include
  path: (string_literal) @import.source)
(preproc_include
  path: (system_lib_string) @import.source)

(call_expression
  function: (identifier) @call)
`

const cppQuery = cQuery + `
(class_specifier
  name: (type_identifier) @symbol.name
  (base_class_clause
    (type_identifier) @inheritance)?) @class.definition

(function_definition
  declarator: (function_declarator
    declarator: (field_identifier) @symbol.name
    parameters: (parameter_list) @symbol.parameters)
  type: (_)? @symbol.returnType) @method.definition

(function_definition
  declarator: (function_declarator
    declarator: (qualified_identifier
      name: (identifier) @symbol.name)
    parameters: (parameter_list) @symbol.parameters)
  type: (_)? @symbol.returnType) @method.definition

(call_expression
  function: (field_expression
    field: (field_identifier) @call))
`
