package registry

const pythonQuery = `
(function_definition
  name: (identifier) @symbol.name
  parameters: (parameters) @symbol.parameters
  return_type: (_)? @symbol.returnType) @function.definition

(class_definition
  name: (identifier) @symbol.name
  superclasses: (argument_list
    (identifier) @inheritance)?) @class.definition

(decorator) @qualifier.decorator

(assignment
  left: (identifier) @symbol.name) @variable.definition

(import_statement
  name: (dotted_name) @import.source)
(import_from_statement
  module_name: (_) @import.source)

(call
  function: (identifier) @call)
(call
  function: (attribute
    attribute: (identifier) @call))
`
