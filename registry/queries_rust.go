package registry

const rustQuery = `
(function_item
  name: (identifier) @symbol.name
  parameters: (parameters) @symbol.parameters
  return_type: (_)? @symbol.returnType) @function.definition

(struct_item
  name: (type_identifier) @symbol.name) @struct.definition

(enum_item
  name: (type_identifier) @symbol.name) @enum.definition

(trait_item
  name: (type_identifier) @symbol.name) @trait.definition

(impl_item
  trait: (type_identifier) @inheritance
  type: (type_identifier) @symbol.name) @impl.definition
(impl_item
  type: (type_identifier) @symbol.name
  !trait) @impl.definition

(use_declaration
  argument: (_) @import.source)
(mod_item
  name: (identifier) @import.source)

(call_expression
  function: (identifier) @call)
(call_expression
  function: (field_expression
    field: (field_identifier) @call))
(macro_invocation
  macro: (identifier) @call)
`
