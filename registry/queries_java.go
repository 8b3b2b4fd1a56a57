package registry

const javaQuery = `
(class_declaration
  name: (identifier) @symbol.name
  superclass: (superclass
    (type_identifier) @inheritance)?
  interfaces: (super_interfaces
    (type_list
      (type_identifier) @implementation))?) @class.definition

(interface_declaration
  name: (identifier) @symbol.name) @interface.definition

(method_declaration
  name: (identifier) @symbol.name
  parameters: (formal_parameters) @symbol.parameters
  type: (_)? @symbol.returnType) @method.definition

(constructor_declaration
  name: (identifier) @symbol.name
  parameters: (formal_parameters) @symbol.parameters) @constructor.definition

(field_declaration
  declarator: (variable_declarator
    name: (identifier) @symbol.name)) @field.definition

(modifiers
  "public" @qualifier.visibility)
(modifiers
  "private" @qualifier.visibility)
(modifiers
  "protected" @qualifier.visibility)
(modifiers
  "static" @qualifier.static)

(import_declaration
  (scoped_identifier) @import.source)

(method_invocation
  name: (identifier) @call)
(object_creation_expression
  type: (type_identifier) @reference)
`
