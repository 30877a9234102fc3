package jsonfile

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const listSchemaURL = "todo-list.schema.json"

// listSchema describes the on-disk shape of a todo list file.
const listSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["task", "done"],
    "properties": {
      "task": {"type": "string"},
      "done": {"type": "boolean"}
    }
  }
}`

var compiledListSchema = jsonschema.MustCompileString(listSchemaURL, listSchema)

// firstSchemaCause returns the most specific validation failure, e.g.
// "/0/done: expected boolean, but got string".
func firstSchemaCause(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + ve.Message
}
