package models

import (
	"reflect"
	"strings"
)

// FieldSchema describes one field of an entity shape: its wire name, a
// JSON-ish type name, and whether the field is required on input.
type FieldSchema struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Describe walks a struct value with reflection and returns its field
// schemas. Fields tagged `schema:"-"` (store-assigned ids, timestamps) are
// skipped; wire names come from the json tag, required flags from the
// validate tag.
func Describe(v any) []FieldSchema {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	fields := make([]FieldSchema, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("schema") == "-" {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, FieldSchema{
			Name:     name,
			Type:     typeName(f.Type),
			Required: strings.Contains(f.Tag.Get("validate"), "required"),
		})
	}
	return fields
}

// DescribeEntities returns the structural description of every known entity
// shape, keyed the way the store collections are named. Both "product" and
// "catalogproduct" point at the same shape.
func DescribeEntities() map[string][]FieldSchema {
	product := Describe(Product{})
	return map[string][]FieldSchema{
		"user":           Describe(User{}),
		"vendor":         Describe(Vendor{}),
		"product":        product,
		"catalogproduct": product,
		"order":          Describe(Order{}),
		"orderitem":      Describe(OrderItem{}),
	}
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return t.Kind().String()
	}
}
