package sfdl

import (
	"reflect"

	"github.com/zoobzio/sentinel"
)

// sensitiveTag marks a field as subject to field encryption: sfdl:"sensitive".
const (
	sensitiveTag   = "sfdl"
	sensitiveValue = "sensitive"
)

func init() {
	sentinel.Tag(sensitiveTag)
}

// SensitiveFields returns the dotted paths of every field tagged
// sfdl:"sensitive" in the descriptor model, in declaration order.
// Slices of structs are reported through their first element, as [0].
func SensitiveFields() []string {
	spec := sentinel.Scan[File]()
	var paths []string
	collectSensitive(spec, "", &paths)
	return paths
}

// collectSensitive walks spec and its nested structs, appending tagged paths.
func collectSensitive(spec sentinel.Metadata, prefix string, paths *[]string) {
	for _, field := range spec.Fields {
		name := field.Name
		if prefix != "" {
			name = prefix + "." + field.Name
		}

		rt := field.ReflectType
		switch {
		case field.Kind == sentinel.KindStruct:
			if nested := scanNestedType(rt); nested != nil {
				collectSensitive(*nested, name, paths)
			}
			continue
		case field.Kind == sentinel.KindSlice && rt.Elem().Kind() == reflect.Struct:
			if nested := scanNestedType(rt.Elem()); nested != nil {
				collectSensitive(*nested, name+"[0]", paths)
			}
			continue
		}

		if rt.Kind() == reflect.String && field.Tags[sensitiveTag] == sensitiveValue {
			*paths = append(*paths, name)
		}
	}
}

// scanNestedType returns metadata for a nested struct type, preferring
// sentinel's cache and falling back to reflection.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(sensitiveTag); ok {
			fm.Tags[sensitiveTag] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}
