package oidpath

import (
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/zoobzio/sentinel"
)

// Tag names read from model structs.
const (
	tagOID  = "oid"
	tagBSON = "bson"
	tagJSON = "json"
)

func init() {
	// Register tags with sentinel
	sentinel.Tag(tagOID)
	sentinel.Tag(tagBSON)
	sentinel.Tag(tagJSON)
}

// PathsFor returns the dotted path of every field of T tagged oid:"true".
//
// Path segments use the field's bson name, then its json name, then the
// lowercased Go name (the mongo driver default). Nested structs add a
// segment; slices, arrays and pointers do not. bson ",inline" structs add
// no segment. The result is sorted and free of duplicates.
func PathsFor[T any]() ([]string, error) {
	spec := sentinel.Scan[T]()

	var paths []string
	visiting := make(map[reflect.Type]bool)
	if err := collectPaths(&paths, spec, "", visiting); err != nil {
		return nil, err
	}

	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// collectPaths recursively gathers tagged fields and nested structs.
func collectPaths(paths *[]string, spec sentinel.Metadata, prefix string, visiting map[reflect.Type]bool) error {
	for _, fm := range spec.Fields {
		name, inline, skip := documentName(fm)
		if skip {
			continue
		}

		fullName := prefix
		if !inline {
			fullName = field(prefix, name)
		}

		if val, ok := fm.Tags[tagOID]; ok {
			on, err := strconv.ParseBool(val)
			if err != nil || inline {
				return newConfigError(ErrInvalidTag, val, fm.Name)
			}
			if on {
				*paths = append(*paths, fullName)
				continue
			}
		}

		rt := structElem(fm.ReflectType)
		if rt == nil || visiting[rt] {
			continue
		}

		nestedSpec := scanNestedType(rt)
		if nestedSpec == nil {
			continue
		}
		visiting[rt] = true
		err := collectPaths(paths, *nestedSpec, fullName, visiting)
		delete(visiting, rt)
		if err != nil {
			return err
		}
	}

	return nil
}

// documentName returns the key a field is stored under.
func documentName(fm sentinel.FieldMetadata) (name string, inline, skip bool) {
	for _, tag := range []string{tagBSON, tagJSON} {
		val, ok := fm.Tags[tag]
		if !ok {
			continue
		}
		if val == "-" {
			return "", false, true
		}
		parts := strings.Split(val, ",")
		if tag == tagBSON && slices.Contains(parts[1:], "inline") {
			return "", true, false
		}
		if parts[0] != "" {
			return parts[0], false, false
		}
	}
	return strings.ToLower(fm.Name), false, false
}

// structElem unwraps pointers, slices and arrays down to a struct type.
func structElem(rt reflect.Type) reflect.Type {
	for rt != nil {
		switch rt.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array:
			rt = rt.Elem()
		case reflect.Struct:
			return rt
		default:
			return nil
		}
	}
	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
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

		spec.Fields = append(spec.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseTags(sf.Tag),
		})
	}

	return &spec
}

// parseTags extracts the tags PathsFor reads from a struct tag.
func parseTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, name := range []string{tagOID, tagBSON, tagJSON} {
		if val, ok := tag.Lookup(name); ok {
			tags[name] = val
		}
	}
	return tags
}
