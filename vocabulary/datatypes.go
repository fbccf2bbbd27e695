package vocabulary

import "sort"

// xsdDatatypes is the fixed enumerated set of XSD datatype names accepted for
// typed literals. A literal's datatype tag must be a member of this set; the
// encoder rejects anything else before a statement is built.
//
// The names are prefixed form (xsd:integer), resolved against XSDNamespace by
// the PREFIX header on every statement.
var xsdDatatypes = map[string]struct{}{
	"xsd:string":             {},
	"xsd:normalizedString":   {},
	"xsd:token":              {},
	"xsd:language":           {},
	"xsd:Name":               {},
	"xsd:NCName":             {},
	"xsd:NMTOKEN":            {},
	"xsd:boolean":            {},
	"xsd:decimal":            {},
	"xsd:integer":            {},
	"xsd:nonPositiveInteger": {},
	"xsd:negativeInteger":    {},
	"xsd:nonNegativeInteger": {},
	"xsd:positiveInteger":    {},
	"xsd:long":               {},
	"xsd:int":                {},
	"xsd:short":              {},
	"xsd:byte":               {},
	"xsd:unsignedLong":       {},
	"xsd:unsignedInt":        {},
	"xsd:unsignedShort":      {},
	"xsd:unsignedByte":       {},
	"xsd:float":              {},
	"xsd:double":             {},
	"xsd:duration":           {},
	"xsd:dateTime":           {},
	"xsd:date":               {},
	"xsd:time":               {},
	"xsd:gYearMonth":         {},
	"xsd:gYear":              {},
	"xsd:gMonthDay":          {},
	"xsd:gDay":               {},
	"xsd:gMonth":             {},
	"xsd:hexBinary":          {},
	"xsd:base64Binary":       {},
	"xsd:anyURI":             {},
}

// IsDatatype reports whether name is a member of the enumerated XSD datatype
// set. Membership is exact: names must be in prefixed form ("xsd:integer").
func IsDatatype(name string) bool {
	_, ok := xsdDatatypes[name]
	return ok
}

// Datatypes returns the enumerated XSD datatype names in sorted order.
// Useful for introspection and error messages.
func Datatypes() []string {
	names := make([]string, 0, len(xsdDatatypes))
	for name := range xsdDatatypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
