package vocabulary

// Standard Vocabulary IRIs
//
// These constants provide the W3C IRIs the client references when building
// statements. Facade helpers use them directly (AddLabel writes rdfs:label,
// Instantiate writes rdf:type) and the relationship resolver anchors its
// property path on rdfs:subPropertyOf.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDFS: https://www.w3.org/TR/rdf-schema/
// - OWL: https://www.w3.org/TR/owl2-overview/
// - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/

// RDF Standard IRIs
const (
	// RdfType asserts that a resource is an instance of a class.
	// Used for: Instantiate
	RdfType = RDFNamespace + "type"

	// RdfProperty is the class of RDF properties
	RdfProperty = RDFNamespace + "Property"
)

// RDF Schema Standard IRIs
const (
	// RdfsLabel provides a human-readable name for a resource.
	// Used for: AddLabel
	RdfsLabel = RDFSNamespace + "label"

	// RdfsComment provides a human-readable description.
	// Used for: AddComment
	RdfsComment = RDFSNamespace + "comment"

	// RdfsSubPropertyOf declares that one property specializes another.
	// Used for: GetRelated / GetRelating property-path traversal
	RdfsSubPropertyOf = RDFSNamespace + "subPropertyOf"

	// RdfsSubClassOf declares that one class specializes another
	RdfsSubClassOf = RDFSNamespace + "subClassOf"

	// RdfsSeeAlso indicates a resource that provides additional information
	RdfsSeeAlso = RDFSNamespace + "seeAlso"
)

// OWL Standard IRIs
const (
	// OwlClass is the class of OWL classes
	OwlClass = OWLNamespace + "Class"

	// OwlObjectProperty is the class of properties relating resources to resources
	OwlObjectProperty = OWLNamespace + "ObjectProperty"

	// OwlDatatypeProperty is the class of properties relating resources to literals
	OwlDatatypeProperty = OWLNamespace + "DatatypeProperty"

	// OwlSameAs indicates that two URI references refer to the same entity
	OwlSameAs = OWLNamespace + "sameAs"
)

// Dublin Core Standard IRIs
const (
	// DcTitle provides the name given to the resource
	DcTitle = DCNamespace + "title"

	// DcCreator names the entity primarily responsible for the resource
	DcCreator = DCNamespace + "creator"

	// DcDescription provides an account of the resource
	DcDescription = DCNamespace + "description"

	// DcIdentifier provides an unambiguous reference to the resource
	DcIdentifier = DCNamespace + "identifier"
)
