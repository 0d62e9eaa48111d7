package ldpclient

// LDP vocabulary terms sent as type links when creating resources.
const (
	LDPResource       = "http://www.w3.org/ns/ldp#Resource"
	LDPBasicContainer = "http://www.w3.org/ns/ldp#BasicContainer"
)

const (
	// TextTurtle is the default media type for RDF resource bodies.
	TextTurtle = "text/turtle"
	// SparqlUpdate is the media type for PATCH request bodies.
	SparqlUpdate = "application/sparql-update"
)
