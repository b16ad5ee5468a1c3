// Package catalog holds the palette of element templates a form can be built
// from. A Catalog is assembled once, either from the embedded bundle via
// Default or from JSON/YAML bundles via LoadFS/LoadFile, and is read-only
// afterwards. Bundles list templates under a top-level `templates` key:
//
//	templates:
//	  - type: select
//	    label: Country
//	    options: [United States, Canada]
//
// Lookups hand out copies, so a template can never be altered through a value
// obtained from the catalog.
package catalog
