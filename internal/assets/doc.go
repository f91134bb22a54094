// Package assets provides the CSS styles applied to built-in HTML output.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default styles)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Styles live in {basePath}/styles/{name}.css. Names are validated to
// prevent path traversal, and FilesystemLoader resolves symlinks and verifies
// paths stay within basePath.
package assets
