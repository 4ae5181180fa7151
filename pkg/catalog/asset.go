package catalog

// Asset is an opaque artifact owned by exactly one component, such as a
// stylesheet, a script or an image. Assets are aggregated, never
// mutated, by the tree's asset walk.
type Asset struct {
	// Path is the public path of the asset, with any configured path
	// prefix applied
	Path string

	// SourcePath is the location of the asset in the source tree
	SourcePath string

	// Name is the base name without extension
	Name string

	// Ext is the file extension including the leading dot
	Ext string
}
