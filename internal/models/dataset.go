package models

// Dataset holds the geometry fields of a volumetric dataset header
type Dataset struct {
	// Name identifies the dataset in diagnostics
	Name string `yaml:"name"`

	// Dims is the number of voxels along grid axes 1, 2 and 3
	Dims [3]int `yaml:"dims"`

	// Delta is the signed voxel size in mm along each grid axis
	Delta [3]float64 `yaml:"delta"`

	// Origin is the coordinate in mm of the centre of voxel (0,0,0)
	// along each grid axis
	Origin [3]float64 `yaml:"origin"`

	// Orient is the three-letter orientation string, e.g. "RAI"
	Orient string `yaml:"orient"`

	// OK is cleared when a validation error is found. It is never
	// read from or written to header files.
	OK bool `yaml:"-"`
}

// Header is the on-disk layout of a dataset header file
type Header struct {
	Datasets []Dataset `yaml:"datasets"`
}
