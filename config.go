package tableview

var (
	// DefaultStructFieldNaming provides the default StructFieldNaming
	// using "col" as title tag, ignores "-" titled fields,
	// and uses SpacePascalCase for untagged fields.
	DefaultStructFieldNaming = StructFieldNaming{
		Tag:      "col",
		Ignore:   "-",
		Untagged: SpacePascalCase,
	}

	// DefaultFixedColumns is the default number of frozen
	// leading display columns of an Engine.
	DefaultFixedColumns = 1

	// DefaultMatchCounting enables candidate value counting
	// of filters during revalidation by default.
	DefaultMatchCounting = true
)
