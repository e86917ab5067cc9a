package types

type Product string

const (
	ProductApp            Product = "app"
	ProductFramework      Product = "framework"
	ProductStaticLibrary  Product = "static_library"
	ProductUnitTests      Product = "unit_tests"
	ProductBundle         Product = "bundle"
	ProductAppExtension   Product = "app_extension"
	ProductCommandLineApp Product = "command_line_tool"
)

// DescriptorState says whether a side effect creates or removes its path.
type DescriptorState string

const (
	DescriptorStatePresent DescriptorState = "present"
	DescriptorStateAbsent  DescriptorState = "absent"
)
