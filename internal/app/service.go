package app

import (
	"os"

	"projgen/internal/adapters"
	"projgen/internal/ports"
)

type Service struct {
	ManifestLoader ports.ManifestLoaderPort
	Discovery      ports.ManifestDiscoveryPort
	Codec          ports.PlistCodecPort
	CoreData       ports.CoreDataVersionPort
	Executor       ports.SideEffectExecutorPort
	Input          ports.UserInputPort
	RootDirectory  func(start string) string
}

func NewService() Service {
	codec := adapters.NewPlistCodecAdapter()
	return Service{
		ManifestLoader: adapters.NewManifestFileAdapter(),
		Discovery:      adapters.NewWorkspaceAdapter(),
		Codec:          codec,
		CoreData:       adapters.NewCoreDataVersionAdapter(codec),
		Executor:       adapters.NewSideEffectExecutorAdapter(false),
		Input:          adapters.NewUserInputReader(os.Stdin, os.Stderr),
		RootDirectory:  adapters.FindRootDirectory,
	}
}
