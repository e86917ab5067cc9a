package ports

import "projgen/internal/types"

// PlistCodecPort encodes value trees as XML property lists.
type PlistCodecPort interface {
	// Encode returns the serialized dictionary, or a
	// *types.SerializationError.
	Encode(content types.PlistDictionary) ([]byte, error)
	Decode(data []byte) (types.PlistDictionary, error)
}
