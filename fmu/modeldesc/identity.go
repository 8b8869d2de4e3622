package modeldesc

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// Identity names the model being packaged. It is fixed for one packaging run.
type Identity struct {
	ModelID   string // modelIdentifier, also the shared-library base name
	ModelName string
	GUID      string
	Version   string // version of the generating tool
}

// NewIdentity builds an Identity, generating a random v4 guid when guid is empty.
func NewIdentity(modelID, modelName, guid, version string) (Identity, error) {
	if modelID == "" {
		return Identity{}, fmt.Errorf("model identifier must not be empty")
	}
	if guid == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return Identity{}, fmt.Errorf("generating guid: %w", err)
		}
		guid = id.String()
	}
	return Identity{ModelID: modelID, ModelName: modelName, GUID: guid, Version: version}, nil
}
