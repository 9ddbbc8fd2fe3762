package service

import "wedonate/pkg/types"

// requireOwner is the single authorization rule in the system: a caller may
// mutate a resource only when its verified subject id equals the owner id
// stored on the freshly fetched record. Every update and delete across all
// three resource types goes through here.
func requireOwner(callerID, ownerID string) error {
	if callerID == "" || callerID != ownerID {
		return types.ErrForbidden
	}
	return nil
}
