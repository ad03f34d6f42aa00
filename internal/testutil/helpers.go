package testutil

import (
	"github.com/google/uuid"
)

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// HouseholdMembers is the default member list used across tests.
var HouseholdMembers = []string{"Yo", "Ella", "Común"}
