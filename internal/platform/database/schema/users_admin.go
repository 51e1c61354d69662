// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package schema

// UsersAdminTable represents the 'users.admin' table
type UsersAdminTable struct {
	Table        string
	ID           string
	Username     string
	PasswordHash string
	DisplayName  string
	Role         string
	CreatedAt    string
}

// UsersAdmin is the schema definition for users.admin
var UsersAdmin = UsersAdminTable{
	Table:        "users.admin",
	ID:           "id",
	Username:     "username",
	PasswordHash: "passwordhash",
	DisplayName:  "displayname",
	Role:         "role",
	CreatedAt:    "createdat",
}
