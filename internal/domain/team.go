package domain

import "time"

// TeamCodeLength is the length of the human-readable join code.
const TeamCodeLength = 5

type Team struct {
	ID                 int32     `json:"id"`
	Code               string    `json:"code"`
	ProjectDescription string    `json:"project_description"`
	CreatedOn          time.Time `json:"created_on"`
	UpdatedOn          time.Time `json:"updated_on"`
	MemberCount        int32     `json:"member_count"`
	Members            []Profile `json:"members,omitempty"` // Populated when fetching team details
}
