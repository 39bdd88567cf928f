package ocean

import (
	"strconv"
	"time"
)

const actionsSegment = "actions"

// Action records an event that changed a resource, such as a reboot or a
// volume attach. Most mutating operations return one; its status moves from
// in-progress to completed or errored.
type Action struct {
	ID           int       `json:"id"`
	Status       string    `json:"status"`
	Type         string    `json:"type"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
	ResourceID   int       `json:"resource_id"`
	ResourceType string    `json:"resource_type"`
	Region       *Region   `json:"region,omitempty"`
	RegionSlug   string    `json:"region_slug,omitempty"`
}

func (Action) responseKey() string { return "action" }

// Actions is a collection of actions.
type Actions []Action

func (Actions) responseKey() string { return "actions" }

// ListActions builds a request for every action taken on the account.
func ListActions() *Request[List, Actions] {
	return newRequest[List, Actions](actionsSegment)
}

// GetAction builds a request fetching one action by id.
func GetAction(id int) *Request[Get, Action] {
	return newRequest[Get, Action](actionsSegment, strconv.Itoa(id))
}
