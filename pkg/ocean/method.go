package ocean

import "net/http"

// Method is the compile-time tag that binds a Request to one HTTP verb and
// records whether the API expects a request body for it. The set is closed:
// exactly the five tags below implement it, and none carries runtime data.
type Method interface {
	verb() string
	expectsBody() bool
}

// List tags requests that fetch a collection (GET, no body).
type List struct{}

func (List) verb() string { return http.MethodGet }

func (List) expectsBody() bool { return false }

// Get tags requests that fetch a single record (GET, no body).
type Get struct{}

func (Get) verb() string { return http.MethodGet }

func (Get) expectsBody() bool { return false }

// Create tags requests that create a resource or trigger a named action
// (POST, body expected).
type Create struct{}

func (Create) verb() string { return http.MethodPost }

func (Create) expectsBody() bool { return true }

// Update tags requests that replace mutable fields of a resource (PUT, body
// expected).
type Update struct{}

func (Update) verb() string { return http.MethodPut }

func (Update) expectsBody() bool { return true }

// Delete tags requests that remove a resource (DELETE, no body).
type Delete struct{}

func (Delete) verb() string { return http.MethodDelete }

func (Delete) expectsBody() bool { return false }
