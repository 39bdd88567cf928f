// Package ocean provides a typed client for the DigitalOcean v2 API.
//
// # Overview
//
// The package maps API endpoints into request values whose type parameters
// describe, at compile time, which HTTP verb the request maps to and which
// response shape executing it yields. Resource constructors (ListVolumes,
// GetDroplet, CreateDomain, ...) return a Request or an identified-resource
// state; Execute performs the network round trip against a Client.
//
// # Getting a client
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/bluetide-io/bluetide/pkg/ocean"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  client, err := ocean.New(os.Getenv("DIGITALOCEAN_TOKEN"))
//	  if err != nil { log.Fatal(err) }
//
//	  volumes, err := ocean.Execute(ctx, client, ocean.ListVolumes())
//	  if err != nil { log.Fatal(err) }
//	  _ = volumes
//	}
//
// # Building requests
//
// Requests are independent of any client and can be built up before one
// exists. Identifying a single resource unlocks the operations that are
// legal on it; the compiler rejects chains that skip the identification
// step:
//
//	// Fetch one volume.
//	vol, err := ocean.Execute(ctx, client, ocean.GetVolume("abc123").Req())
//
//	// Resize that volume instead: the chain yields a create request for
//	// the asynchronous action the API returns.
//	action, err := ocean.Execute(ctx, client, ocean.GetVolume("abc123").Resize(100))
//
//	// List the volume's past actions.
//	actions, err := ocean.Execute(ctx, client, ocean.GetVolume("abc123").Actions())
//
// There is no way to express "list actions" without first naming a volume,
// and the result type of each execution follows from the request value
// rather than from runtime inspection.
//
// # Errors
//
// Execute classifies failures into *TransportError (the round trip itself
// failed), *DecodeError (a payload could not be encoded or decoded into the
// promised shape), and *APIError (the provider rejected the request).
// Helpers such as IsNotFound and IsTransport branch on common cases.
package ocean
