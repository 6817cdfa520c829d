// Package nodes is the host-facing boundary of the pack: a registry mapping
// stable node identifiers to their entry points and display names. The host
// supplies primitive string/integer inputs and receives the declared tuple
// shape back; everything behind the boundary is the upload library.
package nodes

import (
	"fmt"

	"uploadnodes/settings"
)

// RunFunc is the batch-harness shape of a node: configuration plus local
// paths in, a combined text report out.
type RunFunc func(config *settings.Config, paths []string) (string, error)

type Node struct {
	DisplayName string
	Category    string
	Run         RunFunc
}

// Registry maps the stable node identifiers to their entries. Identifiers
// are load-bearing: hosts persist them inside saved graphs.
var Registry = map[string]Node{
	"FilestashUploadNode": {
		DisplayName: "Filestash File Upload",
		Category:    "file_operations",
		Run:         runFilestash,
	},
	"HttpUploadNode": {
		DisplayName: "HTTP File Upload",
		Category:    "file_operations",
		Run:         runHTTP,
	},
	"MultipartFileHTTPUploadNode": {
		DisplayName: "Multipart File HTTP Upload",
		Category:    "file_operations",
		Run:         runMultipart,
	},
}

// Lookup finds a registered node by identifier.
func Lookup(id string) (Node, error) {
	node, ok := Registry[id]
	if !ok {
		return Node{}, fmt.Errorf("unknown node: %s", id)
	}
	return node, nil
}
