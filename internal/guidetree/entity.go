package guidetree

const (
	DefaultNodeName = "name"
	DefaultNodeType = "default"
)

// Node is a single step in a guide tree flow.
type Node struct {
	Label string `json:"label"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// NodeRequest is the PUT body for both add-node and append-node.
type NodeRequest struct {
	FlowID         string `json:"flowId"`
	PreviousNodeID string `json:"previousNodeId,omitempty"`
	Node           Node   `json:"node"`
}

// Response carries the API's numeric status; 0 means success. A missing
// status is not success.
type Response struct {
	Status  *int   `json:"status"`
	Message string `json:"message,omitempty"`
}

func (r *Response) OK() bool {
	return r.Status != nil && *r.Status == 0
}
