package hclgraph

import "github.com/hashicorp/hcl/v2"

// configHCL captures the raw attribute body of a block's 'config' block.
type configHCL struct {
	Body hcl.Body `hcl:",remain"`
}

// blockHCL represents a `block "<type>" "<instance>"` declaration.
type blockHCL struct {
	Type   string     `hcl:"type,label"`
	Name   string     `hcl:"instance_name,label"`
	Config *configHCL `hcl:"config,block"`
}

// connectHCL represents a `connect` declaration wiring one output endpoint
// to one input endpoint, both in "block.port" form.
type connectHCL struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// seedHCL represents a `seed "<block>" "<port>"` declaration supplying an
// external value for a port, either inline via 'values' / 'scalar' or from a
// CSV file via 'csv' (+ optional 'column', "price" or "volume").
type seedHCL struct {
	Block  string         `hcl:"block,label"`
	Port   string         `hcl:"port,label"`
	Values hcl.Expression `hcl:"values,optional"`
	Scalar *float64       `hcl:"scalar,optional"`
	CSV    string         `hcl:"csv,optional"`
	Column string         `hcl:"column,optional"`
}

// workflowHCL represents the top-level structure of one workflow file.
type workflowHCL struct {
	Blocks   []*blockHCL   `hcl:"block,block"`
	Connects []*connectHCL `hcl:"connect,block"`
	Seeds    []*seedHCL    `hcl:"seed,block"`
}
