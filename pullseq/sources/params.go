package sources

import "github.com/elastiflow/pullstreams/pullseq"

// Params are used to pass args into source constructors.
type Params = pullseq.Params
