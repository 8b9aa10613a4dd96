package sinks

import "github.com/elastiflow/pullstreams/pullseq"

// Params are used to pass args into sink constructors.
type Params = pullseq.Params
