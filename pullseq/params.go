package pullseq

// Params are used to pass args into adapter constructors.
type Params struct {
	SegmentName string
}

func applyParams(params ...Params) Params {
	var p Params
	for _, param := range params {
		p = param
	}
	return p
}
