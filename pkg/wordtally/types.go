package wordtally

// PartialCount is a single occurrence contribution of one token. Value is
// always 1 at emission; the reduce phase sums the accumulated values per
// token into the final total.
type PartialCount struct {
	Token string `json:"token"`
	Value int    `json:"value"`
}

// Emitter receives partial counts produced during the map phase.
type Emitter func(PartialCount)
