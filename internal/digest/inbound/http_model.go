package inbound

type ComputeRequest struct {
	Strings    []string `json:"strings"`
	Algorithm  string   `json:"algorithm"`
	Salt       string   `json:"salt,omitempty"`
	RandomSalt bool     `json:"random_salt,omitempty"`
}

type HashResult struct {
	Seq       int    `json:"seq" example:"1"`
	Digest    string `json:"digest" example:"0F121698AE6354A1A8C7B86A0F1BD852"`
	Salt      string `json:"salt" example:"aB3!xY9@qW-_=+"`
	Algorithm string `json:"algorithm" example:"MD5"`
}

// PlainComputeResponse is the batch shape when no salting was requested.
type PlainComputeResponse struct {
	Algorithm string   `json:"algorithm" example:"SHA256"`
	Digests   []string `json:"digests"`
}

func (PlainComputeResponse) Message() string {
	return "digests computed"
}

// SaltedComputeResponse is the batch shape when a fixed or random salt
// was requested for the batch.
type SaltedComputeResponse struct {
	Algorithm string       `json:"algorithm" example:"SHA256"`
	Results   []HashResult `json:"results"`
}

func (SaltedComputeResponse) Message() string {
	return "digests computed"
}

type SaltResponse struct {
	Salt string `json:"salt" example:"aB3!xY9@qW-_=+"`
}

func (SaltResponse) Message() string {
	return "salt generated"
}
