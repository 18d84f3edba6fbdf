package domain

// Role is the author of a chat-completion message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleSystem, RoleUser:
		return true
	}
	return false
}

// FailureKind classifies a failed completion call.
type FailureKind string

const (
	// FailureNetwork means the upstream could not be reached or the
	// exchange was cut short (refused, DNS, timeout, cancelled).
	FailureNetwork FailureKind = "NETWORK_ERROR"
	// FailureUpstream means the upstream answered without any choices.
	FailureUpstream FailureKind = "UPSTREAM_ERROR"
	// FailureMalformedResponse means the body could not be interpreted.
	FailureMalformedResponse FailureKind = "MALFORMED_RESPONSE"
)

func (k FailureKind) String() string { return string(k) }

func (k FailureKind) IsValid() bool {
	switch k {
	case FailureNetwork, FailureUpstream, FailureMalformedResponse:
		return true
	}
	return false
}

// Format is a supported document container format.
type Format string

const (
	FormatDocx Format = "docx"
	FormatTxt  Format = "txt"
)

func (f Format) String() string { return string(f) }

func (f Format) IsValid() bool {
	switch f {
	case FormatDocx, FormatTxt:
		return true
	}
	return false
}

// ContentType returns the media type used when streaming a document of
// this format back to the client.
func (f Format) ContentType() string {
	switch f {
	case FormatDocx:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatTxt:
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}

// CorrectedFilename returns the suggested download name for a corrected
// document of this format.
func (f Format) CorrectedFilename() string {
	return "corrected_document." + string(f)
}
