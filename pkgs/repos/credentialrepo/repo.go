package credentialrepo

// Single-row credential storage so the access token survives restarts.
// The row is keyed by credential name; the dashboard only uses "threads".
type repo struct {
}

func New() *repo {
	return &repo{}
}

const CREDENTIAL_NAME_THREADS = "threads"
